package view

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// FooterViewState holds the strings needed to render the footer section.
type FooterViewState struct {
	InnerW      int
	ShowPrompt  bool
	PromptLine  string
	PromptStyle lipgloss.Style
	Suggestions []PromptSuggestion
	StatusText  string
	StatusStyle lipgloss.Style
	HelpText    string
	HelpStyle   lipgloss.Style
}

// PromptSuggestion is a completion shown under the prompt.
type PromptSuggestion struct {
	Keyword     string
	Description string
}

// MaxSuggestionLines caps the completions shown under the prompt.
const MaxSuggestionLines = 3

// RenderFooter renders the optional prompt with its suggestions, the status
// line and the help line.
func RenderFooter(state FooterViewState) string {
	lines := make([]string, 0, 3+MaxSuggestionLines)
	if state.ShowPrompt {
		lines = append(lines, footerLine(state.InnerW, state.PromptStyle, state.PromptLine))
		for _, s := range suggestionLines(state.Suggestions) {
			lines = append(lines, footerLine(state.InnerW, state.PromptStyle, s))
		}
	}
	lines = append(lines,
		footerLine(state.InnerW, state.StatusStyle, state.StatusText),
		footerLine(state.InnerW, state.HelpStyle, state.HelpText),
	)
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func footerLine(width int, style lipgloss.Style, content string) string {
	frameW, _ := style.GetFrameSize()
	contentWidth := max(width-frameW, 0)
	style = style.Width(contentWidth)
	if contentWidth > 0 {
		content = ansi.Truncate(content, contentWidth, "…")
	}
	return style.Render(content)
}

func suggestionLines(suggestions []PromptSuggestion) []string {
	if len(suggestions) == 0 {
		return nil
	}
	shown := suggestions
	if len(shown) > MaxSuggestionLines {
		shown = shown[:MaxSuggestionLines-1]
	}

	keyW := 0
	for _, s := range shown {
		keyW = max(keyW, lipgloss.Width(s.Keyword))
	}
	lines := make([]string, 0, MaxSuggestionLines)
	for _, s := range shown {
		lines = append(lines, "  "+padRight(s.Keyword, keyW)+"  "+s.Description)
	}
	if rest := len(suggestions) - len(shown); rest > 0 {
		lines = append(lines, "  … "+strconv.Itoa(rest)+" more")
	}
	return lines
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
