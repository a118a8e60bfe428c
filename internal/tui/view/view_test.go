package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestRender_Placeholder(t *testing.T) {
	if got := Render(ViewState{}); got != "Loading..." {
		t.Fatalf("got %q", got)
	}
	if got := Render(ViewState{EmptyPlaceholder: "wait"}); got != "wait" {
		t.Fatalf("got %q", got)
	}
	if got := Render(ViewState{Width: 10, Height: 2, BaseContent: "base"}); got != "base" {
		t.Fatalf("got %q", got)
	}
}

func TestPadLinesWithBackground(t *testing.T) {
	out := PadLinesWithBackground("ab\nc", 5, 3, lipgloss.Color("#000000"))
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 5 {
			t.Errorf("line %d width = %d, want 5", i, w)
		}
	}
}

func TestRenderModalOverlay(t *testing.T) {
	base := strings.Repeat(strings.Repeat(".", 20)+"\n", 9) + strings.Repeat(".", 20)
	modal := "+--+\n|hi|\n+--+"

	out := RenderModalOverlay(base, modal, 20, 10, lipgloss.Color("#111111"))
	lines := strings.Split(out, "\n")
	if len(lines) != 10 {
		t.Fatalf("lines = %d, want 10", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 20 {
			t.Errorf("line %d width = %d, want 20", i, w)
		}
	}
	// 3 modal lines centered in 10 rows start at row 3, column 8.
	if got := ansi.Strip(lines[4]); got != "........|hi|........" {
		t.Fatalf("row 4 = %q", got)
	}
	if got := ansi.Strip(lines[0]); got != strings.Repeat(".", 20) {
		t.Fatalf("row 0 = %q", got)
	}
}

func TestRenderCalendar(t *testing.T) {
	style := lipgloss.NewStyle().Width(4).Align(lipgloss.Center)
	rows := [][]string{
		{"29", "30", "31", "1", "2", "3", "4"},
		{"5", "6", "7", "8", "9", "10", "11"},
	}
	cellStyles := make([][]lipgloss.Style, len(rows))
	for i := range rows {
		cellStyles[i] = make([]lipgloss.Style, len(rows[i]))
		for j := range rows[i] {
			cellStyles[i][j] = style
		}
	}

	out := ansi.Strip(RenderCalendar(CalendarViewState{
		Title:        "January 2025",
		Headers:      []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"},
		HeaderStyle:  style,
		WeekendStyle: style,
		Rows:         rows,
		CellStyles:   cellStyles,
	}))

	lines := strings.Split(out, "\n")
	if !strings.Contains(lines[0], "January 2025") {
		t.Fatalf("title line = %q", lines[0])
	}
	for _, want := range []string{"Su", "Sa", "29", "11"} {
		if !strings.Contains(out, want) {
			t.Errorf("calendar missing %q", want)
		}
	}
	width := lipgloss.Width(lines[1])
	for i, line := range lines {
		if w := lipgloss.Width(line); w != width {
			t.Errorf("line %d width = %d, want %d", i, w, width)
		}
	}
}

func TestRenderTags(t *testing.T) {
	state := TagsViewState{
		Labels: []string{"Last 7 days", "Last 30 days", "Next 7 days"},
		Active: 1,
		Style:  lipgloss.NewStyle().Padding(0, 1),
	}
	state.ActiveStyle = state.Style

	out := ansi.Strip(RenderTags(state))
	if out != " 1 Last 7 days   2 Last 30 days   3 Next 7 days " {
		t.Fatalf("got %q", out)
	}

	state.Width = 20
	lines := strings.Split(RenderTags(state), "\n")
	if len(lines) != 3 {
		t.Fatalf("wrapped lines = %d, want 3", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w > 20 {
			t.Errorf("line %d width = %d", i, w)
		}
	}

	if RenderTags(TagsViewState{}) != "" {
		t.Fatal("expected empty output without labels")
	}
}

func TestTagLabel(t *testing.T) {
	if got := TagLabel(0, "Last 7 days"); got != "1 Last 7 days" {
		t.Fatalf("got %q", got)
	}
	if got := TagLabel(9, "Extra"); got != "Extra" {
		t.Fatalf("got %q", got)
	}
}

func TestRenderFooter(t *testing.T) {
	out := RenderFooter(FooterViewState{
		InnerW:     12,
		StatusText: "ok",
		HelpText:   "a very long help line that does not fit",
	})
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 12 {
			t.Errorf("line %d width = %d, want 12", i, w)
		}
	}
	if !strings.HasSuffix(strings.TrimRight(ansi.Strip(lines[1]), " "), "…") {
		t.Fatalf("help not truncated: %q", lines[1])
	}

	withPrompt := RenderFooter(FooterViewState{InnerW: 12, ShowPrompt: true, PromptLine: "Go to:"})
	if n := len(strings.Split(withPrompt, "\n")); n != 3 {
		t.Fatalf("lines with prompt = %d, want 3", n)
	}
}

func TestRenderFooter_Suggestions(t *testing.T) {
	suggestions := []PromptSuggestion{
		{Keyword: "today", Description: "Today"},
		{Keyword: "tomorrow", Description: "Tomorrow"},
		{Keyword: "tuesday", Description: "Next tuesday"},
		{Keyword: "thursday", Description: "Next thursday"},
	}
	out := RenderFooter(FooterViewState{
		InnerW:      40,
		ShowPrompt:  true,
		PromptLine:  "Go to: t",
		Suggestions: suggestions,
	})
	lines := strings.Split(ansi.Strip(out), "\n")
	if len(lines) != 1+MaxSuggestionLines+2 {
		t.Fatalf("lines = %d, want %d\n%s", len(lines), 1+MaxSuggestionLines+2, out)
	}
	if got := strings.TrimRight(lines[1], " "); got != "  today     Today" {
		t.Errorf("first suggestion = %q", got)
	}
	if got := strings.TrimRight(lines[3], " "); got != "  … 2 more" {
		t.Errorf("overflow line = %q", got)
	}

	hidden := RenderFooter(FooterViewState{InnerW: 40, Suggestions: suggestions})
	if n := len(strings.Split(hidden, "\n")); n != 2 {
		t.Fatalf("suggestions rendered without prompt: %d lines", n)
	}
}

func TestRenderKeyHelp(t *testing.T) {
	out := RenderKeyHelp([]KeyHelp{
		{Keys: "q", Desc: "Quit"},
		{Keys: "enter", Desc: "Select"},
	}, ModalStyles{})
	lines := strings.Split(ansi.Strip(out), "\n")
	if lines[0] != "q      Quit" || lines[1] != "enter  Select" {
		t.Fatalf("got %q", lines)
	}
}
