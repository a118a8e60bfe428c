package view

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TagsViewState describes the predefined range tag row.
type TagsViewState struct {
	Labels      []string
	Active      int // index of the tag matching the selection, -1 for none
	Width       int
	Style       lipgloss.Style
	ActiveStyle lipgloss.Style
	Gap         lipgloss.Style
}

// RenderTags renders numbered tags, wrapping onto new lines to fit Width.
func RenderTags(state TagsViewState) string {
	if len(state.Labels) == 0 {
		return ""
	}

	var lines []string
	var current []string
	currentW := 0
	sep := state.Gap.Render(" ")
	sepW := lipgloss.Width(sep)

	for i, label := range state.Labels {
		style := state.Style
		if i == state.Active {
			style = state.ActiveStyle
		}
		tag := style.Render(TagLabel(i, label))
		tagW := lipgloss.Width(tag)

		if state.Width > 0 && len(current) > 0 && currentW+sepW+tagW > state.Width {
			lines = append(lines, strings.Join(current, sep))
			current, currentW = nil, 0
		}
		if len(current) > 0 {
			currentW += sepW
		}
		current = append(current, tag)
		currentW += tagW
	}
	lines = append(lines, strings.Join(current, sep))
	return strings.Join(lines, "\n")
}

// TagLabel prefixes label with its 1-based shortcut number.
func TagLabel(i int, label string) string {
	if i < 9 {
		return strconv.Itoa(i+1) + " " + label
	}
	return label
}
