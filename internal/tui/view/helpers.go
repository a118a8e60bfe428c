package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PlaceBox renders content in a lipgloss.Place box with background fill.
func PlaceBox(w, h int, hAlign, vAlign lipgloss.Position, content string, bg lipgloss.Color) string {
	placed := lipgloss.Place(
		w,
		h,
		hAlign,
		vAlign,
		content,
		lipgloss.WithWhitespaceBackground(bg),
	)
	return PadLinesWithBackground(placed, w, h, bg)
}

// PadLinesWithBackground pads content to width/height with a background color.
func PadLinesWithBackground(content string, width, height int, bg lipgloss.Color) string {
	if width <= 0 || height <= 0 {
		return content
	}
	lines := strings.Split(content, "\n")
	paddingStyle := lipgloss.NewStyle().Background(bg)
	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]
	for i, line := range lines {
		lineWidth := lipgloss.Width(line)
		if lineWidth >= width {
			continue
		}
		lines[i] = line + paddingStyle.Render(strings.Repeat(" ", width-lineWidth))
	}
	return strings.Join(lines, "\n")
}

// RenderModalOverlay centers modalContent and splices it over the base content.
func RenderModalOverlay(baseContent, modalContent string, width, height int, modalBg lipgloss.Color) string {
	modalLines := strings.Split(modalContent, "\n")
	modalWidth := 0
	for _, line := range modalLines {
		modalWidth = max(modalWidth, lipgloss.Width(line))
	}
	if modalWidth == 0 {
		return baseContent
	}
	modalWidth = min(modalWidth, width)
	modalHeight := min(len(modalLines), height)

	top := max((height-modalHeight)/2, 0)
	left := max((width-modalWidth)/2, 0)

	for i, line := range modalLines {
		lineWidth := lipgloss.Width(line)
		if lineWidth > modalWidth {
			line = ansi.Cut(line, 0, modalWidth)
		}
		if lineWidth < modalWidth {
			line += lipgloss.NewStyle().Background(modalBg).Render(strings.Repeat(" ", modalWidth-lineWidth))
		}
		modalLines[i] = line + ansi.ResetStyle
	}

	baseLines := strings.Split(baseContent, "\n")
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}
	for i, line := range baseLines {
		if w := lipgloss.Width(line); w < width {
			baseLines[i] = line + strings.Repeat(" ", width-w)
		}
	}

	lines := make([]string, 0, height)
	for row := 0; row < height; row++ {
		if row < top || row >= top+modalHeight {
			lines = append(lines, baseLines[row])
			continue
		}
		baseLine := baseLines[row]
		leftSlice := ansi.Cut(baseLine, 0, left)
		rightSlice := ansi.Cut(baseLine, left+modalWidth, width)
		lines = append(lines, leftSlice+modalLines[row-top]+rightSlice)
	}

	return strings.Join(lines, "\n")
}
