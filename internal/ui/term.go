package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Weekends: dim, they can never be picked
	colorWeekend = color.New(color.FgWhite, color.Faint)

	// Days of adjacent months
	colorMuted = color.New(color.FgWhite, color.Faint)

	colorToday = color.New(color.FgCyan, color.Bold)

	// Selected range: yellow, endpoints reversed
	colorRange    = color.New(color.FgYellow)
	colorEndpoint = color.New(color.FgBlack, color.BgYellow, color.Bold)

	colorWarning = color.New(color.FgRed)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

func formatWeekend(s string) string {
	return colorWeekend.Sprint(s)
}

func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}

func formatToday(s string) string {
	return colorToday.Sprint(s)
}

func formatRange(s string) string {
	return colorRange.Sprint(s)
}

func formatEndpoint(s string) string {
	return colorEndpoint.Sprint(s)
}

func formatWarning(s string) string {
	return colorWarning.Sprint(s)
}
