package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/wdpick/internal/tui/theme"
	"github.com/javiermolinar/wdpick/internal/tui/view"
)

// Calendar cell width, wide enough for a centered two-digit day.
const cellWidth = 4

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	colorBg lipgloss.Color

	TitleStyle lipgloss.Style
	LabelStyle lipgloss.Style
	// Label while the selection is incomplete
	PlaceholderStyle lipgloss.Style

	// Calendar grid
	BorderStyle        lipgloss.Style
	DayHeaderStyle     lipgloss.Style
	WeekendHeaderStyle lipgloss.Style
	DayStyle           lipgloss.Style
	WeekendDayStyle    lipgloss.Style
	PaddingDayStyle    lipgloss.Style
	InRangeStyle       lipgloss.Style
	EndpointStyle      lipgloss.Style
	TodayStyle         lipgloss.Style
	CursorStyle        lipgloss.Style
	CursorBlockedStyle lipgloss.Style // cursor on a weekend day

	// Predefined range tags
	TagStyle       lipgloss.Style
	TagActiveStyle lipgloss.Style
	TagGapStyle    lipgloss.Style

	// Prompt box
	PromptStyle lipgloss.Style

	StatusStyle lipgloss.Style
	HelpStyle   lipgloss.Style

	// Modal styles
	ModalBgColor lipgloss.Color
	Modal        view.ModalStyles

	AppStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)
	s.colorBg = palette.Bg

	base := lipgloss.NewStyle().Background(palette.Bg)
	cell := base.Width(cellWidth).Align(lipgloss.Center)

	s.TitleStyle = base.
		Bold(true).
		Foreground(palette.Accent)

	s.LabelStyle = base.
		Foreground(palette.Fg).
		Bold(true)

	s.PlaceholderStyle = base.
		Foreground(palette.FgMuted).
		Italic(true)

	s.BorderStyle = lipgloss.NewStyle().
		Foreground(palette.FgMuted).
		Background(palette.Bg)

	s.DayHeaderStyle = cell.
		Foreground(palette.Fg).
		Bold(true)

	s.WeekendHeaderStyle = cell.
		Foreground(palette.WeekendFg)

	s.DayStyle = cell.Foreground(palette.Fg)

	s.WeekendDayStyle = cell.
		Foreground(palette.WeekendFg).
		Strikethrough(true)

	s.PaddingDayStyle = cell.Foreground(palette.PaddingFg)

	s.InRangeStyle = cell.
		Background(palette.RangeBg).
		Foreground(palette.TextOnRange)

	s.EndpointStyle = cell.
		Background(palette.Accent).
		Foreground(palette.TextOnAccent).
		Bold(true)

	s.TodayStyle = cell.
		Foreground(palette.Today).
		Bold(true).
		Underline(true)

	s.CursorStyle = cell.
		Background(palette.BgSelection).
		Foreground(palette.TextOnSelection).
		Bold(true)

	s.CursorBlockedStyle = cell.
		Background(palette.Warning).
		Foreground(palette.TextOnWarning)

	s.TagStyle = lipgloss.NewStyle().
		Background(palette.Tag).
		Foreground(palette.TextOnTag).
		Padding(0, 1)

	s.TagActiveStyle = lipgloss.NewStyle().
		Background(palette.TagActive).
		Foreground(palette.TextOnTagActive).
		Bold(true).
		Padding(0, 1)

	s.TagGapStyle = base

	s.PromptStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(palette.Accent).
		BorderBackground(palette.Bg).
		Background(palette.BgHighlight).
		Foreground(palette.Fg).
		Padding(0, 1)

	s.StatusStyle = base.
		Foreground(palette.Warning).
		Bold(true)

	s.HelpStyle = base.Foreground(palette.FgMuted)

	s.ModalBgColor = palette.BgHighlight
	modalBase := lipgloss.NewStyle().Background(palette.BgHighlight)
	s.Modal = view.ModalStyles{
		ModalStyle: modalBase.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette.Accent).
			BorderBackground(palette.Bg).
			Foreground(palette.Fg).
			Padding(1, 2),
		TitleStyle:  modalBase.Bold(true).Foreground(palette.Accent),
		KeyStyle:    modalBase.Bold(true).Foreground(palette.Fg),
		BodyStyle:   modalBase.Foreground(palette.Fg),
		FooterStyle: modalBase.Foreground(palette.FgMuted),
	}

	s.AppStyle = base.Padding(1, 2)

	return s
}
