package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// CalendarViewState holds what is needed to render one month grid.
type CalendarViewState struct {
	Title        string
	TitleStyle   lipgloss.Style
	Headers      []string
	HeaderStyle  lipgloss.Style
	Rows         [][]string
	CellStyles   [][]lipgloss.Style
	BorderStyle  lipgloss.Style
	WeekendStyle lipgloss.Style // header style for Sa/Su columns
}

// RenderCalendar renders the month title above a bordered day grid.
func RenderCalendar(state CalendarViewState) string {
	t := table.New().
		Headers(state.Headers...).
		Border(lipgloss.RoundedBorder()).
		BorderHeader(true).
		BorderColumn(false).
		BorderRow(false).
		BorderStyle(state.BorderStyle).
		Rows(state.Rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				if col == 0 || col == len(state.Headers)-1 {
					return state.WeekendStyle
				}
				return state.HeaderStyle
			}
			if row < 0 || row >= len(state.CellStyles) || col < 0 || col >= len(state.CellStyles[row]) {
				return lipgloss.NewStyle()
			}
			return state.CellStyles[row][col]
		})

	grid := t.Render()
	title := state.TitleStyle.Width(lipgloss.Width(grid)).Align(lipgloss.Center).Render(state.Title)
	return lipgloss.JoinVertical(lipgloss.Left, title, grid)
}
