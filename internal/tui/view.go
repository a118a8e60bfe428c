package tui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/wdpick/internal/calendar"
	"github.com/javiermolinar/wdpick/internal/dateutil"
	"github.com/javiermolinar/wdpick/internal/picker"
	"github.com/javiermolinar/wdpick/internal/tui/input"
	"github.com/javiermolinar/wdpick/internal/tui/view"
)

const helpLine = "hjkl move · enter select · 1-9 ranges · g go to · y copy · esc clear · ? help · q quit"

var keyHelp = []view.KeyHelp{
	{Keys: "h/l ←/→", Desc: "Previous/next day"},
	{Keys: "k/j ↑/↓", Desc: "Previous/next week"},
	{Keys: "p/n", Desc: "Previous/next month"},
	{Keys: "P/N", Desc: "Previous/next year"},
	{Keys: "t", Desc: "Jump to today"},
	{Keys: "enter space", Desc: "Pick start or end date"},
	{Keys: "1-9", Desc: "Pick a predefined range"},
	{Keys: "g", Desc: "Go to a date"},
	{Keys: "y", Desc: "Copy range to clipboard"},
	{Keys: "esc", Desc: "Clear selection"},
	{Keys: "q ctrl+c", Desc: "Quit"},
}

// View renders the TUI.
func (m Model) View() string {
	return view.Render(m.viewState())
}

func (m Model) viewState() view.ViewState {
	showModal := m.mode == ModeHelp
	modal := ""
	if showModal {
		modal = view.RenderModalFrame(
			"Keys",
			view.RenderKeyHelp(keyHelp, m.styles.Modal),
			"esc to close",
			m.styles.Modal,
		)
	}

	return view.ViewState{
		Width:            m.width,
		Height:           m.height,
		BaseContent:      m.renderAppContent(),
		ModalContent:     modal,
		ShowModal:        showModal,
		ModalBg:          m.styles.ModalBgColor,
		EmptyPlaceholder: "Loading...",
	}
}

func (m Model) renderAppContent() string {
	frameW, frameH := m.styles.AppStyle.GetFrameSize()
	innerW := m.width - frameW
	if innerW <= 0 || m.height-frameH <= 0 {
		return "Terminal too small"
	}

	label := m.picker.Label()
	labelStyle := m.styles.LabelStyle
	if label == picker.Placeholder {
		labelStyle = m.styles.PlaceholderStyle
	}

	sections := []string{
		labelStyle.Render(label),
		"",
		view.RenderCalendar(m.calendarViewState()),
		"",
		view.RenderTags(m.tagsViewState(innerW)),
		"",
		view.RenderFooter(m.footerViewState(innerW)),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	app := m.styles.AppStyle.Render(content)
	return view.PadLinesWithBackground(app, m.width, m.height, m.styles.colorBg)
}

func (m Model) calendarViewState() view.CalendarViewState {
	nav := m.picker.Navigator()
	weeks := weeksOf(m.picker.Cells())

	rows := make([][]string, len(weeks))
	cellStyles := make([][]lipgloss.Style, len(weeks))
	for r, week := range weeks {
		rows[r] = make([]string, len(week))
		cellStyles[r] = make([]lipgloss.Style, len(week))
		for c, cell := range week {
			rows[r][c] = strconv.Itoa(cell.Date.Day())
			cellStyles[r][c] = m.cellStyle(cell)
		}
	}

	return view.CalendarViewState{
		Title:        calendar.MonthTitle(nav.Year(), nav.Month()),
		TitleStyle:   m.styles.TitleStyle,
		Headers:      calendar.DayHeaders(),
		HeaderStyle:  m.styles.DayHeaderStyle,
		WeekendStyle: m.styles.WeekendHeaderStyle,
		Rows:         rows,
		CellStyles:   cellStyles,
		BorderStyle:  m.styles.BorderStyle,
	}
}

// cellStyle picks the style for a cell; the cursor wins over selection.
func (m Model) cellStyle(cell picker.CellView) lipgloss.Style {
	s := m.styles
	switch {
	case dateutil.SameDay(cell.Date, m.cursor):
		if cell.Weekend {
			return s.CursorBlockedStyle
		}
		return s.CursorStyle
	case cell.Selected:
		return s.EndpointStyle
	case cell.InRange && !cell.Weekend:
		return s.InRangeStyle
	case !cell.IsCurrentMonth:
		return s.PaddingDayStyle
	case cell.Weekend:
		return s.WeekendDayStyle
	case cell.Today:
		return s.TodayStyle
	default:
		return s.DayStyle
	}
}

func weeksOf(cells []picker.CellView) [][]picker.CellView {
	weeks := make([][]picker.CellView, 0, len(cells)/calendar.DaysPerWeek)
	for i := 0; i+calendar.DaysPerWeek <= len(cells); i += calendar.DaysPerWeek {
		weeks = append(weeks, cells[i:i+calendar.DaysPerWeek])
	}
	return weeks
}

func (m Model) tagsViewState(width int) view.TagsViewState {
	predefined := m.picker.PredefinedRanges()
	labels := make([]string, len(predefined))
	for i, r := range predefined {
		labels[i] = r.Label
	}
	return view.TagsViewState{
		Labels:      labels,
		Active:      m.activeTag(),
		Width:       width,
		Style:       m.styles.TagStyle,
		ActiveStyle: m.styles.TagActiveStyle,
		Gap:         m.styles.TagGapStyle,
	}
}

// activeTag returns the index of the predefined range equal to the current
// selection, or -1.
func (m Model) activeTag() int {
	selected, ok := m.picker.State().Range()
	if !ok {
		return -1
	}
	for i, r := range m.picker.PredefinedRanges() {
		adjusted := dateutil.AdjustToWeekdays(r.GetRange())
		if dateutil.SameDay(adjusted.Start, selected.Start) && dateutil.SameDay(adjusted.End, selected.End) {
			return i
		}
	}
	return -1
}

func (m Model) footerViewState(width int) view.FooterViewState {
	state := view.FooterViewState{
		InnerW:      width,
		StatusText:  m.statusMsg,
		StatusStyle: m.styles.StatusStyle,
		HelpText:    helpLine,
		HelpStyle:   m.styles.HelpStyle,
	}
	if m.mode == ModePrompt {
		state.ShowPrompt = true
		state.PromptLine = m.prompt.View()
		state.PromptStyle = m.styles.PromptStyle
		for _, s := range input.Matching(m.prompt.Value(), input.Keywords()) {
			state.Suggestions = append(state.Suggestions, view.PromptSuggestion{
				Keyword:     s.Keyword,
				Description: s.Description,
			})
		}
	}
	return state
}
