package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/wdpick/internal/dateutil"
	"github.com/javiermolinar/wdpick/internal/picker"
	"github.com/javiermolinar/wdpick/internal/tui/commands"
	"github.com/javiermolinar/wdpick/internal/tui/input"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg, m.mode)

	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModePrompt:
		return m.handlePromptKeys(msg)
	case ModeHelp:
		return m.handleHelpKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	nav := m.picker.Navigator()

	switch key := msg.String(); key {
	case "q":
		return m, tea.Quit

	// Cursor movement; leaving the month navigates
	case "h", "left":
		m.moveCursor(-1, "cursor_left")
	case "l", "right":
		m.moveCursor(1, "cursor_right")
	case "j", "down":
		m.moveCursor(7, "cursor_down")
	case "k", "up":
		m.moveCursor(-7, "cursor_up")

	// Month and year navigation
	case "n":
		nav.NextMonth()
		m.clampCursor()
	case "p":
		nav.PrevMonth()
		m.clampCursor()
	case "N":
		nav.NextYear()
		m.clampCursor()
	case "P":
		nav.PrevYear()
		m.clampCursor()
	case "t":
		m.cursor = m.picker.Today()
		m.followCursor("today")

	case "enter", " ":
		return m.selectCursor()

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		return m.selectPredefined(int(key[0] - '1'))

	case "g":
		return m.openPrompt()

	case "y":
		r, ok := m.picker.State().Range()
		if !ok {
			return m.setStatus("Nothing to copy")
		}
		return m, commands.CopyRange(&picker.RangeChange{
			Range:        r,
			WeekendDates: dateutil.FindWeekendDates(r.Start, r.End),
		})

	case "esc":
		if m.picker.State().Phase() == picker.PhaseEmpty {
			return m, nil
		}
		before := m.picker.State()
		m.picker.Reset()
		LogTransition(before, m.picker.State(), "reset")
		m.result = nil
		return m.setStatus("Selection cleared")

	case "?":
		m.setMode(ModeHelp, "help")
	}

	return m, nil
}

// handlePromptKeys handles keys while the go-to prompt is focused.
func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePrompt("cancel")
		return m, nil

	case "tab":
		if value, ok := input.Autocomplete(m.prompt.Value(), input.Keywords()); ok {
			m.prompt.SetValue(value)
			m.prompt.CursorEnd()
		}
		return m, nil

	case "enter":
		value := m.prompt.Value()
		date, err := dateutil.ParseRelativeDate(value, m.picker.Today())
		if err != nil {
			LogError("goto", err)
			return m.setStatus(fmt.Sprintf("Invalid date %q", value))
		}
		m.closePrompt("goto")
		m.cursor = date
		m.followCursor("goto")
		return m, nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// handleHelpKeys handles keys while the help overlay is shown.
func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "?", "q", "enter":
		m.setMode(ModeNormal, "help_closed")
	}
	return m, nil
}

func (m *Model) setMode(mode Mode, reason string) {
	if m.mode == mode {
		return
	}
	LogModeChange(m.mode, mode, reason)
	m.mode = mode
}

func (m Model) openPrompt() (tea.Model, tea.Cmd) {
	m.prompt.SetValue("")
	cmd := m.prompt.Focus()
	m.setMode(ModePrompt, "goto")
	return m, cmd
}

func (m *Model) closePrompt(reason string) {
	m.prompt.Blur()
	m.prompt.SetValue("")
	m.setMode(ModeNormal, reason)
}

// moveCursor shifts the cursor by days and follows it across months.
func (m *Model) moveCursor(days int, reason string) {
	m.cursor = dateutil.AddDays(m.cursor, days)
	m.followCursor(reason)
}

// followCursor shows the cursor's month if it is not displayed.
func (m *Model) followCursor(reason string) {
	nav := m.picker.Navigator()
	if nav.Contains(m.cursor) {
		return
	}
	LogNavigation(m.cursor.Year(), m.cursor.Month(), reason)
	nav.Jump(m.cursor.Year(), m.cursor.Month())
}

// clampCursor moves the cursor into the displayed month, keeping its day.
func (m *Model) clampCursor() {
	nav := m.picker.Navigator()
	day := min(m.cursor.Day(), dateutil.DaysInMonth(nav.Year(), nav.Month()))
	m.cursor = dateutil.StartOfDay(nav.Year(), nav.Month(), day, m.cursor.Location())
}

func (m Model) selectCursor() (tea.Model, tea.Cmd) {
	if dateutil.IsWeekend(m.cursor) {
		return m.setStatus("Weekends cannot be selected")
	}
	before := m.picker.State()
	change := m.picker.Select(m.cursor)
	LogTransition(before, m.picker.State(), "click")
	if change != nil {
		return m.rangeSelected(change)
	}
	if m.picker.State().Phase() == picker.PhaseStartOnly {
		return m.setStatus(fmt.Sprintf("Start %s, pick an end date", dateutil.FormatDate(m.picker.State().Start)))
	}
	return m, nil
}

func (m Model) selectPredefined(i int) (tea.Model, tea.Cmd) {
	predefined := m.picker.PredefinedRanges()
	if i < 0 || i >= len(predefined) {
		return m, nil
	}
	before := m.picker.State()
	change := m.picker.SelectPredefinedAt(i)
	LogTransition(before, m.picker.State(), "predefined")
	if change == nil {
		return m.setStatus(fmt.Sprintf("%s has no weekdays", predefined[i].Label))
	}
	m.cursor = change.Range.Start
	m.followCursor("predefined")
	return m.rangeSelected(change)
}

func (m Model) rangeSelected(change *picker.RangeChange) (tea.Model, tea.Cmd) {
	m.result = change
	msg := "Selected " + change.Range.String()
	if n := len(change.WeekendDates); n > 0 {
		msg += fmt.Sprintf(" (%d weekend days excluded)", n)
	}
	return m.setStatus(msg)
}

func (m Model) setStatus(msg string) (tea.Model, tea.Cmd) {
	m.statusMsg = msg
	m.statusTime = time.Now().Add(commands.StatusClearDelay)
	return m, m.clearStatusLater()
}

func (m Model) clearStatusLater() tea.Cmd {
	return commands.ClearStatusAfter(commands.StatusClearDelay)
}
