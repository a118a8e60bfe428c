// Package commands provides TUI command constructors and message types.
package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/wdpick/internal/dateutil"
	"github.com/javiermolinar/wdpick/internal/picker"
)

// StatusClearDelay is how long a status message stays visible.
const StatusClearDelay = 3 * time.Second

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// RangeCopiedMsg is sent after a range was written to the clipboard.
type RangeCopiedMsg struct {
	Text string
}

// writeClipboard is swapped in tests.
var writeClipboard = clipboard.WriteAll

// Status returns a command that shows msg in the status line.
func Status(msg string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsgCmd{Msg: msg}
	}
}

// ClearStatusAfter schedules a ClearStatusMsg.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

// CopyRange copies the range and its weekend dates to the system clipboard.
func CopyRange(change *picker.RangeChange) tea.Cmd {
	return func() tea.Msg {
		if change == nil {
			return ErrMsg{Err: fmt.Errorf("no range selected")}
		}
		text := FormatRangeChange(change)
		if err := writeClipboard(text); err != nil {
			return ErrMsg{Err: fmt.Errorf("copying range: %w", err)}
		}
		return RangeCopiedMsg{Text: text}
	}
}

// FormatRangeChange renders a change as plain text, one line for the range
// and one for the weekend dates when there are any.
func FormatRangeChange(change *picker.RangeChange) string {
	var b strings.Builder
	b.WriteString(change.Range.String())
	if len(change.WeekendDates) > 0 {
		b.WriteString("\nweekends: ")
		b.WriteString(strings.Join(dateutil.FormatDates(change.WeekendDates), ", "))
	}
	return b.String()
}
