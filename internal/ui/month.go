package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/wdpick/internal/calendar"
	"github.com/javiermolinar/wdpick/internal/dateutil"
	"github.com/javiermolinar/wdpick/internal/picker"
	"github.com/javiermolinar/wdpick/internal/ranges"
)

const monthLayout = "2006-01"

// Two digits per day plus a separating space, minus the trailing one.
const monthGridWidth = calendar.DaysPerWeek*3 - 1

func (a *App) monthCmd() *cobra.Command {
	var from, to string
	var noColor bool

	cmd := &cobra.Command{
		Use:   "month [YYYY-MM]",
		Short: "Print a month calendar",
		Long: `Print the calendar grid for a month, current month by default.

Weekends are dimmed. With --from and --to the range is snapped to weekdays
and highlighted.

Example:
  wdpick month 2025-01 --from 2025-01-18 --to 2025-01-26`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				DisableColor()
			}

			today := a.today()
			year, month := today.Year(), today.Month()
			if len(args) == 1 {
				t, err := time.Parse(monthLayout, args[0])
				if err != nil {
					return fmt.Errorf("invalid month %q, expected YYYY-MM", args[0])
				}
				year, month = t.Year(), t.Month()
			}

			p := picker.New(nil, picker.WithClock(a.clock), picker.WithMonth(year, month))

			if from != "" || to != "" {
				r, err := a.parseRangeFlags(from, to)
				if err != nil {
					return err
				}
				if p.SelectPredefined(fixedRange(r)) == nil {
					_, _ = fmt.Fprintln(cmd.ErrOrStderr(), formatWarning("range contains no weekdays, nothing highlighted"))
				}
			}

			renderMonth(cmd.OutOrStdout(), p, min(termWidth(), monthGridWidth))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Highlight a range starting at this date")
	cmd.Flags().StringVar(&to, "to", "", "Highlight a range ending at this date")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	return cmd
}

// fixedRange wraps an explicit range as a predefined one.
func fixedRange(r dateutil.DateRange) ranges.PredefinedRange {
	return ranges.PredefinedRange{
		Label:    r.String(),
		GetRange: func() dateutil.DateRange { return r },
	}
}

func renderMonth(w io.Writer, p *picker.Picker, ruleWidth int) {
	nav := p.Navigator()
	title := calendar.MonthTitle(nav.Year(), nav.Month())
	pad := max((monthGridWidth-len(title))/2, 0)

	_, _ = fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", pad), formatHeader(title))
	_, _ = fmt.Fprintln(w, formatHeader(strings.Join(calendar.DayHeaders(), " ")))
	_, _ = fmt.Fprintln(w, strings.Repeat("─", ruleWidth))

	cells := p.Cells()
	for i := 0; i+calendar.DaysPerWeek <= len(cells); i += calendar.DaysPerWeek {
		row := make([]string, calendar.DaysPerWeek)
		for j, cell := range cells[i : i+calendar.DaysPerWeek] {
			row[j] = formatCell(cell)
		}
		_, _ = fmt.Fprintln(w, strings.Join(row, " "))
	}

	_, _ = fmt.Fprintln(w, strings.Repeat("─", ruleWidth))
	_, _ = fmt.Fprintln(w, p.Label())
}

func formatCell(cell picker.CellView) string {
	s := fmt.Sprintf("%2d", cell.Date.Day())
	switch {
	case cell.Selected:
		return formatEndpoint(s)
	case cell.InRange && !cell.Weekend:
		return formatRange(s)
	case !cell.IsCurrentMonth:
		return formatMuted(s)
	case cell.Weekend:
		return formatWeekend(s)
	case cell.Today:
		return formatToday(s)
	default:
		return s
	}
}
