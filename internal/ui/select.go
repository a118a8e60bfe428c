package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/wdpick/internal/dateutil"
	"github.com/javiermolinar/wdpick/internal/picker"
)

func (a *App) selectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select DATE...",
		Short: "Replay day clicks through the picker",
		Long: `Feed each date to the picker as a click and print what happens.

Weekend dates are ignored. Every completed selection prints one
range-change line followed by its weekend dates.

Example:
  wdpick select 2025-01-20 2025-01-25 2025-01-27`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			dates := make([]time.Time, len(args))
			for i, arg := range args {
				d, err := a.parseDateArg(arg)
				if err != nil {
					return err
				}
				dates[i] = d
			}

			// Events are printed after the click that produced them.
			var pending []string
			p := picker.New(nil,
				picker.WithClock(a.clock),
				picker.WithDateRangeChange(func(r dateutil.DateRange, weekendDates []time.Time) {
					pending = append(pending, fmt.Sprintf("  range-change %s weekends=[%s]",
						r, strings.Join(dateutil.FormatDates(weekendDates), ", ")))
				}),
			)

			for _, d := range dates {
				before := p.State().Phase()
				p.Select(d)
				after := p.State().Phase()

				note := fmt.Sprintf("%s -> %s", before, after)
				if dateutil.IsWeekend(d) {
					note = formatWeekend("ignored (weekend)")
				}
				_, _ = fmt.Fprintf(out, "%s %s\n", dateutil.FormatDate(d), note)
				for _, line := range pending {
					_, _ = fmt.Fprintln(out, line)
				}
				pending = pending[:0]
			}

			_, _ = fmt.Fprintln(out, p.Label())
			return nil
		},
	}
}
