package ui

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/wdpick/internal/dateutil"
)

func (a *App) rangesCmd() *cobra.Command {
	var adjust bool

	cmd := &cobra.Command{
		Use:   "ranges",
		Short: "List the configured predefined ranges",
		Long: `Evaluate each configured predefined range against today.

With --adjust, show the weekday-snapped range the picker would select.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			predefined, err := a.config.PredefinedRanges(a.clock)
			if err != nil {
				return err
			}

			labelW := 0
			for _, r := range predefined {
				labelW = max(labelW, len(r.Label))
			}
			indexW := len(strconv.Itoa(len(predefined)))

			out := cmd.OutOrStdout()
			for i, r := range predefined {
				dr := r.GetRange()
				if adjust {
					dr = dateutil.AdjustToWeekdays(dr)
				}
				line := formatRange(dr.String())
				if !dr.Valid() {
					line = formatWarning("no weekdays")
				}
				_, _ = fmt.Fprintf(out, "%s  %s  %s\n",
					formatMuted(fmt.Sprintf("%*d", indexW, i+1)),
					formatHeader(fmt.Sprintf("%-*s", labelW, r.Label)),
					line)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&adjust, "adjust", false, "Snap each range to weekdays")

	return cmd
}
