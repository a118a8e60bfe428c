package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/wdpick/internal/dateutil"
)

func (a *App) weekendsCmd() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "weekends",
		Short: "List the weekend dates inside a range",
		Long: `List every Saturday and Sunday between --from and --to, inclusive.

Example:
  wdpick weekends --from 2025-01-20 --to 2025-01-27`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := a.parseRangeFlags(from, to)
			if err != nil {
				return err
			}
			for _, d := range dateutil.FindWeekendDates(r.Start, r.End) {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", dateutil.FormatDate(d), d.Weekday().String()[:3])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "First day of the range (YYYY-MM-DD or keyword)")
	cmd.Flags().StringVar(&to, "to", "", "Last day of the range (YYYY-MM-DD or keyword)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
