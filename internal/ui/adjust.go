package ui

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/wdpick/internal/dateutil"
)

var errNoWeekdays = errors.New("range contains no weekdays")

func (a *App) adjustCmd() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "adjust",
		Short: "Snap a range to the nearest weekdays",
		Long: `Move a weekend start forward to Monday and a weekend end back to Friday.

Example:
  wdpick adjust --from 2025-01-18 --to 2025-01-26`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := a.parseRangeFlags(from, to)
			if err != nil {
				return err
			}
			adjusted := dateutil.AdjustToWeekdays(r)
			if !adjusted.Valid() {
				return fmt.Errorf("%s: %w", r, errNoWeekdays)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), adjusted.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "First day of the range (YYYY-MM-DD or keyword)")
	cmd.Flags().StringVar(&to, "to", "", "Last day of the range (YYYY-MM-DD or keyword)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
