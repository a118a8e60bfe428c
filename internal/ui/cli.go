package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/wdpick/internal/config"
	"github.com/javiermolinar/wdpick/internal/dateutil"
	"github.com/javiermolinar/wdpick/internal/picker"
	"github.com/javiermolinar/wdpick/internal/ranges"
	"github.com/javiermolinar/wdpick/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config *config.Config
	root   *cobra.Command
	clock  ranges.Clock
	debug  bool // Enable debug logging

	showWeekends bool
	runTUI       func(cfg *config.Config, debug bool) (*picker.RangeChange, error)
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	return newApp(cfg, nil)
}

func newApp(cfg *config.Config, clock ranges.Clock) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	a := &App{config: cfg, clock: clock, runTUI: tui.RunWithDebug}

	a.root = &cobra.Command{
		Use:   "wdpick",
		Short: "A weekday-only date range picker",
		Long: `wdpick picks a date range on a month calendar where only Monday
through Friday can be selected.

Run without arguments to open the interactive picker. The chosen range is
printed on exit. Predefined ranges are snapped to the nearest weekdays.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			change, err := a.runTUI(a.config, a.debug)
			if err != nil {
				return err
			}
			if change == nil {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "No range selected.")
				return nil
			}
			printRangeChange(cmd.OutOrStdout(), change, a.showWeekends)
			return nil
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (writes "+tui.DebugLogPath+")")
	a.root.Flags().BoolVar(&a.showWeekends, "weekends", false, "Also print the weekend dates inside the selected range")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.monthCmd())
	a.root.AddCommand(a.weekendsCmd())
	a.root.AddCommand(a.adjustCmd())
	a.root.AddCommand(a.rangesCmd())
	a.root.AddCommand(a.selectCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wdpick %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// today returns the app clock's current date.
func (a *App) today() time.Time {
	if a.clock != nil {
		return dateutil.TruncateToDay(a.clock())
	}
	return dateutil.TruncateToDay(time.Now())
}

var errYearOutOfRange = fmt.Errorf("year must be %d or later", picker.MinYear)

// parseDateArg accepts YYYY-MM-DD and relative keywords.
func (a *App) parseDateArg(s string) (time.Time, error) {
	t, err := dateutil.ParseRelativeDate(s, a.today())
	if err != nil {
		return time.Time{}, fmt.Errorf("%q: %w", s, err)
	}
	if !picker.Selectable(t) {
		return time.Time{}, fmt.Errorf("%q: %w", s, errYearOutOfRange)
	}
	return t, nil
}

// parseRangeFlags parses --from/--to values into an ordered range.
func (a *App) parseRangeFlags(from, to string) (dateutil.DateRange, error) {
	start, err := a.parseDateArg(from)
	if err != nil {
		return dateutil.DateRange{}, fmt.Errorf("invalid --from: %w", err)
	}
	end, err := a.parseDateArg(to)
	if err != nil {
		return dateutil.DateRange{}, fmt.Errorf("invalid --to: %w", err)
	}
	r := dateutil.DateRange{Start: start, End: end}
	if !r.Valid() {
		return dateutil.DateRange{}, fmt.Errorf("%s before %s: %w", dateutil.FormatDate(end), dateutil.FormatDate(start), dateutil.ErrEndDateBeforeStart)
	}
	return r, nil
}

func printRangeChange(w io.Writer, change *picker.RangeChange, withWeekends bool) {
	_, _ = fmt.Fprintln(w, change.Range.String())
	if withWeekends && len(change.WeekendDates) > 0 {
		_, _ = fmt.Fprintf(w, "weekends: %s\n", strings.Join(dateutil.FormatDates(change.WeekendDates), ", "))
	}
}
