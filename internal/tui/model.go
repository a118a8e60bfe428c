// Package tui provides the terminal user interface for wdpick.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/wdpick/internal/config"
	"github.com/javiermolinar/wdpick/internal/dateutil"
	"github.com/javiermolinar/wdpick/internal/picker"
	"github.com/javiermolinar/wdpick/internal/ranges"
	"github.com/javiermolinar/wdpick/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModePrompt      // go-to-date input is focused
	ModeHelp        // key help overlay
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "Normal"
	case ModePrompt:
		return "Prompt"
	case ModeHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// Model is the main TUI model.
type Model struct {
	config *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Selection and displayed month; shared across model copies.
	picker *picker.Picker
	clock  ranges.Clock
	month  *monthOption

	cursor time.Time
	mode   Mode

	// Last emitted range, returned by Run.
	result *picker.RangeChange

	prompt textinput.Model

	width  int
	height int

	statusMsg  string
	statusTime time.Time
}

type monthOption struct {
	year  int
	month time.Month
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithClock anchors "today" and the predefined ranges to clock.
func WithClock(clock ranges.Clock) ModelOption {
	return func(m *Model) { m.clock = clock }
}

// WithMonth sets the initially displayed month.
func WithMonth(year int, month time.Month) ModelOption {
	return func(m *Model) { m.month = &monthOption{year: year, month: month} }
}

// New creates a new TUI model.
func New(cfg *config.Config, opts ...ModelOption) *Model {
	if cfg == nil {
		cfg = config.Default()
	}

	ti := textinput.New()
	ti.Placeholder = "YYYY-MM-DD, today, next-friday..."
	ti.CharLimit = 32
	ti.Prompt = "Go to: "

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("mocha")
	}
	styles := NewStyles(t)

	m := &Model{
		config: cfg,
		theme:  t,
		styles: styles,
		mode:   ModeNormal,
		prompt: ti,
	}
	for _, opt := range opts {
		opt(m)
	}

	predefined, err := cfg.PredefinedRanges(m.clock)
	if err != nil {
		predefined = ranges.Catalog(m.clock)
		m.statusMsg = err.Error()
	}

	pickerOpts := []picker.Option{
		picker.WithClock(m.clock),
		picker.WithDateRangeChange(func(r dateutil.DateRange, weekendDates []time.Time) {
			LogRangeChange(&picker.RangeChange{Range: r, WeekendDates: weekendDates})
		}),
	}
	if m.month != nil {
		pickerOpts = append(pickerOpts, picker.WithMonth(m.month.year, m.month.month))
	}
	m.picker = picker.New(predefined, pickerOpts...)

	nav := m.picker.Navigator()
	nav.OnMonthChange = func(month time.Month) {
		LogNavigation(nav.Year(), month, "month")
	}
	nav.OnYearChange = func(year int) {
		LogNavigation(year, nav.Month(), "year")
	}

	m.cursor = m.initialCursor()
	return m
}

// initialCursor is today when visible, otherwise the first of the shown month.
func (m *Model) initialCursor() time.Time {
	today := m.picker.Today()
	nav := m.picker.Navigator()
	if nav.Contains(today) {
		return today
	}
	return dateutil.StartOfDay(nav.Year(), nav.Month(), 1, today.Location())
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	if m.statusMsg != "" {
		return m.clearStatusLater()
	}
	return nil
}

// Picker returns the underlying picker.
func (m Model) Picker() *picker.Picker { return m.picker }

// Cursor returns the highlighted date.
func (m Model) Cursor() time.Time { return m.cursor }

// Mode returns the interaction mode.
func (m Model) Mode() Mode { return m.mode }

// Result returns the last emitted range change, or nil.
func (m Model) Result() *picker.RangeChange { return m.result }

// Run starts the TUI and returns the last completed range, if any.
func Run(cfg *config.Config) (*picker.RangeChange, error) {
	return RunWithDebug(cfg, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(cfg *config.Config, debug bool) (*picker.RangeChange, error) {
	if err := InitDebugLogger(debug); err != nil {
		return nil, err
	}
	defer CloseDebugLogger()

	model := New(cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}
	if m, ok := finalModel.(Model); ok {
		return m.result, nil
	}
	if m, ok := finalModel.(*Model); ok {
		return m.result, nil
	}
	return nil, nil
}
