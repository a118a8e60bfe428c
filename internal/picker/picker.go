package picker

import (
	"time"

	"github.com/javiermolinar/wdpick/internal/calendar"
	"github.com/javiermolinar/wdpick/internal/dateutil"
	"github.com/javiermolinar/wdpick/internal/ranges"
)

// Placeholder is the label shown while no complete range is selected.
const Placeholder = "Start Date - End Date"

// ChangeFunc receives a completed range and the weekend dates inside it.
type ChangeFunc func(r dateutil.DateRange, weekendDates []time.Time)

// Picker owns a selection and the displayed month. It is not safe for
// concurrent use.
type Picker struct {
	state    State
	ranges   []ranges.PredefinedRange
	nav      *calendar.Navigator
	onChange ChangeFunc
	now      ranges.Clock
}

// Option configures a Picker.
type Option func(*Picker)

// WithDateRangeChange sets the callback invoked once per completed selection.
func WithDateRangeChange(fn ChangeFunc) Option {
	return func(p *Picker) { p.onChange = fn }
}

// WithMonth sets the initially displayed month.
func WithMonth(year int, month time.Month) Option {
	return func(p *Picker) { p.nav = calendar.NewNavigator(year, month) }
}

// WithClock sets the clock used for the initial month and Today.
func WithClock(clock ranges.Clock) Option {
	return func(p *Picker) { p.now = clock }
}

// New creates a picker offering the given predefined ranges. Without
// WithMonth it shows the current month.
func New(predefined []ranges.PredefinedRange, opts ...Option) *Picker {
	p := &Picker{ranges: predefined}
	for _, opt := range opts {
		opt(p)
	}
	if p.nav == nil {
		today := p.Today()
		p.nav = calendar.NewNavigator(today.Year(), today.Month())
	}
	return p
}

// Today returns the picker clock's current date.
func (p *Picker) Today() time.Time {
	if p.now != nil {
		return dateutil.TruncateToDay(p.now())
	}
	return dateutil.TruncateToDay(time.Now())
}

// State returns the current selection.
func (p *Picker) State() State { return p.state }

// Navigator returns the month navigator.
func (p *Picker) Navigator() *calendar.Navigator { return p.nav }

// PredefinedRanges returns the offered predefined ranges.
func (p *Picker) PredefinedRanges() []ranges.PredefinedRange { return p.ranges }

// Select handles a click on date. Weekend dates are ignored. It returns the
// emitted change, or nil when the selection is still incomplete.
func (p *Picker) Select(date time.Time) *RangeChange {
	return p.apply(Click{Date: date})
}

// SelectPredefined evaluates r now and selects the weekday-adjusted result.
func (p *Picker) SelectPredefined(r ranges.PredefinedRange) *RangeChange {
	return p.apply(PickRange{Range: r.GetRange()})
}

// SelectPredefinedAt selects the i-th predefined range. Out of range
// indexes are ignored.
func (p *Picker) SelectPredefinedAt(i int) *RangeChange {
	if i < 0 || i >= len(p.ranges) {
		return nil
	}
	return p.SelectPredefined(p.ranges[i])
}

// Reset clears the selection.
func (p *Picker) Reset() {
	p.state, _ = Transition(p.state, Reset{})
}

func (p *Picker) apply(ev Event) *RangeChange {
	next, change := Transition(p.state, ev)
	p.state = next
	if change != nil && p.onChange != nil {
		p.onChange(change.Range, change.WeekendDates)
	}
	return change
}

// Label returns the formatted selection, or Placeholder when incomplete.
func (p *Picker) Label() string {
	r, ok := p.state.Range()
	if !ok {
		return Placeholder
	}
	return r.String()
}

// CellView is a grid cell annotated with selection state.
type CellView struct {
	calendar.Cell
	Selected bool
	InRange  bool
	Weekend  bool
	Today    bool
}

// Cells returns the displayed month's grid, in the clock's location, with
// selection annotations.
func (p *Picker) Cells() []CellView {
	today := p.Today()
	grid := calendar.BuildGridIn(p.nav.Year(), p.nav.Month(), today.Location())
	out := make([]CellView, len(grid))
	for i, c := range grid {
		out[i] = CellView{
			Cell:     c,
			Selected: p.state.IsEndpoint(c.Date),
			InRange:  p.state.InRange(c.Date),
			Weekend:  dateutil.IsWeekend(c.Date),
			Today:    dateutil.SameDay(c.Date, today),
		}
	}
	return out
}
