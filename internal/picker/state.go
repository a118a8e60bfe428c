// Package picker implements the weekday range selection protocol.
package picker

import (
	"time"

	"github.com/javiermolinar/wdpick/internal/dateutil"
)

// Phase is the selection progress derived from a State.
type Phase int

const (
	PhaseEmpty     Phase = iota // no start, no end
	PhaseStartOnly              // start picked, waiting for end
	PhaseComplete               // both picked
)

func (p Phase) String() string {
	switch p {
	case PhaseEmpty:
		return "empty"
	case PhaseStartOnly:
		return "start_only"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// MinYear is the first selectable year. The zero time marks an unset
// endpoint, and 0001-01-01 in UTC is the zero time, so year 1 is excluded.
const MinYear = 2

// Selectable reports whether t is within the supported date range.
func Selectable(t time.Time) bool {
	return t.Year() >= MinYear
}

// State is the current selection. A zero time means the endpoint is unset.
type State struct {
	Start time.Time
	End   time.Time
}

// Phase returns the selection phase.
func (s State) Phase() Phase {
	switch {
	case s.Start.IsZero():
		return PhaseEmpty
	case s.End.IsZero():
		return PhaseStartOnly
	default:
		return PhaseComplete
	}
}

// Range returns the selected range and whether the selection is complete.
func (s State) Range() (dateutil.DateRange, bool) {
	if s.Phase() != PhaseComplete {
		return dateutil.DateRange{}, false
	}
	return dateutil.DateRange{Start: s.Start, End: s.End}, true
}

// IsEndpoint reports whether t is the selected start or end day.
func (s State) IsEndpoint(t time.Time) bool {
	return (!s.Start.IsZero() && dateutil.SameDay(s.Start, t)) ||
		(!s.End.IsZero() && dateutil.SameDay(s.End, t))
}

// InRange reports whether t lies within a complete selection.
func (s State) InRange(t time.Time) bool {
	r, ok := s.Range()
	return ok && r.Contains(t)
}

// RangeChange is emitted when a selection completes.
type RangeChange struct {
	Range        dateutil.DateRange
	WeekendDates []time.Time
}

// Event drives a transition.
type Event interface {
	isEvent()
}

// Click is a click on a calendar date.
type Click struct {
	Date time.Time
}

// PickRange selects a range directly, bypassing the click protocol.
type PickRange struct {
	Range dateutil.DateRange
}

// Reset clears the selection.
type Reset struct{}

func (Click) isEvent()     {}
func (PickRange) isEvent() {}
func (Reset) isEvent()     {}

// Transition applies ev to s. It returns the next state and, when the event
// completes a selection, the range change to emit.
//
// Weekend clicks and dates before MinYear are ignored. A click from Empty or
// Complete starts a new selection; from StartOnly, an earlier date replaces
// the start and any other date completes the range. PickRange adjusts both
// endpoints to weekdays and completes immediately, unless the adjusted range
// is inverted, in which case it is ignored.
func Transition(s State, ev Event) (State, *RangeChange) {
	switch ev := ev.(type) {
	case Click:
		d := dateutil.TruncateToDay(ev.Date)
		if dateutil.IsWeekend(d) || !Selectable(d) {
			return s, nil
		}
		switch s.Phase() {
		case PhaseStartOnly:
			if d.Before(s.Start) {
				return State{Start: d}, nil
			}
			next := State{Start: s.Start, End: d}
			return next, newRangeChange(next.Start, next.End)
		default:
			return State{Start: d}, nil
		}

	case PickRange:
		adjusted := dateutil.AdjustToWeekdays(dateutil.DateRange{
			Start: dateutil.TruncateToDay(ev.Range.Start),
			End:   dateutil.TruncateToDay(ev.Range.End),
		})
		if !adjusted.Valid() || !Selectable(adjusted.Start) {
			return s, nil
		}
		next := State{Start: adjusted.Start, End: adjusted.End}
		return next, newRangeChange(next.Start, next.End)

	case Reset:
		return State{}, nil
	}
	return s, nil
}

func newRangeChange(start, end time.Time) *RangeChange {
	return &RangeChange{
		Range:        dateutil.DateRange{Start: start, End: end},
		WeekendDates: dateutil.FindWeekendDates(start, end),
	}
}
