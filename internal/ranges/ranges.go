// Package ranges provides the catalog of predefined quick-pick date ranges.
package ranges

import (
	"errors"
	"fmt"
	"time"

	"github.com/javiermolinar/wdpick/internal/dateutil"
)

// ErrUnknownRange is returned when a label does not match any catalog entry.
var ErrUnknownRange = errors.New("unknown predefined range")

// Labels of the built-in ranges.
const (
	LabelLast7Days   = "Last 7 days"
	LabelLast30Days  = "Last 30 days"
	LabelNext7Days   = "Next 7 days"
	LabelNext30Days  = "Next 30 days"
	LabelThisQuarter = "This Quarter"
)

// Clock returns the current instant. A nil Clock means time.Now.
type Clock func() time.Time

func (c Clock) today() time.Time {
	now := time.Now
	if c != nil {
		now = c
	}
	return dateutil.TruncateToDay(now())
}

// PredefinedRange is a named range computed when GetRange is called.
type PredefinedRange struct {
	Label    string
	GetRange func() dateutil.DateRange
}

// Labels returns the built-in labels in catalog order.
func Labels() []string {
	return []string{LabelLast7Days, LabelLast30Days, LabelNext7Days, LabelNext30Days, LabelThisQuarter}
}

// Catalog returns the built-in ranges anchored to clock. Each GetRange reads
// the clock when called, so a catalog built once stays current.
func Catalog(clock Clock) []PredefinedRange {
	return []PredefinedRange{
		{Label: LabelLast7Days, GetRange: func() dateutil.DateRange { return lastDays(clock, 7) }},
		{Label: LabelLast30Days, GetRange: func() dateutil.DateRange { return lastDays(clock, 30) }},
		{Label: LabelNext7Days, GetRange: func() dateutil.DateRange { return nextDays(clock, 7) }},
		{Label: LabelNext30Days, GetRange: func() dateutil.DateRange { return nextDays(clock, 30) }},
		{Label: LabelThisQuarter, GetRange: func() dateutil.DateRange { return dateutil.QuarterRange(clock.today()) }},
	}
}

func lastDays(clock Clock, n int) dateutil.DateRange {
	today := clock.today()
	return dateutil.DateRange{Start: dateutil.AddDays(today, -n), End: today}
}

func nextDays(clock Clock, n int) dateutil.DateRange {
	today := clock.today()
	return dateutil.DateRange{Start: today, End: dateutil.AddDays(today, n)}
}

// Find returns the entry with the given label.
func Find(catalog []PredefinedRange, label string) (PredefinedRange, bool) {
	for _, r := range catalog {
		if r.Label == label {
			return r, true
		}
	}
	return PredefinedRange{}, false
}

// Select returns the entries matching labels, in the order of labels.
// An empty labels slice selects the whole catalog.
func Select(catalog []PredefinedRange, labels []string) ([]PredefinedRange, error) {
	if len(labels) == 0 {
		return catalog, nil
	}
	out := make([]PredefinedRange, 0, len(labels))
	for _, label := range labels {
		r, ok := Find(catalog, label)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownRange, label)
		}
		out = append(out, r)
	}
	return out, nil
}
