package dateutil

import "time"

// IsWeekend reports whether t falls on a Saturday or Sunday in its own location.
func IsWeekend(t time.Time) bool {
	return isWeekendDay(t.Weekday())
}

func isWeekendDay(wd time.Weekday) bool {
	return wd == time.Saturday || wd == time.Sunday
}

// AdjustToWeekdays moves a weekend start forward and a weekend end backward
// until each lands on a weekday. The two endpoints are adjusted
// independently, so a range lying entirely on one weekend comes back
// inverted; check Valid before surfacing the result.
func AdjustToWeekdays(r DateRange) DateRange {
	start, end := r.Start, r.End
	if IsWeekend(start) {
		start = AddDays(start, daysToWeekday(civilDay(start), 1))
	}
	if IsWeekend(end) {
		end = AddDays(end, daysToWeekday(civilDay(end), -1))
	}
	return DateRange{Start: start, End: end}
}

// daysToWeekday counts steps of dir days from the calendar date d to the
// nearest weekday.
func daysToWeekday(d time.Time, dir int) int {
	n := 0
	for isWeekendDay(d.AddDate(0, 0, n).Weekday()) {
		n += dir
	}
	return n
}

// FindWeekendDates returns every weekend date in [start, end] in ascending
// order, each at the start of its day in start's location. It returns nil
// when end is before start.
func FindWeekendDates(start, end time.Time) []time.Time {
	var weekends []time.Time
	first := civilDay(start)
	n := DaysBetween(start, end)
	for i := 0; i <= n; i++ {
		if d := first.AddDate(0, 0, i); isWeekendDay(d.Weekday()) {
			weekends = append(weekends, StartOfDay(d.Year(), d.Month(), d.Day(), start.Location()))
		}
	}
	return weekends
}

// FormatDates formats each date with FormatDate.
func FormatDates(dates []time.Time) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = FormatDate(d)
	}
	return out
}
