// Package dateutil provides date parsing, formatting and weekday range utilities.
package dateutil

import (
	"errors"
	"strings"
	"time"
)

// DateLayout is the display and input layout for dates.
const DateLayout = "2006-01-02"

// Validation errors.
var (
	ErrInvalidDateFormat  = errors.New("date must be in YYYY-MM-DD format")
	ErrEndDateBeforeStart = errors.New("end date must be on or after start date")
)

// weekdayMap maps weekday names to time.Weekday values.
var weekdayMap = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// DateRange is an inclusive pair of dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange creates a new DateRange with validation.
// startDate can be empty (defaults to today) or in YYYY-MM-DD format.
// endDate can be empty (defaults to startDate) or in YYYY-MM-DD format.
// Returns an error if endDate is before startDate.
func NewDateRange(startDate, endDate string) (DateRange, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return DateRange{}, err
	}

	end := start
	if endDate != "" {
		end, err = ParseDate(endDate)
		if err != nil {
			return DateRange{}, err
		}
	}

	if end.Before(start) {
		return DateRange{}, ErrEndDateBeforeStart
	}

	return DateRange{Start: start, End: end}, nil
}

// Valid reports whether Start is on or before End.
func (r DateRange) Valid() bool {
	return !r.Start.After(r.End)
}

// Contains reports whether t falls on a day within the range.
func (r DateRange) Contains(t time.Time) bool {
	d := TruncateToDay(t)
	return !d.Before(TruncateToDay(r.Start)) && !d.After(TruncateToDay(r.End))
}

// String formats the range as "YYYY-MM-DD - YYYY-MM-DD".
func (r DateRange) String() string {
	return FormatDate(r.Start) + " - " + FormatDate(r.End)
}

// ParseDate parses a date string in YYYY-MM-DD format as a local date.
// If the string is empty, returns today's date.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return TruncateToDay(time.Now()), nil
	}
	return parseDateIn(s, time.Local)
}

// parseDateIn parses a YYYY-MM-DD date as the start of that day in loc.
func parseDateIn(s string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return StartOfDay(t.Year(), t.Month(), t.Day(), loc), nil
}

// FormatDate formats t as YYYY-MM-DD. The zero time formats as "".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// StartOfDay returns the first instant of the calendar day year-month-day
// in loc. Out-of-range values are normalized as by time.Date. When a DST
// change skips midnight the day starts at its first existing hour. A day
// skipped entirely (Pacific/Apia, 2011-12-30) has no instant of its own and
// resolves to noon as time.Date places it.
func StartOfDay(year int, month time.Month, day int, loc *time.Location) time.Time {
	y, m, d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Date()
	for h := 0; h < 24; h++ {
		t := time.Date(y, m, d, h, 0, 0, 0, loc)
		if ty, tm, td := t.Date(); ty == y && tm == m && td == d {
			return t
		}
	}
	return time.Date(y, m, d, 12, 0, 0, 0, loc)
}

// TruncateToDay returns the start of t's calendar day in t's location.
func TruncateToDay(t time.Time) time.Time {
	return StartOfDay(t.Year(), t.Month(), t.Day(), t.Location())
}

// civilDay returns t's calendar date at midnight UTC, where every day is
// 24 hours long.
func civilDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the start of the day n calendar days after t's date
// (n may be negative). The step is taken on the calendar date, so it never
// lands on the same date twice across a DST change.
func AddDays(t time.Time, n int) time.Time {
	u := civilDay(t).AddDate(0, 0, n)
	return StartOfDay(u.Year(), u.Month(), u.Day(), t.Location())
}

// DaysBetween returns the number of calendar days from a's date to b's date.
func DaysBetween(a, b time.Time) int {
	return int(civilDay(b).Sub(civilDay(a)) / (24 * time.Hour))
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	ya, ma, da := a.Date()
	yb, mb, db := b.Date()
	return ya == yb && ma == mb && da == db
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// QuarterRange returns the first and last day of the calendar quarter containing t.
func QuarterRange(t time.Time) DateRange {
	firstMonth := time.Month((int(t.Month())-1)/3*3 + 1)
	start := StartOfDay(t.Year(), firstMonth, 1, t.Location())
	end := StartOfDay(t.Year(), firstMonth+3, 0, t.Location())
	return DateRange{Start: start, End: end}
}

// ParseRelativeDate parses a date string that can be:
//   - Empty string or "today": returns relativeTo date
//   - Absolute date: "2025-01-15" (YYYY-MM-DD)
//   - Keywords: "tomorrow", "yesterday"
//   - Weekday names: "monday" through "sunday" (next occurrence, always future)
//   - Next prefixed: "next-monday" through "next-sunday", "next-week"
//   - Last prefixed: "last-monday" through "last-sunday", "last-week"
//
// All inputs are case-insensitive. Returns ErrInvalidDateFormat for
// unrecognized input.
func ParseRelativeDate(s string, relativeTo time.Time) (time.Time, error) {
	today := TruncateToDay(relativeTo)
	input := strings.ToLower(strings.TrimSpace(s))

	switch input {
	case "", "today":
		return today, nil
	case "tomorrow":
		return AddDays(today, 1), nil
	case "yesterday":
		return AddDays(today, -1), nil
	case "next-week":
		return AddDays(today, 7), nil
	case "last-week":
		return AddDays(today, -7), nil
	}

	if strings.HasPrefix(input, "next-") {
		if targetDay, ok := weekdayMap[strings.TrimPrefix(input, "next-")]; ok {
			return nextWeekday(today, targetDay), nil
		}
		return time.Time{}, ErrInvalidDateFormat
	}
	if strings.HasPrefix(input, "last-") {
		if targetDay, ok := weekdayMap[strings.TrimPrefix(input, "last-")]; ok {
			return previousWeekday(today, targetDay), nil
		}
		return time.Time{}, ErrInvalidDateFormat
	}

	if targetDay, ok := weekdayMap[input]; ok {
		return nextWeekday(today, targetDay), nil
	}

	return parseDateIn(input, relativeTo.Location())
}

// nextWeekday returns the next occurrence of the given weekday after today.
// If today is the target weekday, returns one week from today.
func nextWeekday(today time.Time, target time.Weekday) time.Time {
	daysUntil := int(target) - int(today.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return AddDays(today, daysUntil)
}

// previousWeekday returns the most recent occurrence of the weekday before today.
func previousWeekday(today time.Time, target time.Weekday) time.Time {
	daysSince := int(today.Weekday()) - int(target)
	if daysSince <= 0 {
		daysSince += 7
	}
	return AddDays(today, -daysSince)
}
