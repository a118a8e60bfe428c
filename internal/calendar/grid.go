// Package calendar builds month grids and handles month/year navigation.
package calendar

import (
	"strconv"
	"time"

	"github.com/javiermolinar/wdpick/internal/dateutil"
)

// DaysPerWeek is the number of cells in a grid row.
const DaysPerWeek = 7

// maxCells is the size of a six-week grid, the most any month needs.
const maxCells = 6 * DaysPerWeek

// Cell is one grid entry.
type Cell struct {
	Date           time.Time
	IsCurrentMonth bool
}

// BuildGrid returns the cells for a month view in local time, starting on
// the Sunday on or before the 1st and ending on the Saturday on or after
// the last day. Padding days from adjacent months have IsCurrentMonth unset.
func BuildGrid(year int, month time.Month) []Cell {
	return BuildGridIn(year, month, time.Local)
}

// BuildGridIn is BuildGrid for an explicit location. Days are counted on
// the calendar, so zones whose DST change skips midnight still get one cell
// per date.
func BuildGridIn(year int, month time.Month, loc *time.Location) []Cell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)

	gridStart := first.AddDate(0, 0, -int(first.Weekday()))
	gridEnd := last.AddDate(0, 0, int(time.Saturday-last.Weekday()))
	n := min(dateutil.DaysBetween(gridStart, gridEnd)+1, maxCells)

	// first is normalized, so compare year/month from it rather than from
	// the inputs (month may be out of range, e.g. 13).
	wantYear, wantMonth := first.Year(), first.Month()

	cells := make([]Cell, 0, n)
	for i := range n {
		d := gridStart.AddDate(0, 0, i)
		cells = append(cells, Cell{
			Date:           dateutil.StartOfDay(d.Year(), d.Month(), d.Day(), loc),
			IsCurrentMonth: d.Year() == wantYear && d.Month() == wantMonth,
		})
	}
	return cells
}

// Weeks splits cells into rows of seven.
func Weeks(cells []Cell) [][]Cell {
	weeks := make([][]Cell, 0, len(cells)/DaysPerWeek+1)
	for i := 0; i < len(cells); i += DaysPerWeek {
		end := min(i+DaysPerWeek, len(cells))
		weeks = append(weeks, cells[i:end])
	}
	return weeks
}

var dayHeaders = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// DayHeaders returns the short weekday labels, Sunday first.
func DayHeaders() []string {
	out := make([]string, len(dayHeaders))
	copy(out, dayHeaders)
	return out
}

// MonthTitle returns e.g. "January 2025".
func MonthTitle(year int, month time.Month) string {
	return month.String() + " " + strconv.Itoa(year)
}
