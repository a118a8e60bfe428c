package calendar

import "time"

// Navigator tracks the displayed year and month. The callbacks fire after
// the corresponding field changes; either may be nil.
type Navigator struct {
	year  int
	month time.Month

	OnYearChange  func(year int)
	OnMonthChange func(month time.Month)
}

// NewNavigator returns a navigator showing the given month.
func NewNavigator(year int, month time.Month) *Navigator {
	return &Navigator{year: year, month: month}
}

// Year returns the displayed year.
func (n *Navigator) Year() int { return n.year }

// Month returns the displayed month.
func (n *Navigator) Month() time.Month { return n.month }

// Grid builds the cells for the displayed month.
func (n *Navigator) Grid() []Cell {
	return BuildGrid(n.year, n.month)
}

// NextMonth advances one month, rolling December into January of the next year.
func (n *Navigator) NextMonth() {
	if n.month == time.December {
		n.setYear(n.year + 1)
		n.setMonth(time.January)
		return
	}
	n.setMonth(n.month + 1)
}

// PrevMonth goes back one month, rolling January into December of the previous year.
func (n *Navigator) PrevMonth() {
	if n.month == time.January {
		n.setYear(n.year - 1)
		n.setMonth(time.December)
		return
	}
	n.setMonth(n.month - 1)
}

// NextYear advances one year keeping the month.
func (n *Navigator) NextYear() { n.setYear(n.year + 1) }

// PrevYear goes back one year keeping the month.
func (n *Navigator) PrevYear() { n.setYear(n.year - 1) }

// Jump shows the given month, firing callbacks only for fields that change.
func (n *Navigator) Jump(year int, month time.Month) {
	if year != n.year {
		n.setYear(year)
	}
	if month != n.month {
		n.setMonth(month)
	}
}

// Contains reports whether t falls in the displayed month.
func (n *Navigator) Contains(t time.Time) bool {
	return t.Year() == n.year && t.Month() == n.month
}

func (n *Navigator) setYear(year int) {
	n.year = year
	if n.OnYearChange != nil {
		n.OnYearChange(year)
	}
}

func (n *Navigator) setMonth(month time.Month) {
	n.month = month
	if n.OnMonthChange != nil {
		n.OnMonthChange(month)
	}
}
