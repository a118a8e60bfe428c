package calendar

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/javiermolinar/wdpick/internal/dateutil"
)

func TestBuildGrid_Shape(t *testing.T) {
	for year := 2023; year <= 2026; year++ {
		for month := time.January; month <= time.December; month++ {
			checkGridShape(t, BuildGrid(year, month), year, month)
		}
	}
}

// Santiago, Havana, Asuncion and Tehran start DST at midnight, so midnight
// of the transition day does not exist.
func TestBuildGridIn_MidnightDSTZones(t *testing.T) {
	zones := []string{"America/Santiago", "America/Havana", "America/Asuncion", "Asia/Tehran", "Europe/Berlin", "UTC"}
	for _, zone := range zones {
		t.Run(zone, func(t *testing.T) {
			loc := mustLoadLocation(t, zone)
			for year := 2010; year <= 2029; year++ {
				for month := time.January; month <= time.December; month++ {
					checkGridShape(t, BuildGridIn(year, month, loc), year, month)
				}
			}
		})
	}
}

func TestBuildGridIn_SantiagoSeptember2024(t *testing.T) {
	loc := mustLoadLocation(t, "America/Santiago")
	cells := BuildGridIn(2024, time.September, loc)

	if len(cells) != 35 {
		t.Fatalf("got %d cells, want 35", len(cells))
	}
	// DST started at midnight on Sunday the 8th.
	sun := cells[7]
	if got := dateutil.FormatDate(sun.Date); got != "2024-09-08" {
		t.Errorf("cell 7 = %s, want 2024-09-08", got)
	}
	if sun.Date.Weekday() != time.Sunday {
		t.Errorf("cell 7 weekday = %s", sun.Date.Weekday())
	}
}

func TestBuildGridIn_SkippedDayTerminates(t *testing.T) {
	// Samoa skipped 2011-12-30 when it crossed the date line.
	loc := mustLoadLocation(t, "Pacific/Apia")

	done := make(chan []Cell, 1)
	go func() { done <- BuildGridIn(2011, time.December, loc) }()

	select {
	case cells := <-done:
		if len(cells) != 35 {
			t.Fatalf("got %d cells, want 35", len(cells))
		}
		current := 0
		for _, c := range cells {
			if c.IsCurrentMonth {
				current++
			}
		}
		if current != 31 {
			t.Errorf("%d current-month cells, want 31", current)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("BuildGridIn did not return")
	}
}

func mustLoadLocation(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("loading %s: %v", name, err)
	}
	return loc
}

func checkGridShape(t *testing.T, cells []Cell, year int, month time.Month) {
	t.Helper()
	name := MonthTitle(year, month)

	if len(cells)%DaysPerWeek != 0 || len(cells) > maxCells {
		t.Fatalf("%s: %d cells", name, len(cells))
	}
	if wd := cells[0].Date.Weekday(); wd != time.Sunday {
		t.Errorf("%s: first cell is %s, want Sunday", name, wd)
	}
	if wd := cells[len(cells)-1].Date.Weekday(); wd != time.Saturday {
		t.Errorf("%s: last cell is %s, want Saturday", name, wd)
	}

	current := 0
	for i, c := range cells {
		if c.IsCurrentMonth {
			current++
			if c.Date.Month() != month || c.Date.Year() != year {
				t.Errorf("%s: cell %s marked current", name, dateutil.FormatDate(c.Date))
			}
		}
		if i > 0 && !dateutil.SameDay(c.Date, dateutil.AddDays(cells[i-1].Date, 1)) {
			t.Errorf("%s: cell %d (%s) does not follow %s", name, i,
				dateutil.FormatDate(c.Date), dateutil.FormatDate(cells[i-1].Date))
		}
	}
	if want := dateutil.DaysInMonth(year, month); current != want {
		t.Errorf("%s: %d current-month cells, want %d", name, current, want)
	}
}

func TestBuildGrid_January2025(t *testing.T) {
	// January 1st 2025 is a Wednesday, the 31st a Friday.
	cells := BuildGrid(2025, time.January)

	if len(cells) != 35 {
		t.Fatalf("got %d cells, want 35", len(cells))
	}
	if got := dateutil.FormatDate(cells[0].Date); got != "2024-12-29" {
		t.Errorf("first cell = %s, want 2024-12-29", got)
	}
	if cells[0].IsCurrentMonth || cells[2].IsCurrentMonth {
		t.Error("december padding should not be current month")
	}
	if !cells[3].IsCurrentMonth || cells[3].Date.Day() != 1 {
		t.Errorf("cell 3 = %+v, want January 1st", cells[3])
	}
	if got := dateutil.FormatDate(cells[34].Date); got != "2025-02-01" {
		t.Errorf("last cell = %s, want 2025-02-01", got)
	}
	if cells[34].IsCurrentMonth {
		t.Error("february padding should not be current month")
	}
}

func TestBuildGrid_NoPadding(t *testing.T) {
	// February 2015 starts on Sunday and ends on Saturday.
	cells := BuildGrid(2015, time.February)
	if len(cells) != 28 {
		t.Fatalf("got %d cells, want 28", len(cells))
	}
	for _, c := range cells {
		if !c.IsCurrentMonth {
			t.Fatalf("unexpected padding cell %s", dateutil.FormatDate(c.Date))
		}
	}
}

func TestWeeks(t *testing.T) {
	weeks := Weeks(BuildGrid(2025, time.March))
	if len(weeks) != 6 {
		t.Fatalf("got %d weeks, want 6", len(weeks))
	}
	for i, w := range weeks {
		if len(w) != DaysPerWeek {
			t.Errorf("week %d has %d days", i, len(w))
		}
	}
}

func TestDayHeaders(t *testing.T) {
	headers := DayHeaders()
	if len(headers) != 7 || headers[0] != "Su" || headers[6] != "Sa" {
		t.Fatalf("unexpected headers %v", headers)
	}
	headers[0] = "xx"
	if DayHeaders()[0] != "Su" {
		t.Error("DayHeaders returned shared slice")
	}
}

func TestMonthTitle(t *testing.T) {
	if got := MonthTitle(2025, time.January); got != "January 2025" {
		t.Errorf("got %q", got)
	}
}
