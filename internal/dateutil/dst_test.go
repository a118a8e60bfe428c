package dateutil

import (
	"testing"
	"time"
	_ "time/tzdata"
)

func mustLoadLocation(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("loading %s: %v", name, err)
	}
	return loc
}

// midnightDSTZones start DST at 00:00, so that midnight does not exist.
var midnightDSTZones = []string{"America/Santiago", "America/Havana", "America/Asuncion", "America/Sao_Paulo", "Asia/Tehran"}

func TestStartOfDay_SkippedMidnight(t *testing.T) {
	loc := mustLoadLocation(t, "America/Santiago")

	got := StartOfDay(2024, time.September, 8, loc)
	if FormatDate(got) != "2024-09-08" {
		t.Fatalf("got %s, want 2024-09-08", got)
	}
	if got.Hour() != 1 {
		t.Errorf("hour = %d, want 1", got.Hour())
	}
	if !TruncateToDay(got).Equal(got) {
		t.Errorf("TruncateToDay moved %s", got)
	}
}

func TestAddDays_AcrossMidnightDST(t *testing.T) {
	loc := mustLoadLocation(t, "America/Santiago")
	sat := StartOfDay(2024, time.September, 7, loc)

	tests := []struct {
		n    int
		want string
	}{
		{1, "2024-09-08"},
		{2, "2024-09-09"},
		{-1, "2024-09-06"},
	}
	for _, tt := range tests {
		if got := FormatDate(AddDays(sat, tt.n)); got != tt.want {
			t.Errorf("AddDays(%d) = %s, want %s", tt.n, got, tt.want)
		}
	}

	if got := FormatDate(AddDays(AddDays(sat, 1), -1)); got != "2024-09-07" {
		t.Errorf("round trip = %s, want 2024-09-07", got)
	}
}

func TestAddDays_EveryDayAdvancesOnce(t *testing.T) {
	for _, zone := range midnightDSTZones {
		t.Run(zone, func(t *testing.T) {
			loc := mustLoadLocation(t, zone)
			d := StartOfDay(2010, time.January, 1, loc)
			want := time.Date(2010, time.January, 1, 0, 0, 0, 0, time.UTC)
			for i := 0; i < 20*366; i++ {
				d = AddDays(d, 1)
				want = want.AddDate(0, 0, 1)
				if !SameDay(d, want) {
					t.Fatalf("step %d: got %s, want %s", i, FormatDate(d), want.Format(DateLayout))
				}
			}
		})
	}
}

func TestFindWeekendDates_SantiagoDST(t *testing.T) {
	loc := mustLoadLocation(t, "America/Santiago")
	start := StartOfDay(2024, time.September, 2, loc)
	end := StartOfDay(2024, time.September, 13, loc)

	got := FormatDates(FindWeekendDates(start, end))
	want := []string{"2024-09-07", "2024-09-08"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestFindWeekendDates_MidnightDSTMatchesCalendar(t *testing.T) {
	for _, zone := range midnightDSTZones {
		t.Run(zone, func(t *testing.T) {
			loc := mustLoadLocation(t, zone)
			for year := 2010; year <= 2029; year++ {
				for month := time.January; month <= time.December; month++ {
					start := StartOfDay(year, month, 1, loc)
					end := StartOfDay(year, month+1, 0, loc)

					var want []string
					for d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC); d.Month() == month; d = d.AddDate(0, 0, 1) {
						if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
							want = append(want, d.Format(DateLayout))
						}
					}

					got := FormatDates(FindWeekendDates(start, end))
					if len(got) != len(want) {
						t.Fatalf("%d-%02d: got %v, want %v", year, month, got, want)
					}
					for i := range want {
						if got[i] != want[i] {
							t.Errorf("%d-%02d index %d: got %s, want %s", year, month, i, got[i], want[i])
						}
					}
				}
			}
		})
	}
}

func TestAdjustToWeekdays_MidnightDST(t *testing.T) {
	tehran := mustLoadLocation(t, "Asia/Tehran")
	santiago := mustLoadLocation(t, "America/Santiago")

	tests := []struct {
		name      string
		in        DateRange
		wantStart string
		wantEnd   string
	}{
		{
			name: "santiago weekend spanning the DST start",
			in: DateRange{
				Start: StartOfDay(2024, time.September, 7, santiago),
				End:   StartOfDay(2024, time.September, 8, santiago),
			},
			wantStart: "2024-09-09",
			wantEnd:   "2024-09-06",
		},
		{
			name: "tehran weekends around the march DST start",
			in: DateRange{
				Start: StartOfDay(2010, time.March, 20, tehran),
				End:   StartOfDay(2010, time.March, 28, tehran),
			},
			wantStart: "2010-03-22",
			wantEnd:   "2010-03-26",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AdjustToWeekdays(tt.in)
			if s := FormatDate(got.Start); s != tt.wantStart {
				t.Errorf("start = %s, want %s", s, tt.wantStart)
			}
			if e := FormatDate(got.End); e != tt.wantEnd {
				t.Errorf("end = %s, want %s", e, tt.wantEnd)
			}
			if IsWeekend(got.Start) || IsWeekend(got.End) {
				t.Errorf("adjusted range %s has a weekend endpoint", got)
			}
		})
	}
}

func TestParseDate_SkippedMidnight(t *testing.T) {
	loc := mustLoadLocation(t, "America/Santiago")
	ref := StartOfDay(2024, time.September, 1, loc)

	got, err := ParseRelativeDate("2024-09-08", ref)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if FormatDate(got) != "2024-09-08" {
		t.Errorf("got %s, want 2024-09-08", got)
	}
}
