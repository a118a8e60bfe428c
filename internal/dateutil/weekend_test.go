package dateutil

import (
	"testing"
	"time"
)

func TestIsWeekend(t *testing.T) {
	// Walk a few years so every weekday appears many times.
	start := day(2023, 1, 1)
	for i := 0; i < 3*366; i++ {
		d := AddDays(start, i)
		wd := d.Weekday()
		want := wd == time.Saturday || wd == time.Sunday
		if got := IsWeekend(d); got != want {
			t.Fatalf("IsWeekend(%s %s) = %v, want %v", FormatDate(d), wd, got, want)
		}
	}
}

func TestAdjustToWeekdays(t *testing.T) {
	tests := []struct {
		name      string
		in        DateRange
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "weekday endpoints unchanged",
			in:        DateRange{Start: day(2025, 1, 20), End: day(2025, 1, 24)},
			wantStart: day(2025, 1, 20),
			wantEnd:   day(2025, 1, 24),
		},
		{
			name:      "saturday start moves to monday",
			in:        DateRange{Start: day(2025, 1, 18), End: day(2025, 1, 24)},
			wantStart: day(2025, 1, 20),
			wantEnd:   day(2025, 1, 24),
		},
		{
			name:      "sunday start moves to monday",
			in:        DateRange{Start: day(2025, 1, 19), End: day(2025, 1, 24)},
			wantStart: day(2025, 1, 20),
			wantEnd:   day(2025, 1, 24),
		},
		{
			name:      "saturday end moves to friday",
			in:        DateRange{Start: day(2025, 1, 20), End: day(2025, 1, 25)},
			wantStart: day(2025, 1, 20),
			wantEnd:   day(2025, 1, 24),
		},
		{
			name:      "sunday end moves to friday",
			in:        DateRange{Start: day(2025, 1, 20), End: day(2025, 1, 26)},
			wantStart: day(2025, 1, 20),
			wantEnd:   day(2025, 1, 24),
		},
		{
			name:      "both endpoints on weekends",
			in:        DateRange{Start: day(2025, 1, 18), End: day(2025, 1, 25)},
			wantStart: day(2025, 1, 20),
			wantEnd:   day(2025, 1, 24),
		},
		{
			name:      "walk crosses month boundary",
			in:        DateRange{Start: day(2025, 5, 31), End: day(2025, 6, 1)},
			wantStart: day(2025, 6, 2),
			wantEnd:   day(2025, 5, 30),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AdjustToWeekdays(tt.in)
			if !got.Start.Equal(tt.wantStart) {
				t.Errorf("start = %s, want %s", FormatDate(got.Start), FormatDate(tt.wantStart))
			}
			if !got.End.Equal(tt.wantEnd) {
				t.Errorf("end = %s, want %s", FormatDate(got.End), FormatDate(tt.wantEnd))
			}
		})
	}
}

func TestAdjustToWeekdays_WeekendOnlyRangeInverts(t *testing.T) {
	in := DateRange{Start: day(2025, 1, 25), End: day(2025, 1, 26)}
	got := AdjustToWeekdays(in)

	if got.Valid() {
		t.Fatalf("expected inverted range, got %s", got)
	}
	if !in.Start.Equal(day(2025, 1, 25)) || !in.End.Equal(day(2025, 1, 26)) {
		t.Fatalf("input range was modified: %s", in)
	}
}

func TestAdjustToWeekdays_NearestWeekday(t *testing.T) {
	for i := 0; i < 60; i++ {
		d := AddDays(day(2025, 1, 1), i)
		got := AdjustToWeekdays(DateRange{Start: d, End: d})

		wantStart := d
		for IsWeekend(wantStart) {
			wantStart = AddDays(wantStart, 1)
		}
		wantEnd := d
		for IsWeekend(wantEnd) {
			wantEnd = AddDays(wantEnd, -1)
		}

		if !got.Start.Equal(wantStart) || IsWeekend(got.Start) {
			t.Errorf("%s: start = %s, want %s", FormatDate(d), FormatDate(got.Start), FormatDate(wantStart))
		}
		if !got.End.Equal(wantEnd) || IsWeekend(got.End) {
			t.Errorf("%s: end = %s, want %s", FormatDate(d), FormatDate(got.End), FormatDate(wantEnd))
		}
		if wantStart.Sub(d) > 2*24*time.Hour+time.Hour {
			t.Errorf("%s: start moved more than two days", FormatDate(d))
		}
	}
}

func TestFindWeekendDates(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  []string
	}{
		{
			name:  "monday to monday",
			start: day(2025, 1, 20),
			end:   day(2025, 1, 27),
			want:  []string{"2025-01-25", "2025-01-26"},
		},
		{
			name:  "weekdays only",
			start: day(2025, 1, 20),
			end:   day(2025, 1, 24),
			want:  nil,
		},
		{
			name:  "single weekend day",
			start: day(2025, 1, 25),
			end:   day(2025, 1, 25),
			want:  []string{"2025-01-25"},
		},
		{
			name:  "across months",
			start: day(2025, 1, 30),
			end:   day(2025, 2, 10),
			want:  []string{"2025-02-01", "2025-02-02", "2025-02-08", "2025-02-09"},
		},
		{
			name:  "end before start yields nothing",
			start: day(2025, 1, 27),
			end:   day(2025, 1, 20),
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatDates(FindWeekendDates(tt.start, tt.end))
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("index %d: got %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFindWeekendDates_MatchesBruteForce(t *testing.T) {
	start := day(2024, 11, 3)
	for span := 0; span < 90; span += 7 {
		end := AddDays(start, span)
		got := FindWeekendDates(start, end)

		count := 0
		for i := 0; i <= span; i++ {
			if IsWeekend(AddDays(start, i)) {
				count++
			}
		}
		if len(got) != count {
			t.Fatalf("span %d: got %d weekend days, want %d", span, len(got), count)
		}

		for i, d := range got {
			if !IsWeekend(d) {
				t.Errorf("span %d: %s is not a weekend", span, FormatDate(d))
			}
			if d.Before(start) || d.After(end) {
				t.Errorf("span %d: %s outside range", span, FormatDate(d))
			}
			if i > 0 && !got[i-1].Before(d) {
				t.Errorf("span %d: dates not strictly ascending at %d", span, i)
			}
		}
	}
}
