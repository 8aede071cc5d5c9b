package nav

import (
	"testing"
	"time"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.Local)
}

func TestNewInitialState(t *testing.T) {
	now := date(2024, 3, 5) // a Tuesday
	s := New(now)

	if s.Mode != ModeMonth {
		t.Errorf("initial mode = %v, want Month", s.Mode)
	}
	if s.Year != 2024 || s.Month != 3 || s.Day != 5 {
		t.Errorf("anchor = %d-%d-%d, want 2024-3-5", s.Year, s.Month, s.Day)
	}
	if want := date(2024, 3, 4); !s.WeekStart.Equal(want) {
		t.Errorf("WeekStart = %v, want the Monday before (%v)", s.WeekStart, want)
	}
}

func TestMonthNavigationYearRoll(t *testing.T) {
	s := New(date(2024, 1, 15))
	s.SetMode(ModeMonth)

	yearChanges := 0
	for i := 0; i < 12; i++ {
		if s.Next() {
			yearChanges++
		}
	}
	if s.Year != 2025 || s.Month != 1 {
		t.Errorf("after 12 next: %d-%d, want 2025-1", s.Year, s.Month)
	}
	if yearChanges != 1 {
		t.Errorf("year changed %d times, want 1", yearChanges)
	}

	s = New(date(2024, 1, 15))
	s.SetMode(ModeMonth)
	for i := 0; i < 12; i++ {
		s.Prev()
	}
	if s.Year != 2023 || s.Month != 1 {
		t.Errorf("after 12 prev: %d-%d, want 2023-1", s.Year, s.Month)
	}
}

func TestMonthNavigationBoundaries(t *testing.T) {
	s := New(date(2024, 12, 10))
	s.SetMode(ModeMonth)
	if !s.Next() {
		t.Error("December -> January must report a year change")
	}
	if s.Year != 2025 || s.Month != 1 {
		t.Errorf("got %d-%d, want 2025-1", s.Year, s.Month)
	}

	s = New(date(2024, 1, 10))
	s.SetMode(ModeMonth)
	if !s.Prev() {
		t.Error("January -> December must report a year change")
	}
	if s.Year != 2023 || s.Month != 12 {
		t.Errorf("got %d-%d, want 2023-12", s.Year, s.Month)
	}
}

func TestWeekNextPrevIdentity(t *testing.T) {
	anchors := []time.Time{
		date(2024, 3, 5),
		date(2024, 1, 1),
		date(2024, 12, 31),
		date(2023, 6, 18), // a Sunday
	}

	for _, anchor := range anchors {
		s := New(anchor)
		s.SetMode(ModeWeek)
		before := s.WeekStart

		s.Next()
		s.Prev()

		if !s.WeekStart.Equal(before) {
			t.Errorf("anchor %v: next then prev moved WeekStart %v -> %v", anchor, before, s.WeekStart)
		}
	}
}

func TestWeekNavigationDerivesAnchor(t *testing.T) {
	s := New(date(2024, 3, 5)) // week starts Monday 2024-03-04
	s.SetMode(ModeWeek)

	s.Next()
	if want := date(2024, 3, 11); !s.WeekStart.Equal(want) {
		t.Errorf("WeekStart = %v, want %v", s.WeekStart, want)
	}
	if s.Year != 2024 || s.Month != 3 || s.Day != 11 {
		t.Errorf("anchor = %d-%d-%d, want 2024-3-11", s.Year, s.Month, s.Day)
	}
}

func TestWeekNavigationYearChange(t *testing.T) {
	s := New(date(2024, 12, 30)) // Monday of the last week of 2024
	s.SetMode(ModeWeek)

	if !s.Next() {
		t.Error("crossing into the new year must report a year change")
	}
	if s.Year != 2025 {
		t.Errorf("year = %d, want 2025", s.Year)
	}
}

func TestDayNavigationRecomputesWeekStart(t *testing.T) {
	s := New(date(2024, 3, 10)) // Sunday; its Monday is 2024-03-04
	s.SetMode(ModeDay)

	s.Next() // Monday 2024-03-11 starts a new week
	if want := date(2024, 3, 11); !s.WeekStart.Equal(want) {
		t.Errorf("WeekStart = %v, want %v", s.WeekStart, want)
	}

	s.Prev()
	if want := date(2024, 3, 4); !s.WeekStart.Equal(want) {
		t.Errorf("WeekStart = %v, want %v", s.WeekStart, want)
	}
}

func TestDayNavigationYearBoundary(t *testing.T) {
	s := New(date(2024, 12, 31))
	s.SetMode(ModeDay)

	if !s.Next() {
		t.Error("Dec 31 -> Jan 1 must report a year change")
	}
	if s.Year != 2025 || s.Month != 1 || s.Day != 1 {
		t.Errorf("anchor = %d-%d-%d, want 2025-1-1", s.Year, s.Month, s.Day)
	}

	if !s.Prev() {
		t.Error("Jan 1 -> Dec 31 must report a year change")
	}
}

func TestSetModeKeepsAnchor(t *testing.T) {
	s := New(date(2024, 3, 5))

	for _, mode := range []Mode{ModeDay, ModeWeek, ModeMonth, ModeDay} {
		s.SetMode(mode)
		if s.Year != 2024 || s.Month != 3 || s.Day != 5 {
			t.Errorf("mode switch to %v moved the anchor to %d-%d-%d", mode, s.Year, s.Month, s.Day)
		}
	}
}

func TestMondayOf(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  time.Time
	}{
		{"monday maps to itself", date(2024, 3, 4), date(2024, 3, 4)},
		{"tuesday", date(2024, 3, 5), date(2024, 3, 4)},
		{"sunday", date(2024, 3, 10), date(2024, 3, 4)},
		{"across month boundary", date(2024, 3, 2), date(2024, 2, 26)},
		{"across year boundary", date(2025, 1, 1), date(2024, 12, 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MondayOf(tt.input); !got.Equal(tt.want) {
				t.Errorf("MondayOf(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestModeString(t *testing.T) {
	if ModeDay.String() != "Day" || ModeWeek.String() != "Week" || ModeMonth.String() != "Month" {
		t.Error("unexpected mode names")
	}
}
