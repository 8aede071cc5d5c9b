// Package nav tracks which date and view mode the calendar is showing and
// implements the next/previous transition rules for each mode.
package nav

import "time"

// Mode is the active calendar view.
type Mode int

const (
	ModeDay Mode = iota
	ModeWeek
	ModeMonth
)

// String returns the display name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeDay:
		return "Day"
	case ModeWeek:
		return "Week"
	case ModeMonth:
		return "Month"
	}
	return "Unknown"
}

// State is the calendar navigation state: the anchor date, the Monday of the
// anchor's week, and the active view mode.
type State struct {
	Year  int
	Month int // 1-12
	Day   int

	// WeekStart is the Monday on or before the anchor date. It is
	// recomputed whenever Day or Week navigation moves the anchor; Month
	// navigation leaves it alone.
	WeekStart time.Time

	Mode Mode
}

// New returns the initial navigation state: now's date with Month as the
// active view.
func New(now time.Time) *State {
	s := &State{Mode: ModeMonth}
	s.setAnchor(now)
	return s
}

// Anchor returns the anchor date at midnight local time.
func (s *State) Anchor() time.Time {
	return time.Date(s.Year, time.Month(s.Month), s.Day, 0, 0, 0, 0, time.Local)
}

// Next advances one step in the active mode (a month, a week, or a day) and
// reports whether the year in view changed, in which case the caller should
// refresh its holiday cache.
func (s *State) Next() bool {
	return s.step(1)
}

// Prev goes back one step in the active mode and reports whether the year in
// view changed.
func (s *State) Prev() bool {
	return s.step(-1)
}

// SetMode switches the active view. The anchor date never moves on a view
// switch; only the queries issued for rendering change.
func (s *State) SetMode(m Mode) {
	s.Mode = m
}

func (s *State) step(dir int) bool {
	year := s.Year

	switch s.Mode {
	case ModeMonth:
		s.Month += dir
		if s.Month > 12 {
			s.Month = 1
			s.Year++
		} else if s.Month < 1 {
			s.Month = 12
			s.Year--
		}
	case ModeWeek:
		s.WeekStart = s.WeekStart.AddDate(0, 0, 7*dir)
		s.Year = s.WeekStart.Year()
		s.Month = int(s.WeekStart.Month())
		s.Day = s.WeekStart.Day()
	case ModeDay:
		s.setAnchor(s.Anchor().AddDate(0, 0, dir))
	}

	return s.Year != year
}

// setAnchor sets the anchor date and recomputes WeekStart as its Monday.
func (s *State) setAnchor(t time.Time) {
	s.Year = t.Year()
	s.Month = int(t.Month())
	s.Day = t.Day()
	s.WeekStart = MondayOf(t)
}

// MondayOf returns the Monday on or before t, at midnight local time.
func MondayOf(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}
