// Package store implements the per-user task store backing the planner
// calendar. Task lists are keyed either by a whole calendar day or by one
// hour within a day, and each user's store is persisted as a single JSON
// document.
package store

import (
	"fmt"
	"strconv"
	"strings"
)

// Key identifies the task list for a whole day or for a single hour of a
// day. Use DayKey and HourKey to construct valid keys.
type Key struct {
	Year  int
	Month int
	Day   int

	// Hour is the hour of day in [0, 23], or -1 for a whole-day key.
	Hour int
}

// DayKey returns the key for the whole-day task list of a date.
func DayKey(year, month, day int) Key {
	return Key{Year: year, Month: month, Day: day, Hour: -1}
}

// HourKey returns the key for the task list of one hour of a date.
func HourKey(year, month, day, hour int) Key {
	return Key{Year: year, Month: month, Day: day, Hour: hour}
}

// IsHourly reports whether the key addresses a single hour rather than a
// whole day.
func (k Key) IsHourly() bool {
	return k.Hour >= 0
}

// String returns the serialized form used in task files: "Y-M-D" for day
// keys and "Y-M-D-H" for hour keys, with no zero padding.
func (k Key) String() string {
	if k.IsHourly() {
		return fmt.Sprintf("%d-%d-%d-%d", k.Year, k.Month, k.Day, k.Hour)
	}
	return fmt.Sprintf("%d-%d-%d", k.Year, k.Month, k.Day)
}

// ParseKey parses the serialized form produced by String.
func ParseKey(s string) (Key, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 && len(parts) != 4 {
		return Key{}, fmt.Errorf("invalid task key %q", s)
	}

	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Key{}, fmt.Errorf("invalid task key %q: %w", s, err)
		}
		nums[i] = n
	}

	if len(parts) == 3 {
		return DayKey(nums[0], nums[1], nums[2]), nil
	}

	if nums[3] < 0 || nums[3] > 23 {
		return Key{}, fmt.Errorf("invalid task key %q: hour out of range", s)
	}
	return HourKey(nums[0], nums[1], nums[2], nums[3]), nil
}
