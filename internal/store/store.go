package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// GuestName is the reserved guest identity. Guest stores live only in
// process memory and are never written to disk.
const GuestName = "guest"

// IsGuest reports whether username names the reserved guest identity.
// The comparison is case-insensitive; all other usernames are case-sensitive
// keys.
func IsGuest(username string) bool {
	return strings.EqualFold(username, GuestName)
}

// HourTask is one task scheduled at a specific hour of a day.
type HourTask struct {
	Hour    int
	Content string
}

// DayTasks is the whole-day task list of one day of a month, used for the
// sidebar month listing.
type DayTasks struct {
	Day   int
	Tasks []string
}

// Store holds one user's task lists. All mutations happen on the UI
// goroutine; the store performs no locking.
type Store struct {
	username string
	guest    bool
	dir      string
	tasks    map[Key][]string
}

// FilePath returns the on-disk path of a user's task file. The file name is
// the hex SHA-256 of the username so it never reveals the username in
// plaintext. The guest file name is a literal but is never actually read or
// written.
func FilePath(dir, username string) string {
	if IsGuest(username) {
		return filepath.Join(dir, "guest.json")
	}
	sum := sha256.Sum256([]byte(username))
	return filepath.Join(dir, hex.EncodeToString(sum[:])+".json")
}

// Load reads a user's task store from dir. Load never fails: the guest
// identity always gets a fresh in-memory store, a missing file yields an
// empty store, and an unreadable or corrupt file yields an empty store
// alongside a non-nil error the caller may log.
func Load(dir, username string) (*Store, error) {
	s := &Store{
		username: username,
		guest:    IsGuest(username),
		dir:      dir,
		tasks:    make(map[Key][]string),
	}
	if s.guest {
		return s, nil
	}

	data, err := os.ReadFile(FilePath(dir, username))
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("failed to read task file: %w", err)
	}

	var raw map[string][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return s, fmt.Errorf("corrupt task file: %w", err)
	}

	for ks, tasks := range raw {
		key, err := ParseKey(ks)
		if err != nil {
			// Unrecognized keys are dropped rather than failing the load.
			continue
		}
		s.tasks[key] = tasks
	}
	return s, nil
}

// Username returns the identity owning this store.
func (s *Store) Username() string {
	return s.username
}

// Guest reports whether this is the non-persistent guest store.
func (s *Store) Guest() bool {
	return s.guest
}

// Save overwrites the user's task file with the full current store, creating
// the storage directory if needed. Saving the guest store is a no-op.
func (s *Store) Save() error {
	if s.guest {
		return nil
	}

	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("failed to create user data directory: %w", err)
	}

	raw := make(map[string][]string, len(s.tasks))
	for key, tasks := range s.tasks {
		raw[key.String()] = tasks
	}

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize tasks: %w", err)
	}

	if err := os.WriteFile(FilePath(s.dir, s.username), data, 0600); err != nil {
		return fmt.Errorf("failed to write task file: %w", err)
	}
	return nil
}

// Tasks returns the task list stored under key, in insertion order. The
// returned slice is a copy.
func (s *Store) Tasks(key Key) []string {
	tasks := s.tasks[key]
	if len(tasks) == 0 {
		return nil
	}
	out := make([]string, len(tasks))
	copy(out, tasks)
	return out
}

// ApplyDayEdit rewrites one day from dialog results: the whole-day list is
// replaced wholesale, every hour key of the day is cleared, and hourTasks
// are re-inserted by appending each task to its hour key in the given order.
// Hour tasks absent from hourTasks are dropped.
func (s *Store) ApplyDayEdit(year, month, day int, dayTasks []string, hourTasks []HourTask) {
	s.tasks[DayKey(year, month, day)] = append([]string(nil), dayTasks...)

	for h := 0; h < 24; h++ {
		delete(s.tasks, HourKey(year, month, day, h))
	}
	for _, ht := range hourTasks {
		key := HourKey(year, month, day, ht.Hour)
		s.tasks[key] = append(s.tasks[key], ht.Content)
	}
}

// ApplyHourEdit replaces the task list of a single hour wholesale.
func (s *Store) ApplyHourEdit(year, month, day, hour int, tasks []string) {
	s.tasks[HourKey(year, month, day, hour)] = append([]string(nil), tasks...)
}

// DayTaskCount returns the count shown on a month-view day cell: the length
// of the whole-day list plus the length of every hour list of that day. Hour
// tasks are additive, not a subset of day tasks.
func (s *Store) DayTaskCount(year, month, day int) int {
	count := len(s.tasks[DayKey(year, month, day)])
	for h := 0; h < 24; h++ {
		count += len(s.tasks[HourKey(year, month, day, h)])
	}
	return count
}

// DayView returns the whole-day task list of a date plus its hour tasks
// flattened in hour order, suitable for the day dialog and for round-tripping
// back into ApplyDayEdit.
func (s *Store) DayView(year, month, day int) ([]string, []HourTask) {
	dayTasks := s.Tasks(DayKey(year, month, day))

	var hourTasks []HourTask
	for h := 0; h < 24; h++ {
		for _, t := range s.tasks[HourKey(year, month, day, h)] {
			hourTasks = append(hourTasks, HourTask{Hour: h, Content: t})
		}
	}
	return dayTasks, hourTasks
}

// MonthDayTasks returns the non-empty whole-day task lists of a month,
// sorted by day, for the sidebar listing.
func (s *Store) MonthDayTasks(year, month int) []DayTasks {
	var out []DayTasks
	for key, tasks := range s.tasks {
		if key.IsHourly() || key.Year != year || key.Month != month || len(tasks) == 0 {
			continue
		}
		out = append(out, DayTasks{Day: key.Day, Tasks: s.Tasks(key)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}
