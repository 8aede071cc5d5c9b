package store

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// writeTaskFile seeds a user's task file with raw JSON.
func writeTaskFile(t *testing.T, dir, username, content string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(FilePath(dir, username), []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	s, err := Load(t.TempDir(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.DayTaskCount(2024, 3, 5); got != 0 {
		t.Errorf("expected empty store, got count %d", got)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	writeTaskFile(t, dir, "alice", "{not json")

	s, err := Load(dir, "alice")
	if err == nil {
		t.Error("expected a corrupt-store error")
	}
	if s == nil {
		t.Fatal("corrupt file must still yield a usable store")
	}
	if got := s.DayTaskCount(2024, 3, 5); got != 0 {
		t.Errorf("corrupt file must load as empty store, got count %d", got)
	}
}

func TestDayTaskCountAggregation(t *testing.T) {
	dir := t.TempDir()
	writeTaskFile(t, dir, "alice", `{
		"2024-3-5": ["Read ch.1"],
		"2024-3-5-9": ["Study group"],
		"2024-3-5-14": ["Gym", "Laundry"]
	}`)

	s, err := Load(dir, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Day list length plus every hour list length, hour tasks additive.
	if got := s.DayTaskCount(2024, 3, 5); got != 4 {
		t.Errorf("DayTaskCount = %d, want 4", got)
	}
	// Zero for a day with no entries at all.
	if got := s.DayTaskCount(2024, 3, 6); got != 0 {
		t.Errorf("DayTaskCount for empty day = %d, want 0", got)
	}
}

func TestApplyDayEditScenario(t *testing.T) {
	dir := t.TempDir()
	writeTaskFile(t, dir, "alice", `{
		"2024-3-5": ["Read ch.1"],
		"2024-3-5-9": ["Study group"]
	}`)

	s, err := Load(dir, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.DayTaskCount(2024, 3, 5); got != 2 {
		t.Fatalf("initial DayTaskCount = %d, want 2", got)
	}

	s.ApplyDayEdit(2024, 3, 5,
		[]string{"Read ch.1", "Quiz"},
		[]HourTask{{Hour: 9, Content: "Study group"}, {Hour: 14, Content: "Gym"}},
	)

	if got := s.Tasks(DayKey(2024, 3, 5)); !reflect.DeepEqual(got, []string{"Read ch.1", "Quiz"}) {
		t.Errorf("day list = %v", got)
	}
	if got := s.Tasks(HourKey(2024, 3, 5, 9)); !reflect.DeepEqual(got, []string{"Study group"}) {
		t.Errorf("hour 9 = %v", got)
	}
	if got := s.Tasks(HourKey(2024, 3, 5, 14)); !reflect.DeepEqual(got, []string{"Gym"}) {
		t.Errorf("hour 14 = %v", got)
	}
	// Every other hour key of the day is absent.
	for h := 0; h < 24; h++ {
		if h == 9 || h == 14 {
			continue
		}
		if got := s.Tasks(HourKey(2024, 3, 5, h)); got != nil {
			t.Errorf("hour %d expected empty, got %v", h, got)
		}
	}
}

func TestApplyDayEditDayViewRoundTrip(t *testing.T) {
	s, _ := Load(t.TempDir(), "alice")

	dayTasks := []string{"Essay outline", "Revise notes"}
	hourTasks := []HourTask{
		{Hour: 8, Content: "Run"},
		{Hour: 8, Content: "Breakfast"},
		{Hour: 19, Content: "Reading"},
	}

	s.ApplyDayEdit(2024, 7, 1, dayTasks, hourTasks)
	gotDay, gotHours := s.DayView(2024, 7, 1)

	if !reflect.DeepEqual(gotDay, dayTasks) {
		t.Errorf("DayView day list = %v, want %v", gotDay, dayTasks)
	}
	if !reflect.DeepEqual(gotHours, hourTasks) {
		t.Errorf("DayView hour tasks = %v, want %v", gotHours, hourTasks)
	}

	// Feeding the view back into ApplyDayEdit changes nothing.
	s.ApplyDayEdit(2024, 7, 1, gotDay, gotHours)
	againDay, againHours := s.DayView(2024, 7, 1)
	if !reflect.DeepEqual(againDay, gotDay) || !reflect.DeepEqual(againHours, gotHours) {
		t.Error("ApplyDayEdit of its own DayView output is not idempotent")
	}
}

func TestApplyHourEditWholesaleReplace(t *testing.T) {
	s, _ := Load(t.TempDir(), "alice")

	s.ApplyHourEdit(2024, 3, 5, 9, []string{"Old task", "Older task"})
	s.ApplyHourEdit(2024, 3, 5, 9, []string{"New task"})

	if got := s.Tasks(HourKey(2024, 3, 5, 9)); !reflect.DeepEqual(got, []string{"New task"}) {
		t.Errorf("hour list = %v, want wholesale replacement", got)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	s, _ := Load(dir, "alice")
	s.ApplyDayEdit(2024, 3, 5, []string{"Read ch.1"}, []HourTask{{Hour: 9, Content: "Study group"}})
	if err := s.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded, err := Load(dir, "alice")
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	gotDay, gotHours := reloaded.DayView(2024, 3, 5)
	if !reflect.DeepEqual(gotDay, []string{"Read ch.1"}) {
		t.Errorf("reloaded day list = %v", gotDay)
	}
	if !reflect.DeepEqual(gotHours, []HourTask{{Hour: 9, Content: "Study group"}}) {
		t.Errorf("reloaded hour tasks = %v", gotHours)
	}
}

func TestGuestNeverWrites(t *testing.T) {
	dir := t.TempDir()

	s, err := Load(dir, "Guest")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.Guest() {
		t.Fatal("expected guest store")
	}

	s.ApplyDayEdit(2024, 3, 5, []string{"Read ch.1"}, []HourTask{{Hour: 9, Content: "Study group"}})
	s.ApplyHourEdit(2024, 3, 5, 10, []string{"Gym"})
	if err := s.Save(); err != nil {
		t.Fatalf("guest save must be a no-op, got %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("guest save created files: %v", entries)
	}

	// Edits are still visible in memory for the session.
	if got := s.DayTaskCount(2024, 3, 5); got != 3 {
		t.Errorf("guest in-memory count = %d, want 3", got)
	}
}

func TestGuestIdentityCaseInsensitive(t *testing.T) {
	for _, name := range []string{"guest", "Guest", "GUEST", "gUeSt"} {
		if !IsGuest(name) {
			t.Errorf("IsGuest(%q) = false, want true", name)
		}
	}
	if IsGuest("guest2") {
		t.Error("IsGuest(\"guest2\") = true, want false")
	}
}

func TestFilePathHidesUsername(t *testing.T) {
	dir := t.TempDir()

	alice := FilePath(dir, "alice")
	bob := FilePath(dir, "bob")

	if alice == bob {
		t.Error("different usernames must map to different file paths")
	}
	if strings.Contains(filepath.Base(alice), "alice") {
		t.Errorf("file name %q reveals the username", filepath.Base(alice))
	}
	// Case-sensitive keys outside the guest identity.
	if FilePath(dir, "Alice") == alice {
		t.Error("usernames are case-sensitive keys; paths must differ")
	}
}

func TestMonthDayTasks(t *testing.T) {
	s, _ := Load(t.TempDir(), "alice")
	s.ApplyDayEdit(2024, 3, 20, []string{"Late entry"}, nil)
	s.ApplyDayEdit(2024, 3, 5, []string{"Early entry"}, nil)
	s.ApplyDayEdit(2024, 4, 1, []string{"Other month"}, nil)
	// Hour-only day must not appear in the whole-day listing.
	s.ApplyHourEdit(2024, 3, 9, 9, []string{"Hourly only"})

	got := s.MonthDayTasks(2024, 3)
	want := []DayTasks{
		{Day: 5, Tasks: []string{"Early entry"}},
		{Day: 20, Tasks: []string{"Late entry"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MonthDayTasks = %v, want %v", got, want)
	}
}
