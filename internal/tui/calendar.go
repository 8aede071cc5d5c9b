package tui

import (
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hbadr/studyplan-tui/internal/holiday"
	"github.com/hbadr/studyplan-tui/internal/nav"
)

func (a *App) updateCalendar(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	switch keyMsg.String() {
	case "q":
		return a, tea.Quit

	case "left", "p":
		yearChanged := a.nav.Prev()
		a.clampSelection()
		if yearChanged {
			return a, a.fetchHolidaysCmd()
		}
		return a, nil

	case "right", "n":
		yearChanged := a.nav.Next()
		a.clampSelection()
		if yearChanged {
			return a, a.fetchHolidaysCmd()
		}
		return a, nil

	case "d":
		a.nav.SetMode(nav.ModeDay)
		return a, nil
	case "w":
		a.nav.SetMode(nav.ModeWeek)
		return a, nil
	case "m":
		a.nav.SetMode(nav.ModeMonth)
		return a, nil

	case "t":
		// Jump back to today, keeping the active view mode.
		a.today = time.Now()
		prevYear := a.nav.Year
		mode := a.nav.Mode
		a.nav = nav.New(a.today)
		a.nav.SetMode(mode)
		a.selDay = a.nav.Day
		a.selWeekday = weekdayIndex(a.today)
		if a.nav.Year != prevYear {
			return a, a.fetchHolidaysCmd()
		}
		return a, nil

	case "h":
		a.moveSelection(-1)
		return a, nil
	case "l":
		a.moveSelection(1)
		return a, nil
	case "k", "up":
		a.moveSelectionRow(-1)
		return a, nil
	case "j", "down":
		a.moveSelectionRow(1)
		return a, nil

	case "enter":
		return a.openSelection()

	case "c":
		return a.openChat()
	}

	return a, nil
}

// moveSelection moves the in-view selection sideways by one day.
func (a *App) moveSelection(dir int) {
	switch a.nav.Mode {
	case nav.ModeMonth:
		a.selDay = clamp(a.selDay+dir, 1, daysIn(a.nav.Year, a.nav.Month))
	case nav.ModeWeek:
		a.selWeekday = clamp(a.selWeekday+dir, 0, 6)
	}
}

// moveSelectionRow moves the in-view selection vertically: a week at a time
// in month view, an hour row at a time in day view.
func (a *App) moveSelectionRow(dir int) {
	switch a.nav.Mode {
	case nav.ModeMonth:
		a.selDay = clamp(a.selDay+7*dir, 1, daysIn(a.nav.Year, a.nav.Month))
	case nav.ModeDay:
		// Row 0 is the day-notes row, rows 1-24 are the hours.
		a.hourRow = clamp(a.hourRow+dir, 0, 24)
	}
}

// clampSelection keeps the selection valid after a navigation step.
func (a *App) clampSelection() {
	a.selDay = clamp(a.selDay, 1, daysIn(a.nav.Year, a.nav.Month))
}

// openSelection opens the edit dialog for whatever is selected in the
// active view.
func (a *App) openSelection() (tea.Model, tea.Cmd) {
	switch a.nav.Mode {
	case nav.ModeMonth:
		return a.openDayDialog(a.nav.Year, a.nav.Month, a.selDay)
	case nav.ModeWeek:
		d := a.nav.WeekStart.AddDate(0, 0, a.selWeekday)
		return a.openDayDialog(d.Year(), int(d.Month()), d.Day())
	case nav.ModeDay:
		if a.hourRow == 0 {
			return a.openDayDialog(a.nav.Year, a.nav.Month, a.nav.Day)
		}
		return a.openHourDialog(a.nav.Year, a.nav.Month, a.nav.Day, a.hourRow-1)
	}
	return a, nil
}

// closeDialog applies the dialog's edits to the task store, persists the
// store, and returns to the calendar. Edits are a wholesale replace of the
// edited day or hour.
func (a *App) closeDialog() (tea.Model, tea.Cmd) {
	d := &a.dialog
	switch d.kind {
	case dialogDay:
		a.taskStore.ApplyDayEdit(d.year, d.month, d.day, d.tasks, d.hourTasks)
	case dialogHour:
		a.taskStore.ApplyHourEdit(d.year, d.month, d.day, d.hour, d.tasks)
	}
	a.screen = screenCalendar

	if err := a.taskStore.Save(); err != nil {
		log.Printf("failed to save tasks: %v", err)
		return a, a.setStatus("Failed to save tasks")
	}
	return a, nil
}

// holidayName returns the national holiday on a date, if any.
func (a *App) holidayName(year, month, day int) string {
	return a.holidays[holiday.Date{Year: year, Month: month, Day: day}]
}

// isToday reports whether a date is today's wall-clock date.
func (a *App) isToday(year, month, day int) bool {
	return year == a.today.Year() && month == int(a.today.Month()) && day == a.today.Day()
}

// daysIn returns the number of days in a month.
func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.Local).Day()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
