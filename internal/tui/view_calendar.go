package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/hbadr/studyplan-tui/internal/nav"
	"github.com/hbadr/studyplan-tui/internal/store"
	"github.com/hbadr/studyplan-tui/internal/tui/styles"
)

func (a *App) viewCalendar() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Study Planner Calendar"))
	b.WriteString("\n")

	if a.taskStore.Guest() {
		b.WriteString(styles.Warning.Render("Guest Mode: tasks will NOT be saved"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch a.nav.Mode {
	case nav.ModeMonth:
		b.WriteString(a.renderMonth())
	case nav.ModeWeek:
		b.WriteString(a.renderWeek())
	case nav.ModeDay:
		b.WriteString(a.renderDay())
	}

	b.WriteString("\n")
	if a.statusMsg != "" {
		b.WriteString(styles.Error.Render(a.statusMsg))
		b.WriteString("\n")
	}
	b.WriteString(styles.Help.Render("p/n prev/next | d/w/m view | h j k l select | enter open | t today | c assistant | q quit"))

	main := b.String()
	return styles.App.Render(lipgloss.JoinHorizontal(lipgloss.Top, a.renderSidebar(), main))
}

// renderMonth renders the month grid with holiday, task, and today markers.
func (a *App) renderMonth() string {
	var b strings.Builder

	year, month := a.nav.Year, a.nav.Month
	b.WriteString(styles.Subtitle.Render(fmt.Sprintf("%s %d", monthName(month), year)))
	b.WriteString("\n\n")

	for _, wd := range []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"} {
		b.WriteString(styles.CalendarWeekday.Render(fmt.Sprintf(" %s ", wd)))
	}
	b.WriteString("\n")

	firstOfMonth := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	startWeekday := weekdayIndex(firstOfMonth)
	days := daysIn(year, month)

	day := 1
	for week := 0; day <= days; week++ {
		for weekday := 0; weekday < 7; weekday++ {
			if (week == 0 && weekday < startWeekday) || day > days {
				b.WriteString("      ")
				continue
			}
			b.WriteString(a.renderMonthCell(year, month, day))
			b.WriteString(" ")
			day++
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.renderDaySummary(year, month, a.selDay))
	return b.String()
}

// renderMonthCell formats one day cell. Days with tasks carry a "*" marker;
// holidays, today, and the selection are shown by color.
func (a *App) renderMonthCell(year, month, day int) string {
	count := a.taskStore.DayTaskCount(year, month, day)

	cell := fmt.Sprintf(" %2d  ", day)
	if count > 0 {
		cell = fmt.Sprintf(" %2d* ", day)
	}

	style := styles.CalendarDay
	switch {
	case day == a.selDay:
		style = styles.CalendarDaySelected
	case a.isToday(year, month, day):
		style = styles.CalendarDayToday
	case a.holidayName(year, month, day) != "":
		style = styles.CalendarDayHoliday
	case count > 0:
		style = styles.CalendarDayWithTasks
	}
	return style.Render(cell)
}

// renderWeek renders the seven days of the current week as columns.
func (a *App) renderWeek() string {
	var b strings.Builder

	weekStart := a.nav.WeekStart
	b.WriteString(styles.Subtitle.Render("Week of " + weekStart.Format("02 Jan 2006")))
	b.WriteString("\n\n")

	cols := make([]string, 7)
	for i := 0; i < 7; i++ {
		d := weekStart.AddDate(0, 0, i)
		year, month, day := d.Year(), int(d.Month()), d.Day()
		count := a.taskStore.DayTaskCount(year, month, day)

		label := d.Format("Mon 02 Jan")
		body := "No tasks"
		if count > 0 {
			body = fmt.Sprintf("%d tasks", count)
		}
		if name := a.holidayName(year, month, day); name != "" {
			body += "\n" + truncateString(name, 10)
		}

		style := styles.CalendarDay
		switch {
		case i == a.selWeekday:
			style = styles.CalendarDaySelected
		case a.isToday(year, month, day):
			style = styles.CalendarDayToday
		case a.holidayName(year, month, day) != "":
			style = styles.CalendarDayHoliday
		case count > 0:
			style = styles.CalendarDayWithTasks
		}

		cols[i] = lipgloss.NewStyle().Width(12).Render(
			styles.CalendarWeekday.Render(label) + "\n" + style.Render(body))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	b.WriteString("\n")
	return b.String()
}

// renderDay renders the day-notes row and the 24 hour rows of the anchor
// date.
func (a *App) renderDay() string {
	var b strings.Builder

	anchor := a.nav.Anchor()
	year, month, day := a.nav.Year, a.nav.Month, a.nav.Day
	header := anchor.Format("Day View - Monday, 02 January 2006")
	b.WriteString(styles.Subtitle.Render(header))
	if a.isToday(year, month, day) {
		b.WriteString("  ")
		b.WriteString(styles.CalendarDayToday.Render("Today"))
	}
	b.WriteString("\n\n")

	dayTasks, _ := a.taskStore.DayView(year, month, day)
	notes := "No tasks"
	if len(dayTasks) > 0 {
		notes = fmt.Sprintf("%d task(s)", len(dayTasks))
	}
	line := fmt.Sprintf("Day Notes  %s", notes)
	if a.hourRow == 0 {
		line = styles.CalendarDaySelected.Render(line)
	}
	b.WriteString(line)
	b.WriteString("\n")

	// Window the hour rows around the selection so they fit on screen.
	visible := a.height - 14
	if visible < 6 {
		visible = 6
	}
	start := 0
	if a.hourRow-1 >= visible {
		start = a.hourRow - visible
	}
	for hour := start; hour < 24 && hour < start+visible; hour++ {
		hourTasks := a.taskStore.Tasks(store.HourKey(year, month, day, hour))

		summary := "Add task"
		if len(hourTasks) > 0 {
			summary = fmt.Sprintf("%d tasks: %s", len(hourTasks), truncateString(strings.Join(hourTasks, ", "), 40))
		}

		row := fmt.Sprintf("%02d:00      %s", hour, summary)
		switch {
		case a.hourRow == hour+1:
			row = styles.CalendarDaySelected.Render(row)
		case len(hourTasks) > 0:
			row = styles.CalendarDayWithTasks.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}
	return b.String()
}

// renderDaySummary shows the selected day's holiday and whole-day tasks
// below the month grid.
func (a *App) renderDaySummary(year, month, day int) string {
	var b strings.Builder

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	b.WriteString(styles.Subtitle.Render(date.Format("Monday, January 2")))
	b.WriteString("\n")

	if name := a.holidayName(year, month, day); name != "" {
		b.WriteString(styles.Warning.Render("Public Holiday: " + name))
		b.WriteString("\n")
	}

	count := a.taskStore.DayTaskCount(year, month, day)
	if count == 0 {
		b.WriteString(styles.Help.Render("No tasks for this day"))
	} else {
		b.WriteString(styles.Help.Render(fmt.Sprintf("%d task(s) - press enter to view", count)))
	}
	b.WriteString("\n")
	return b.String()
}

// renderSidebar lists the month's saved whole-day tasks, sorted by day.
func (a *App) renderSidebar() string {
	var b strings.Builder

	b.WriteString(styles.SidebarDate.Render("Saved Tasks"))
	b.WriteString("\n\n")

	listed := a.taskStore.MonthDayTasks(a.nav.Year, a.nav.Month)
	if len(listed) == 0 {
		b.WriteString(styles.SidebarTask.Render("(none this month)"))
		b.WriteString("\n")
	}
	for _, dt := range listed {
		b.WriteString(styles.SidebarDate.Render(fmt.Sprintf("%d-%d-%d:", a.nav.Year, a.nav.Month, dt.Day)))
		b.WriteString("\n")
		for _, task := range dt.Tasks {
			b.WriteString(styles.SidebarTask.Render("  - " + truncateString(task, 20)))
			b.WriteString("\n")
		}
	}
	return styles.Sidebar.Render(b.String())
}

// monthName returns the English month name.
func monthName(month int) string {
	return time.Month(month).String()
}
