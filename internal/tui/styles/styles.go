// Package styles provides Lip Gloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Highlight is the accent color for selected items
	Highlight = lipgloss.AdaptiveColor{Light: "#6366F1", Dark: "#818CF8"}

	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FFCC66"}
)

// Calendar cell colors, matching the planner's day-state palette:
// green for today, yellow for national holidays, blue for days with tasks.
var (
	TodayColor   = lipgloss.Color("#00C896")
	HolidayColor = lipgloss.Color("#F9C74F")
	TaskColor    = lipgloss.Color("#8BC6EC")
)

// Base styles
var (
	// App is the base style for the entire application
	App = lipgloss.NewStyle().
		Padding(1, 2)

	// Title is the style for section titles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// Subtitle is for secondary headings
	Subtitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Subtle)

	// Error is for transient inline error messages
	Error = lipgloss.NewStyle().
		Foreground(ErrorColor)

	// Warning is for the guest-mode and offline banners
	Warning = lipgloss.NewStyle().
		Bold(true).
		Foreground(WarningColor)

	// Help is for keybinding hints
	Help = lipgloss.NewStyle().
		Foreground(Subtle)
)

// Calendar styles
var (
	CalendarWeekday = lipgloss.NewStyle().
			Bold(true).
			Foreground(Subtle)

	CalendarDay = lipgloss.NewStyle()

	CalendarDayToday = lipgloss.NewStyle().
				Bold(true).
				Foreground(TodayColor)

	CalendarDayHoliday = lipgloss.NewStyle().
				Foreground(HolidayColor)

	CalendarDayWithTasks = lipgloss.NewStyle().
				Foreground(TaskColor)

	CalendarDaySelected = lipgloss.NewStyle().
				Bold(true).
				Reverse(true)
)

// Sidebar styles
var (
	Sidebar = lipgloss.NewStyle().
		Width(26).
		PaddingRight(2).
		BorderRight(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderRightForeground(Subtle)

	SidebarDate = lipgloss.NewStyle().
			Bold(true)

	SidebarTask = lipgloss.NewStyle().
			Foreground(Subtle)
)

// Chat styles
var (
	ChatUser = lipgloss.NewStyle().
			Bold(true)

	ChatAssistant = lipgloss.NewStyle().
			Foreground(Highlight)
)
