package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hbadr/studyplan-tui/internal/store"
	"github.com/hbadr/studyplan-tui/internal/tui/styles"
)

// dialogKind distinguishes the whole-day dialog, which also lists the day's
// hour tasks, from the single-hour dialog.
type dialogKind int

const (
	dialogDay dialogKind = iota
	dialogHour
)

// dialogModel is the task edit dialog. It works on copies of the task lists;
// nothing touches the store until the dialog closes.
type dialogModel struct {
	kind  dialogKind
	year  int
	month int
	day   int
	hour  int // only for dialogHour

	tasks       []string         // whole-day list (or the hour list for dialogHour)
	hourTasks   []store.HourTask // flattened hour tasks, day dialog only
	holidayName string

	cursor int
	input  textinput.Model
}

func newTaskInput() textinput.Model {
	input := textinput.New()
	input.Placeholder = "Add new task..."
	input.CharLimit = 200
	input.Width = 44
	return input
}

func (a *App) openDayDialog(year, month, day int) (tea.Model, tea.Cmd) {
	dayTasks, hourTasks := a.taskStore.DayView(year, month, day)
	a.dialog = dialogModel{
		kind:        dialogDay,
		year:        year,
		month:       month,
		day:         day,
		tasks:       dayTasks,
		hourTasks:   hourTasks,
		holidayName: a.holidayName(year, month, day),
		input:       newTaskInput(),
	}
	a.screen = screenDialog
	return a, a.dialog.input.Focus()
}

func (a *App) openHourDialog(year, month, day, hour int) (tea.Model, tea.Cmd) {
	a.dialog = dialogModel{
		kind:  dialogHour,
		year:  year,
		month: month,
		day:   day,
		hour:  hour,
		tasks: a.taskStore.Tasks(store.HourKey(year, month, day, hour)),
		input: newTaskInput(),
	}
	a.screen = screenDialog
	return a, a.dialog.input.Focus()
}

func (a *App) updateDialog(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		a.dialog.input, cmd = a.dialog.input.Update(msg)
		return a, cmd
	}

	d := &a.dialog

	switch keyMsg.String() {
	case "esc":
		// Closing applies the edits, like closing the original dialog.
		return a.closeDialog()

	case "enter":
		task := strings.TrimSpace(d.input.Value())
		if task != "" {
			d.tasks = append(d.tasks, task)
			d.input.SetValue("")
		}
		return a, nil

	case "up":
		if d.cursor > 0 {
			d.cursor--
		}
		return a, nil

	case "down":
		if d.cursor < d.itemCount()-1 {
			d.cursor++
		}
		return a, nil

	case "ctrl+x":
		d.removeSelected()
		return a, nil

	case "ctrl+y":
		if text, ok := d.selectedText(); ok {
			if err := clipboard.WriteAll(text); err == nil {
				return a, a.setStatus("Copied to clipboard")
			}
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.dialog.input, cmd = a.dialog.input.Update(msg)
	return a, cmd
}

// itemCount is the number of removable rows in the dialog.
func (d *dialogModel) itemCount() int {
	return len(d.tasks) + len(d.hourTasks)
}

// selectedText returns the task text under the cursor.
func (d *dialogModel) selectedText() (string, bool) {
	if d.cursor < len(d.tasks) {
		return d.tasks[d.cursor], true
	}
	i := d.cursor - len(d.tasks)
	if i < len(d.hourTasks) {
		return d.hourTasks[i].Content, true
	}
	return "", false
}

// removeSelected deletes the row under the cursor from the appropriate list.
func (d *dialogModel) removeSelected() {
	if d.cursor < len(d.tasks) {
		d.tasks = append(d.tasks[:d.cursor], d.tasks[d.cursor+1:]...)
	} else {
		i := d.cursor - len(d.tasks)
		if i >= len(d.hourTasks) {
			return
		}
		d.hourTasks = append(d.hourTasks[:i], d.hourTasks[i+1:]...)
	}
	if d.cursor >= d.itemCount() && d.cursor > 0 {
		d.cursor--
	}
}

func (a *App) viewDialog() string {
	d := &a.dialog
	var b strings.Builder

	switch d.kind {
	case dialogDay:
		b.WriteString(styles.Title.Render(fmt.Sprintf("Tasks for %d %s %d", d.day, monthName(d.month), d.year)))
	case dialogHour:
		b.WriteString(styles.Title.Render(fmt.Sprintf("Tasks at %02d:00 on %d %s", d.hour, d.day, monthName(d.month))))
	}
	b.WriteString("\n\n")

	if d.holidayName != "" {
		b.WriteString(styles.Warning.Render("Public Holiday: " + d.holidayName))
		b.WriteString("\n\n")
	}

	if d.kind == dialogDay {
		b.WriteString(styles.Subtitle.Render("All-Day Tasks:"))
		b.WriteString("\n")
	}
	if len(d.tasks) == 0 {
		b.WriteString(styles.Help.Render("  (none)"))
		b.WriteString("\n")
	}
	for i, task := range d.tasks {
		line := fmt.Sprintf("  %d. %s", i+1, task)
		if i == d.cursor {
			line = styles.CalendarDaySelected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if d.kind == dialogDay && len(d.hourTasks) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.Subtitle.Render("Hourly Tasks:"))
		b.WriteString("\n")
		for i, ht := range d.hourTasks {
			line := fmt.Sprintf("  %02d:00 - %s", ht.Hour, ht.Content)
			if len(d.tasks)+i == d.cursor {
				line = styles.CalendarDaySelected.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(d.input.View())
	b.WriteString("\n\n")

	if a.statusMsg != "" {
		b.WriteString(styles.Title.Render(a.statusMsg))
		b.WriteString("\n")
	}

	b.WriteString(styles.Help.Render("enter add | up/down select | ctrl+x remove | ctrl+y copy | esc save & close"))

	return styles.App.Render(b.String())
}
