// Package tui provides the terminal user interface for the study planner.
package tui

import (
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hbadr/studyplan-tui/internal/assistant"
	"github.com/hbadr/studyplan-tui/internal/config"
	"github.com/hbadr/studyplan-tui/internal/creds"
	"github.com/hbadr/studyplan-tui/internal/holiday"
	"github.com/hbadr/studyplan-tui/internal/nav"
	"github.com/hbadr/studyplan-tui/internal/store"
)

// screen identifies the active screen of the application.
type screen int

const (
	screenAuth screen = iota
	screenCalendar
	screenDialog
	screenChat
)

// App is the main Bubble Tea model for the application.
type App struct {
	cfg *config.Config

	credStore   *creds.Store
	userDataDir string

	// Session state, set after login.
	taskStore *store.Store
	nav       *nav.State
	today     time.Time

	holidayClient *holiday.Client
	holidays      map[holiday.Date]string
	holidaySeq    int // discards out-of-order holiday responses

	assistantClient *assistant.Client

	screen screen
	auth   authModel
	dialog dialogModel
	chat   chatModel

	// Month-view day selection and day-view hour row. Presentation state
	// only; the navigation anchor is owned by nav.State.
	selDay     int
	selWeekday int
	hourRow    int

	statusMsg string
	width     int
	height    int
}

// NewApp creates the application model.
func NewApp(cfg *config.Config, credStore *creds.Store, holidayClient *holiday.Client, assistantClient *assistant.Client, userDataDir string) *App {
	return &App{
		cfg:             cfg,
		credStore:       credStore,
		userDataDir:     userDataDir,
		holidayClient:   holidayClient,
		assistantClient: assistantClient,
		holidays:        map[holiday.Date]string{},
		screen:          screenAuth,
		auth:            newAuthModel(),
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle("Study Planner"), a.auth.username.Focus())
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

	case holidaysMsg:
		if msg.seq != a.holidaySeq {
			// A newer refresh is in flight or already landed.
			return a, nil
		}
		if msg.err != nil {
			log.Printf("holiday fetch for %d failed: %v", msg.year, msg.err)
		}
		a.holidays = msg.holidays
		return a, nil

	case assistantReplyMsg:
		a.chat.receive(msg)
		return a, nil

	case clearStatusMsg:
		a.statusMsg = ""
		a.auth.errMsg = ""
		return a, nil
	}

	switch a.screen {
	case screenAuth:
		return a.updateAuth(msg)
	case screenCalendar:
		return a.updateCalendar(msg)
	case screenDialog:
		return a.updateDialog(msg)
	case screenChat:
		return a.updateChat(msg)
	}
	return a, nil
}

// View implements tea.Model.
func (a *App) View() string {
	switch a.screen {
	case screenAuth:
		return a.viewAuth()
	case screenCalendar:
		return a.viewCalendar()
	case screenDialog:
		return a.viewDialog()
	case screenChat:
		return a.viewChat()
	}
	return ""
}

// startSession loads the user's task store and switches to the calendar.
func (a *App) startSession(username string) tea.Cmd {
	taskStore, err := store.Load(a.userDataDir, username)
	if err != nil {
		// Degrades to an empty store; the session continues.
		log.Printf("task store for this user loaded empty: %v", err)
	}
	a.taskStore = taskStore
	a.today = time.Now()
	a.nav = nav.New(a.today)
	a.nav.SetMode(defaultMode(a.cfg.UI.DefaultView))
	a.selDay = a.nav.Day
	a.selWeekday = weekdayIndex(a.today)
	a.hourRow = 0
	a.screen = screenCalendar

	cmds := []tea.Cmd{a.fetchHolidaysCmd()}
	if a.cfg.UI.Notifications {
		count := a.taskStore.DayTaskCount(a.today.Year(), int(a.today.Month()), a.today.Day())
		cmds = append(cmds, notifyTodayCmd(count))
	}
	return tea.Batch(cmds...)
}

// defaultMode maps the config's default_view value onto a navigation mode.
func defaultMode(view string) nav.Mode {
	switch view {
	case "day":
		return nav.ModeDay
	case "week":
		return nav.ModeWeek
	default:
		return nav.ModeMonth
	}
}

// weekdayIndex returns t's Monday-based weekday index (0 = Monday).
func weekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// setStatus sets a transient status message that clears after a few seconds.
func (a *App) setStatus(msg string) tea.Cmd {
	a.statusMsg = msg
	return clearStatusCmd()
}
