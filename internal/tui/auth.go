package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hbadr/studyplan-tui/internal/creds"
	"github.com/hbadr/studyplan-tui/internal/store"
	"github.com/hbadr/studyplan-tui/internal/tui/styles"
)

// authField identifies the focused input on the auth screen.
type authField int

const (
	authFieldUsername authField = iota
	authFieldPassword
)

// authModel is the sign-up / login screen state.
type authModel struct {
	login    bool // false = sign up, true = login
	username textinput.Model
	password textinput.Model
	focused  authField
	showPass bool
	errMsg   string
}

func newAuthModel() authModel {
	username := textinput.New()
	username.Placeholder = "Username"
	username.CharLimit = 64
	username.Width = 32

	password := textinput.New()
	password.Placeholder = "Password"
	password.CharLimit = 128
	password.Width = 32
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return authModel{
		username: username,
		password: password,
		focused:  authFieldUsername,
	}
}

func (a *App) updateAuth(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return a.updateAuthInputs(msg)
	}

	switch keyMsg.String() {
	case "tab", "shift+tab", "up", "down":
		if a.auth.focused == authFieldUsername {
			a.auth.focused = authFieldPassword
			a.auth.username.Blur()
			return a, a.auth.password.Focus()
		}
		a.auth.focused = authFieldUsername
		a.auth.password.Blur()
		return a, a.auth.username.Focus()

	case "ctrl+s":
		// Switch between sign up and login
		a.auth.login = !a.auth.login
		a.auth.errMsg = ""
		return a, nil

	case "ctrl+p":
		a.auth.showPass = !a.auth.showPass
		if a.auth.showPass {
			a.auth.password.EchoMode = textinput.EchoNormal
		} else {
			a.auth.password.EchoMode = textinput.EchoPassword
		}
		return a, nil

	case "ctrl+g":
		// Continue as guest: fully in-memory session, nothing persists.
		return a, a.startSession(store.GuestName)

	case "enter":
		return a.submitAuth()
	}

	return a.updateAuthInputs(msg)
}

func (a *App) updateAuthInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	a.auth.username, cmd = a.auth.username.Update(msg)
	cmds = append(cmds, cmd)
	a.auth.password, cmd = a.auth.password.Update(msg)
	cmds = append(cmds, cmd)
	return a, tea.Batch(cmds...)
}

func (a *App) submitAuth() (tea.Model, tea.Cmd) {
	username := strings.TrimSpace(a.auth.username.Value())
	password := strings.TrimSpace(a.auth.password.Value())
	a.auth.errMsg = ""

	if username == "" || password == "" {
		return a, a.authError(creds.ErrEmptyField)
	}

	if a.auth.login {
		if err := a.credStore.Authenticate(username, password); err != nil {
			return a, a.authError(err)
		}
		return a, a.startSession(username)
	}

	if err := a.credStore.Register(username, password); err != nil {
		if isCredentialErr(err) {
			return a, a.authError(err)
		}
		// Persisting the new account failed; not user-correctable.
		return a, a.authError(errors.New("failed to save account"))
	}

	// Account created; switch to the login form as the original flow does.
	a.auth.login = true
	a.auth.password.SetValue("")
	return a, a.setStatus("Account created successfully!")
}

// authError shows a credential error as a transient inline message.
func (a *App) authError(err error) tea.Cmd {
	a.auth.errMsg = err.Error()
	return clearStatusCmd()
}

func (a *App) viewAuth() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Student Study Planner"))
	b.WriteString("\n\n")

	if a.auth.login {
		b.WriteString(styles.Subtitle.Render("Login"))
	} else {
		b.WriteString(styles.Subtitle.Render("Sign Up"))
	}
	b.WriteString("\n\n")

	b.WriteString(a.auth.username.View())
	b.WriteString("\n")
	b.WriteString(a.auth.password.View())
	b.WriteString("\n\n")

	if a.auth.errMsg != "" {
		b.WriteString(styles.Error.Render(a.auth.errMsg))
		b.WriteString("\n\n")
	} else if a.statusMsg != "" {
		b.WriteString(styles.Title.Render(a.statusMsg))
		b.WriteString("\n\n")
	}

	b.WriteString(styles.Help.Render("enter submit | tab switch field | ctrl+s " + a.switchModeHint() + " | ctrl+p show password | ctrl+g guest | ctrl+c quit"))

	return styles.App.Render(b.String())
}

func (a *App) switchModeHint() string {
	if a.auth.login {
		return "sign up"
	}
	return "login"
}

// isCredentialErr reports whether err belongs to the user-correctable
// credential error taxonomy.
func isCredentialErr(err error) bool {
	return errors.Is(err, creds.ErrEmptyField) ||
		errors.Is(err, creds.ErrDuplicateUser) ||
		errors.Is(err, creds.ErrWeakPassword) ||
		errors.Is(err, creds.ErrUnknownUser) ||
		errors.Is(err, creds.ErrWrongPassword)
}
