package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hbadr/studyplan-tui/internal/tui/styles"
)

const thinkingLine = "AI: ...thinking..."

// chatModel is the AI assistant screen: a transcript and an input line.
type chatModel struct {
	lines []string
	input textinput.Model

	// seq identifies the in-flight request. A reply whose seq does not
	// match is stale and discarded.
	seq int

	lastReply string
}

func newChatModel() chatModel {
	input := textinput.New()
	input.Placeholder = "Ask me anything about study planning..."
	input.CharLimit = 500
	input.Width = 60

	return chatModel{
		lines: []string{"AI: Hi! I'm your AI assistant. How can I help you with your study planning?"},
		input: input,
	}
}

func (a *App) openChat() (tea.Model, tea.Cmd) {
	if a.chat.lines == nil {
		a.chat = newChatModel()
	}
	a.screen = screenChat
	return a, a.chat.input.Focus()
}

func (a *App) updateChat(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		a.chat.input, cmd = a.chat.input.Update(msg)
		return a, cmd
	}

	switch keyMsg.String() {
	case "esc":
		a.screen = screenCalendar
		return a, nil

	case "enter":
		question := strings.TrimSpace(a.chat.input.Value())
		if question == "" {
			return a, nil
		}
		a.chat.input.SetValue("")
		a.chat.lines = append(a.chat.lines, "You: "+question, thinkingLine)
		a.chat.seq++
		return a, a.askAssistantCmd(a.chat.seq, question)

	case "ctrl+y":
		if a.chat.lastReply != "" {
			if err := clipboard.WriteAll(a.chat.lastReply); err == nil {
				return a, a.setStatus("Reply copied to clipboard")
			}
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.chat.input, cmd = a.chat.input.Update(msg)
	return a, cmd
}

// receive folds an assistant reply into the transcript, replacing the
// "thinking" placeholder. Stale replies from superseded requests are dropped.
func (c *chatModel) receive(msg assistantReplyMsg) {
	if msg.seq != c.seq {
		return
	}

	line := "AI: " + msg.reply
	if msg.err != nil {
		// Failures are surfaced inline in the transcript, never fatal.
		line = "AI: [" + msg.err.Error() + "]"
	} else {
		c.lastReply = msg.reply
	}

	if n := len(c.lines); n > 0 && c.lines[n-1] == thinkingLine {
		c.lines[n-1] = line
	} else {
		c.lines = append(c.lines, line)
	}
}

func (a *App) viewChat() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("AI Assistant"))
	b.WriteString("  ")
	b.WriteString(styles.Warning.Render("will NOT work offline"))
	b.WriteString("\n\n")

	// Keep the tail of the transcript that fits on screen.
	lines := a.chat.lines
	maxLines := a.height - 8
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	for _, line := range lines {
		if strings.HasPrefix(line, "You: ") {
			b.WriteString(styles.ChatUser.Render(line))
		} else {
			b.WriteString(styles.ChatAssistant.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.chat.input.View())
	b.WriteString("\n\n")

	if a.statusMsg != "" {
		b.WriteString(styles.Title.Render(a.statusMsg))
		b.WriteString("\n")
	}

	b.WriteString(styles.Help.Render("enter send | ctrl+y copy last reply | esc back"))

	return styles.App.Render(b.String())
}
