package tui

import (
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
)

// fetchHolidaysCmd refreshes the holiday cache for the year currently in
// view. The request runs off the UI goroutine; the result is marshaled back
// as a holidaysMsg.
func (a *App) fetchHolidaysCmd() tea.Cmd {
	a.holidaySeq++
	seq := a.holidaySeq
	year := a.nav.Year
	country := a.cfg.Holidays.CountryCode
	client := a.holidayClient

	return func() tea.Msg {
		holidays, err := client.Fetch(year, country)
		return holidaysMsg{seq: seq, year: year, holidays: holidays, err: err}
	}
}

// askAssistantCmd sends one question to the assistant in the background.
func (a *App) askAssistantCmd(seq int, question string) tea.Cmd {
	client := a.assistantClient
	return func() tea.Msg {
		reply, err := client.Ask(question)
		return assistantReplyMsg{seq: seq, reply: reply, err: err}
	}
}

// clearStatusCmd clears transient inline messages after a short delay.
func clearStatusCmd() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// notifyTodayCmd sends a desktop notification summarizing today's tasks.
func notifyTodayCmd(count int) tea.Cmd {
	if count == 0 {
		return nil
	}
	return func() tea.Msg {
		body := fmt.Sprintf("You have %d task(s) planned for today", count)
		if err := beeep.Notify("Study Planner", body, ""); err != nil {
			log.Printf("failed to send notification: %v", err)
		}
		return nil
	}
}
