package tui

import "github.com/hbadr/studyplan-tui/internal/holiday"

// holidaysMsg carries the result of a background holiday refresh. seq guards
// against out-of-order completion: only the most recently issued refresh is
// accepted.
type holidaysMsg struct {
	seq      int
	year     int
	holidays map[holiday.Date]string
	err      error
}

// assistantReplyMsg carries the result of a background assistant request.
type assistantReplyMsg struct {
	seq   int
	reply string
	err   error
}

// clearStatusMsg clears transient inline messages.
type clearStatusMsg struct{}
