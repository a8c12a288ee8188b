package ui

import (
	"multipick/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// CandidatesReloadedMsg carries a freshly loaded candidate list.
// The host replaces its widget, which resets the selection.
type CandidatesReloadedMsg struct {
	Source     string
	Candidates []string
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// clipboardMsg contains the result of copying the selection
type clipboardMsg struct {
	count int
	err   error
}

// clearStatusMsg clears the status line
type clearStatusMsg struct{}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
