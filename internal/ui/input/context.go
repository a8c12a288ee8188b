package input

import (
	"multipick/internal/pointer"
	"multipick/internal/ui/logic"
	"multipick/internal/ui/state"
)

// Context provides read-only access to what handlers need beyond the state
type Context interface {
	// Suggestions recomputes the suggestion sequence for st
	Suggestions(st state.WidgetState) []string
	// InputBounds is the screen area of the mounted text input
	InputBounds() pointer.Rect
}

// WidgetContext implements Context from a candidate list and a matcher
type WidgetContext struct {
	Candidates []string
	Match      logic.Matcher
	Bounds     pointer.Rect
}

// Suggestions returns the filtered candidates for st
func (c WidgetContext) Suggestions(st state.WidgetState) []string {
	match := c.Match
	if match == nil {
		match = logic.Suggestions
	}
	return match(c.Candidates, st.Selection, st.Query)
}

// InputBounds returns the input's screen area
func (c WidgetContext) InputBounds() pointer.Rect {
	return c.Bounds
}
