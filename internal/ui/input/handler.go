package input

import (
	"log"

	"multipick/internal/ui/input/types"
	"multipick/internal/ui/state"
)

// Result tells the host what happened to an event
type Result struct {
	Handled        bool // a transition fired; the host should not apply its default key handling
	PreventDefault bool // the host must not move focus away from the input
}

// HandlerFunc maps an event and the current state to the next state
type HandlerFunc func(st state.WidgetState, ev types.Event, ctx Context) (state.WidgetState, Result)

// Handler dispatches events to the handler registered for their kind
type Handler struct {
	handlers map[types.Kind]HandlerFunc
}

// New creates a handler with the default transitions registered
func New() *Handler {
	h := &Handler{
		handlers: make(map[types.Kind]HandlerFunc),
	}

	h.handlers[types.KindTextChanged] = handleTextChanged
	h.handlers[types.KindKeyPressed] = handleKeyPressed
	h.handlers[types.KindPointerDown] = handlePointerDown
	h.handlers[types.KindFocus] = handleFocus
	h.handlers[types.KindBlur] = handleBlur
	h.handlers[types.KindSuggestionMouseDown] = handleSuggestionMouseDown
	h.handlers[types.KindSuggestionClick] = handleSuggestionClick
	h.handlers[types.KindChipRemove] = handleChipRemove

	return h
}

// Register replaces the handler for kind
func (h *Handler) Register(kind types.Kind, fn HandlerFunc) {
	h.handlers[kind] = fn
}

// Handle runs the handler for ev and settles the resulting state.
// Events without a handler leave the state unchanged.
func (h *Handler) Handle(st state.WidgetState, ev types.Event, ctx Context) (state.WidgetState, Result) {
	if ev == nil {
		return st, Result{}
	}
	fn := h.handlers[ev.Kind()]
	if fn == nil {
		log.Printf("input: no handler for %s", ev.Kind())
		return st, Result{}
	}

	next, res := fn(st, ev, ctx)
	return next.Settle(), res
}
