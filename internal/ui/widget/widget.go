// Package widget implements SelectionInput, a text input for picking
// several labels from a fixed candidate list.
//
// The widget owns its state and reacts to events delivered by a host
// through Dispatch. Suggestions are never stored; they are recomputed from
// the candidates, the selection and the query whenever they are read.
// While mounted the widget holds one listener in a process-wide pointer
// registry; Unmount releases it.
package widget

import (
	"log"

	"multipick/internal/eventbus"
	"multipick/internal/pointer"
	"multipick/internal/ui/input"
	"multipick/internal/ui/input/types"
	"multipick/internal/ui/logic"
	"multipick/internal/ui/state"
	"multipick/internal/ui/viewmodels"
)

// Placeholder is shown in the input while the query is empty
const Placeholder = "Type here..."

// Option configures a SelectionInput
type Option func(*SelectionInput)

// WithMatcher replaces the default prefix matcher
func WithMatcher(m logic.Matcher) Option {
	return func(w *SelectionInput) {
		if m != nil {
			w.match = m
		}
	}
}

// WithEventBus publishes pick and remove events on bus
func WithEventBus(bus eventbus.EventBus) Option {
	return func(w *SelectionInput) {
		w.bus = bus
	}
}

// WithRegistry uses reg instead of pointer.Default for outside-click detection
func WithRegistry(reg *pointer.Registry) Option {
	return func(w *SelectionInput) {
		if reg != nil {
			w.registry = reg
		}
	}
}

// SelectionInput is the multi-select type-ahead widget
type SelectionInput struct {
	candidates  []string
	match       logic.Matcher
	state       state.WidgetState
	handler     *input.Handler
	inputBounds pointer.Rect

	registry     *pointer.Registry
	subscription *pointer.Subscription

	bus eventbus.EventBus
}

// New creates a widget over a copy of candidates
func New(candidates []string, opts ...Option) *SelectionInput {
	w := &SelectionInput{
		candidates: append([]string(nil), candidates...),
		match:      logic.PrefixMatcher,
		state:      state.New(),
		handler:    input.New(),
		registry:   pointer.Default,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Mount registers the widget's pointer-down listener.
// Mounting an already mounted widget does nothing.
func (w *SelectionInput) Mount() {
	if w.subscription != nil {
		return
	}
	w.subscription = w.registry.Subscribe(func(ev pointer.Event) {
		w.Dispatch(types.PointerDown{Target: ev.Target})
	})
	log.Printf("widget: mounted with %d candidates", len(w.candidates))
}

// Unmount releases the pointer-down listener. Safe to call repeatedly.
func (w *SelectionInput) Unmount() {
	if w.subscription == nil {
		return
	}
	w.subscription.Release()
	w.subscription = nil
	log.Printf("widget: unmounted")
}

// Mounted reports whether the pointer-down listener is registered
func (w *SelectionInput) Mounted() bool {
	return w.subscription != nil
}

// Handler exposes the dispatch table so hosts can wire focus and blur
func (w *SelectionInput) Handler() *input.Handler {
	return w.handler
}

// SetInputBounds records where the text input was last rendered
func (w *SelectionInput) SetInputBounds(r pointer.Rect) {
	w.inputBounds = r
}

// InputBounds returns the last rendered input area
func (w *SelectionInput) InputBounds() pointer.Rect {
	return w.inputBounds
}

// Dispatch applies ev to the widget state
func (w *SelectionInput) Dispatch(ev types.Event) input.Result {
	prev := w.state
	next, res := w.handler.Handle(prev, ev, w.context())
	w.state = next
	w.publishSelectionChange(prev, next, ev)
	return res
}

// State returns the current state
func (w *SelectionInput) State() state.WidgetState {
	return w.state
}

// Query returns the current query text
func (w *SelectionInput) Query() string {
	return w.state.Query
}

// Selection returns a copy of the selected labels in chip order
func (w *SelectionInput) Selection() []string {
	return w.state.SelectedLabels()
}

// Candidates returns a copy of the candidate list
func (w *SelectionInput) Candidates() []string {
	return append([]string(nil), w.candidates...)
}

// Suggestions recomputes the suggestion sequence for the current state
func (w *SelectionInput) Suggestions() []string {
	return w.context().Suggestions(w.state)
}

// View projects the current state for rendering
func (w *SelectionInput) View() viewmodels.ViewState {
	return viewmodels.Build(w.state, w.Suggestions(), Placeholder, func(label string) {
		w.Dispatch(types.ChipRemove{Label: label})
	})
}

func (w *SelectionInput) context() input.WidgetContext {
	return input.WidgetContext{
		Candidates: w.candidates,
		Match:      w.match,
		Bounds:     w.inputBounds,
	}
}

func (w *SelectionInput) publishSelectionChange(prev, next state.WidgetState, ev types.Event) {
	if w.bus == nil {
		return
	}
	switch {
	case len(next.Selection) > len(prev.Selection):
		w.bus.Publish(eventbus.ItemPickedEvent{
			Label:     next.Selection[len(next.Selection)-1],
			Selection: next.SelectedLabels(),
		})
	case len(next.Selection) < len(prev.Selection):
		label := ""
		if e, ok := ev.(types.ChipRemove); ok {
			label = e.Label
		}
		w.bus.Publish(eventbus.ItemRemovedEvent{
			Label:     label,
			Selection: next.SelectedLabels(),
		})
	}
}
