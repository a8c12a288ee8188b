package input

import (
	"log"

	"multipick/internal/ui/input/types"
	"multipick/internal/ui/logic"
	"multipick/internal/ui/state"
)

func handleTextChanged(st state.WidgetState, ev types.Event, _ Context) (state.WidgetState, Result) {
	e, ok := ev.(types.TextChanged)
	if !ok {
		return st, Result{}
	}
	// Typing does not reopen the suggestion list; visibility is fixed at creation.
	return st.WithQuery(e.Value), Result{Handled: true}
}

func handleKeyPressed(st state.WidgetState, ev types.Event, ctx Context) (state.WidgetState, Result) {
	e, ok := ev.(types.KeyPressed)
	if !ok {
		return st, Result{}
	}
	if !st.ShowDropdown {
		return st, Result{}
	}

	switch e.Key {
	case types.KeyArrowDown:
		n := len(ctx.Suggestions(st))
		return st.WithHighlight(logic.MoveDown(st.Highlighted, n)), Result{Handled: true}

	case types.KeyArrowUp:
		return st.WithHighlight(logic.MoveUp(st.Highlighted)), Result{Handled: true}

	case types.KeyEnter:
		if st.Highlighted == state.NoHighlight {
			return st, Result{}
		}
		suggestions := ctx.Suggestions(st)
		if !logic.InRange(st.Highlighted, len(suggestions)) {
			log.Printf("input: highlighted index %d out of range for %d suggestions", st.Highlighted, len(suggestions))
			return st, Result{}
		}
		return st.Pick(suggestions[st.Highlighted]), Result{Handled: true}
	}

	return st, Result{}
}

func handlePointerDown(st state.WidgetState, ev types.Event, ctx Context) (state.WidgetState, Result) {
	e, ok := ev.(types.PointerDown)
	if !ok {
		return st, Result{}
	}
	if !ctx.InputBounds().Contains(e.Target) {
		// Outside the input. Hiding the suggestion list here is disabled,
		// so the list stays visible.
		log.Printf("input: pointer down outside input at %d,%d", e.Target.X, e.Target.Y)
	}
	return st, Result{}
}

func handleFocus(st state.WidgetState, _ types.Event, _ Context) (state.WidgetState, Result) {
	log.Printf("input: focus")
	return st, Result{}
}

func handleBlur(st state.WidgetState, _ types.Event, _ Context) (state.WidgetState, Result) {
	return st, Result{}
}

func handleSuggestionMouseDown(st state.WidgetState, ev types.Event, _ Context) (state.WidgetState, Result) {
	e, ok := ev.(types.SuggestionMouseDown)
	if !ok {
		return st, Result{}
	}
	// Keep focus on the input so the click can complete before blur.
	return st.Pick(e.Label), Result{Handled: true, PreventDefault: true}
}

func handleSuggestionClick(st state.WidgetState, ev types.Event, _ Context) (state.WidgetState, Result) {
	e, ok := ev.(types.SuggestionClick)
	if !ok {
		return st, Result{}
	}
	return st.Pick(e.Label), Result{Handled: true}
}

func handleChipRemove(st state.WidgetState, ev types.Event, _ Context) (state.WidgetState, Result) {
	e, ok := ev.(types.ChipRemove)
	if !ok {
		return st, Result{}
	}
	return st.Remove(e.Label), Result{Handled: true}
}
