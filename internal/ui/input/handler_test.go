package input

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multipick/internal/pointer"
	"multipick/internal/ui/input/types"
	"multipick/internal/ui/state"
)

var fruits = []string{"Apple", "Banana", "Cherry", "Date", "Elderberry", "Fig"}

func newCtx() WidgetContext {
	return WidgetContext{
		Candidates: fruits,
		Bounds:     pointer.Rect{X: 0, Y: 1, Width: 40, Height: 1},
	}
}

func press(h *Handler, st state.WidgetState, key types.Key, ctx Context) (state.WidgetState, Result) {
	return h.Handle(st, types.KeyPressed{Key: key}, ctx)
}

func TestTextChangedResetsHighlight(t *testing.T) {
	h := New()
	ctx := newCtx()

	st, _ := h.Handle(state.New(), types.TextChanged{Value: "e"}, ctx)
	st, _ = press(h, st, types.KeyArrowDown, ctx)
	require.Equal(t, 0, st.Highlighted)

	st, res := h.Handle(st, types.TextChanged{Value: "el"}, ctx)
	assert.True(t, res.Handled)
	assert.Equal(t, "el", st.Query)
	assert.Equal(t, state.NoHighlight, st.Highlighted)
	assert.True(t, st.ShowDropdown, "typing never changes visibility")
}

func TestArrowDownClampsAtLastSuggestion(t *testing.T) {
	h := New()
	ctx := newCtx()

	st, _ := h.Handle(state.New(), types.TextChanged{Value: "d"}, ctx) // [Date]
	for i := 0; i < 5; i++ {
		st, _ = press(h, st, types.KeyArrowDown, ctx)
	}
	assert.Equal(t, 0, st.Highlighted)

	st, _ = h.Handle(st, types.TextChanged{Value: "zzz"}, ctx) // []
	st, _ = press(h, st, types.KeyArrowDown, ctx)
	assert.Equal(t, state.NoHighlight, st.Highlighted, "no suggestions, none stays none")
}

func TestArrowUpClamps(t *testing.T) {
	h := New()
	ctx := newCtx()

	// "none" is kept while the query is empty by the settle rule
	st, _ := press(h, state.New(), types.KeyArrowUp, ctx)
	assert.Equal(t, state.NoHighlight, st.Highlighted)

	ctx.Candidates = []string{"Apple", "Apricot", "Avocado"}
	st, _ = h.Handle(state.New(), types.TextChanged{Value: "a"}, ctx)
	st, _ = press(h, st, types.KeyArrowUp, ctx)
	assert.Equal(t, state.NoHighlight, st.Highlighted, "-1 stays -1")

	st, _ = press(h, st, types.KeyArrowDown, ctx)
	st, _ = press(h, st, types.KeyArrowDown, ctx)
	require.Equal(t, 1, st.Highlighted)

	for i := 0; i < 4; i++ {
		st, _ = press(h, st, types.KeyArrowUp, ctx)
	}
	assert.Equal(t, 0, st.Highlighted, "pinned at 0 once non-negative")
}

func TestEmptyQueryForcesNoHighlight(t *testing.T) {
	h := New()
	ctx := newCtx()

	st, _ := press(h, state.New(), types.KeyArrowDown, ctx)
	assert.Equal(t, state.NoHighlight, st.Highlighted)

	st, _ = h.Handle(state.New(), types.TextChanged{Value: ""}, ctx)
	assert.Equal(t, state.NoHighlight, st.Highlighted)

	// a custom handler that highlights without a query is still settled
	h.Register(types.KindFocus, func(st state.WidgetState, _ types.Event, _ Context) (state.WidgetState, Result) {
		return st.WithHighlight(3), Result{}
	})
	st, _ = h.Handle(state.New(), types.Focus{}, ctx)
	assert.Equal(t, state.NoHighlight, st.Highlighted)
}

func TestEnterWithoutHighlightDoesNothing(t *testing.T) {
	h := New()
	ctx := newCtx()

	st, _ := h.Handle(state.New(), types.TextChanged{Value: "b"}, ctx)
	next, res := press(h, st, types.KeyEnter, ctx)

	assert.False(t, res.Handled)
	assert.Equal(t, st, next)
}

func TestEnterPicksHighlighted(t *testing.T) {
	h := New()
	ctx := newCtx()
	ctx.Candidates = []string{"Apple", "Apricot", "Avocado"}

	st, _ := h.Handle(state.New(), types.TextChanged{Value: "ap"}, ctx)
	st, _ = press(h, st, types.KeyArrowDown, ctx)
	st, _ = press(h, st, types.KeyArrowDown, ctx)

	st, res := press(h, st, types.KeyEnter, ctx)
	assert.True(t, res.Handled)
	assert.Equal(t, []string{"Apricot"}, st.Selection)
	assert.Equal(t, "", st.Query)
	assert.Equal(t, state.NoHighlight, st.Highlighted)
}

func TestEnterOutOfRangeIsGuarded(t *testing.T) {
	h := New()
	ctx := newCtx()

	st := state.New().WithQuery("a").WithHighlight(5) // only [Apple] matches
	next, res := press(h, st, types.KeyEnter, ctx)

	assert.False(t, res.Handled)
	assert.Empty(t, next.Selection)
	assert.Equal(t, "a", next.Query)
}

func TestKeysIgnoredWhenDropdownHidden(t *testing.T) {
	h := New()
	ctx := newCtx()

	st := state.New().WithQuery("b")
	st.ShowDropdown = false

	next, res := press(h, st, types.KeyArrowDown, ctx)
	assert.False(t, res.Handled)
	assert.Equal(t, state.NoHighlight, next.Highlighted)
}

func TestOtherKeysPassThrough(t *testing.T) {
	h := New()
	st, res := press(h, state.New().WithQuery("a"), types.Key("Tab"), newCtx())
	assert.False(t, res.Handled)
	assert.Equal(t, "a", st.Query)
}

func TestSuggestionMouseDownPreventsDefault(t *testing.T) {
	h := New()
	st, res := h.Handle(state.New().WithQuery("ch"), types.SuggestionMouseDown{Label: "Cherry"}, newCtx())

	assert.True(t, res.PreventDefault)
	assert.Equal(t, []string{"Cherry"}, st.Selection)
	assert.Equal(t, "", st.Query)

	st, res = h.Handle(st, types.SuggestionClick{Label: "Cherry"}, newCtx())
	assert.False(t, res.PreventDefault)
	assert.Equal(t, []string{"Cherry"}, st.Selection, "click after mouse-down is idempotent")
}

func TestChipRemoveKeepsQuery(t *testing.T) {
	h := New()
	st := state.New().Pick("Fig").WithQuery("b")

	st, res := h.Handle(st, types.ChipRemove{Label: "Fig"}, newCtx())
	assert.True(t, res.Handled)
	assert.Empty(t, st.Selection)
	assert.Equal(t, "b", st.Query)
}

func TestPointerFocusAndBlurLeaveStateAlone(t *testing.T) {
	h := New()
	ctx := newCtx()
	st := state.New().Pick("Apple").WithQuery("b")

	for _, ev := range []types.Event{
		types.PointerDown{Target: pointer.Point{X: 3, Y: 1}},  // inside
		types.PointerDown{Target: pointer.Point{X: 3, Y: 10}}, // outside
		types.Focus{},
		types.Blur{},
	} {
		next, res := h.Handle(st, ev, ctx)
		assert.Equal(t, st, next, "event %s", ev.Kind())
		assert.False(t, res.Handled)
	}
}

func TestPointerDownTestedBeforeFirstRender(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	h := New()
	ctx := WidgetContext{Candidates: fruits} // no input bounds recorded yet

	h.Handle(state.New(), types.PointerDown{Target: pointer.Point{X: 0, Y: 0}}, ctx)
	assert.Contains(t, buf.String(), "pointer down outside input at 0,0")

	buf.Reset()
	h.Handle(state.New(), types.PointerDown{Target: pointer.Point{X: 3, Y: 1}}, newCtx())
	assert.NotContains(t, buf.String(), "outside input")
}

func TestRegisterOverridesHandler(t *testing.T) {
	h := New()
	blurred := false
	h.Register(types.KindBlur, func(st state.WidgetState, _ types.Event, _ Context) (state.WidgetState, Result) {
		blurred = true
		return st, Result{}
	})

	h.Handle(state.New(), types.Blur{}, newCtx())
	assert.True(t, blurred)
}

func TestNilEventIsIgnored(t *testing.T) {
	st, res := New().Handle(state.New(), nil, newCtx())
	assert.Equal(t, state.New(), st)
	assert.Equal(t, Result{}, res)
}
