package types

import "multipick/internal/pointer"

// Text input events
type TextChanged struct {
	Value string
}

func (e TextChanged) Kind() Kind { return KindTextChanged }

// Keyboard events
type KeyPressed struct {
	Key Key
}

func (e KeyPressed) Kind() Kind { return KindKeyPressed }

// PointerDown is a pointer press anywhere on screen
type PointerDown struct {
	Target pointer.Point
}

func (e PointerDown) Kind() Kind { return KindPointerDown }

// Focus events
type Focus struct{}

func (e Focus) Kind() Kind { return KindFocus }

type Blur struct{}

func (e Blur) Kind() Kind { return KindBlur }

// Suggestion list events
type SuggestionMouseDown struct {
	Label string
}

func (e SuggestionMouseDown) Kind() Kind { return KindSuggestionMouseDown }

type SuggestionClick struct {
	Label string
}

func (e SuggestionClick) Kind() Kind { return KindSuggestionClick }

// Chip events
type ChipRemove struct {
	Label string
}

func (e ChipRemove) Kind() Kind { return KindChipRemove }
