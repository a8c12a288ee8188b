package types

// Kind identifies an event variant
type Kind int

const (
	KindTextChanged Kind = iota
	KindKeyPressed
	KindPointerDown
	KindFocus
	KindBlur
	KindSuggestionMouseDown
	KindSuggestionClick
	KindChipRemove
)

var kindNames = map[Kind]string{
	KindTextChanged:         "text_changed",
	KindKeyPressed:          "key_pressed",
	KindPointerDown:         "pointer_down",
	KindFocus:               "focus",
	KindBlur:                "blur",
	KindSuggestionMouseDown: "suggestion_mouse_down",
	KindSuggestionClick:     "suggestion_click",
	KindChipRemove:          "chip_remove",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is an input delivered to the widget by its host
type Event interface {
	Kind() Kind
}

// Key identifies a pressed key
type Key string

// Keys with defined transitions. Anything else passes through to the
// host text input.
const (
	KeyArrowDown Key = "ArrowDown"
	KeyArrowUp   Key = "ArrowUp"
	KeyEnter     Key = "Enter"
)
