package views

import (
	"multipick/internal/pointer"
)

// Region is the screen area of one labelled element
type Region struct {
	Label  string
	Bounds pointer.Rect
}

// Layout is a rendered frame together with the hit regions of its
// interactive elements, in screen cells relative to the frame origin.
type Layout struct {
	Content     string
	Input       pointer.Rect
	ChipButtons []Region
	Suggestions []Region
}

// SuggestionAt returns the label of the suggestion row under p
func (l Layout) SuggestionAt(p pointer.Point) (string, bool) {
	return regionAt(l.Suggestions, p)
}

// ChipButtonAt returns the label of the chip whose remove button is under p
func (l Layout) ChipButtonAt(p pointer.Point) (string, bool) {
	return regionAt(l.ChipButtons, p)
}

// InInput reports whether p is inside the text input
func (l Layout) InInput(p pointer.Point) bool {
	return l.Input.Contains(p)
}

func regionAt(regions []Region, p pointer.Point) (string, bool) {
	for _, r := range regions {
		if r.Bounds.Contains(p) {
			return r.Label, true
		}
	}
	return "", false
}
