package viewmodels

import (
	"multipick/internal/ui/state"
)

// Chip is a selected label rendered with a remove button
type Chip struct {
	Label  string
	Remove func() // removes this label from the selection
}

// Suggestion is one entry of the suggestion list
type Suggestion struct {
	Label       string
	Highlighted bool
}

// ViewState is everything the rendering layer needs after a state change
type ViewState struct {
	Query           string
	Placeholder     string
	Chips           []Chip
	ShowSuggestions bool
	Suggestions     []Suggestion
	Highlighted     int // index of the highlighted suggestion, -1 for none
}

// Build projects widget state and its computed suggestions into a ViewState.
// remove is bound to each chip's label.
func Build(st state.WidgetState, suggestions []string, placeholder string, remove func(label string)) ViewState {
	vs := ViewState{
		Query:           st.Query,
		Placeholder:     placeholder,
		ShowSuggestions: st.ShowDropdown,
		Highlighted:     st.Highlighted,
		Chips:           make([]Chip, 0, len(st.Selection)),
		Suggestions:     make([]Suggestion, 0, len(suggestions)),
	}

	for _, label := range st.Selection {
		label := label
		vs.Chips = append(vs.Chips, Chip{
			Label: label,
			Remove: func() {
				if remove != nil {
					remove(label)
				}
			},
		})
	}

	for i, label := range suggestions {
		vs.Suggestions = append(vs.Suggestions, Suggestion{
			Label:       label,
			Highlighted: i == st.Highlighted,
		})
	}

	return vs
}

// ChipLabels returns the chip labels in display order
func (vs ViewState) ChipLabels() []string {
	labels := make([]string, len(vs.Chips))
	for i, c := range vs.Chips {
		labels[i] = c.Label
	}
	return labels
}

// SuggestionLabels returns the suggestion labels in display order
func (vs ViewState) SuggestionLabels() []string {
	labels := make([]string, len(vs.Suggestions))
	for i, s := range vs.Suggestions {
		labels[i] = s.Label
	}
	return labels
}
