package state

// NoHighlight is the highlighted index when no suggestion is highlighted
const NoHighlight = -1

// WidgetState contains all the state of a selection input.
// Transitions return a new value; a selection slice is never modified
// after a state referencing it has been returned.
type WidgetState struct {
	Query        string   // raw query text, stored verbatim
	Selection    []string // chosen labels in chip order, unique
	ShowDropdown bool     // whether the suggestion list is rendered
	Highlighted  int      // index into the current suggestions, or NoHighlight
}

// New creates the initial widget state
func New() WidgetState {
	return WidgetState{
		Selection:    []string{},
		ShowDropdown: true,
		Highlighted:  NoHighlight,
	}
}

// IsSelected reports whether label is in the selection
func (s WidgetState) IsSelected(label string) bool {
	for _, l := range s.Selection {
		if l == label {
			return true
		}
	}
	return false
}

// SelectedLabels returns a copy of the selection
func (s WidgetState) SelectedLabels() []string {
	return append([]string(nil), s.Selection...)
}

// WithQuery replaces the query and clears the highlight
func (s WidgetState) WithQuery(query string) WidgetState {
	s.Query = query
	s.Highlighted = NoHighlight
	return s
}

// WithHighlight moves the highlight
func (s WidgetState) WithHighlight(index int) WidgetState {
	s.Highlighted = index
	return s
}

// Pick appends label to the selection if it is not already there, then
// clears the query and the highlight in either case.
func (s WidgetState) Pick(label string) WidgetState {
	if !s.IsSelected(label) {
		next := make([]string, len(s.Selection), len(s.Selection)+1)
		copy(next, s.Selection)
		s.Selection = append(next, label)
	}
	s.Query = ""
	s.Highlighted = NoHighlight
	return s
}

// Remove drops every occurrence of label from the selection.
// Query and highlight are left alone.
func (s WidgetState) Remove(label string) WidgetState {
	next := make([]string, 0, len(s.Selection))
	for _, l := range s.Selection {
		if l != label {
			next = append(next, l)
		}
	}
	s.Selection = next
	return s
}

// Settle enforces the invariants that hold after every transition:
// an empty query never has a highlighted suggestion.
func (s WidgetState) Settle() WidgetState {
	if s.Query == "" {
		s.Highlighted = NoHighlight
	}
	return s
}
