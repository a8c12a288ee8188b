package views

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"multipick/internal/pointer"
	"multipick/internal/ui/logic"
	"multipick/internal/ui/viewmodels"
)

const defaultWidth = 80

// Frame contains all the state needed for rendering one screen
type Frame struct {
	Width         int
	Height        int
	Widget        viewmodels.ViewState
	Input         string // rendered text input
	Focused       bool
	StatusMessage string
	StatusIsError bool
	Help          string // rendered key help, empty to hide
}

// Renderer handles all view rendering
type Renderer struct {
	styles     *Styles
	chipRender *ChipRenderer
	viewport   *logic.Viewport
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:     styles,
		chipRender: NewChipRenderer(styles),
		viewport:   logic.NewViewport(10),
	}
}

// Render produces the complete view and its hit regions
func (r *Renderer) Render(f Frame) Layout {
	width := f.Width
	if width <= 0 {
		width = defaultWidth
	}

	var (
		lines  []string
		layout Layout
	)

	// Title
	title := r.styles.Title.Render("multipick")
	if n := len(f.Widget.Chips); n > 0 {
		title += " " + r.styles.Count.Render(fmt.Sprintf("(%d selected)", n))
	}
	lines = append(lines, title)

	// Chips
	chipLines, chipRegions := r.chipRender.RenderChips(f.Widget.Chips, len(lines), width)
	lines = append(lines, chipLines...)
	layout.ChipButtons = chipRegions

	// Input
	inputStyle := r.styles.Input
	if !f.Focused {
		inputStyle = r.styles.InputBlurred
	}
	layout.Input = pointer.Rect{X: 0, Y: len(lines), Width: width, Height: 1}
	lines = append(lines, inputStyle.Render(f.Input))

	// Footer is rendered last but its height is reserved now
	var footer []string
	if f.StatusMessage != "" {
		style := r.styles.StatusSuccess
		if f.StatusIsError {
			style = r.styles.StatusError
		}
		footer = append(footer, style.Render(f.StatusMessage))
	}
	if f.Help != "" {
		footer = append(footer, r.styles.Help.Render(f.Help))
	}

	// Suggestions
	if f.Widget.ShowSuggestions && len(f.Widget.Suggestions) > 0 {
		available := 0
		if f.Height > 0 {
			available = max(1, f.Height-len(lines)-len(footer))
		}
		suggestionLines, regions := r.renderSuggestions(f.Widget, len(lines), width, available)
		lines = append(lines, suggestionLines...)
		layout.Suggestions = regions
	}

	lines = append(lines, footer...)
	layout.Content = strings.Join(lines, "\n")
	return layout
}

// renderSuggestions renders the visible window of the suggestion list.
// available <= 0 means the height is unknown and every row is shown.
func (r *Renderer) renderSuggestions(vs viewmodels.ViewState, top, width, available int) ([]string, []Region) {
	total := len(vs.Suggestions)
	start, end := 0, total
	indicators := false

	if available > 0 && total > available {
		if available >= 3 {
			// reserve two rows for the scroll indicators
			r.viewport.SetHeight(available - 2)
			indicators = true
		} else {
			r.viewport.SetHeight(available)
		}
		start, end = r.viewport.Follow(vs.Highlighted, total)
	}

	var (
		lines   []string
		regions []Region
	)
	if indicators && start > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more", start)))
	}
	for i := start; i < end; i++ {
		s := vs.Suggestions[i]
		label := runewidth.Truncate(s.Label, width-2, "…")

		var line string
		if s.Highlighted {
			line = r.styles.HighlightBg.Render(r.styles.Highlight.Render("› " + label))
		} else {
			line = r.styles.Suggestion.Render("  " + label)
		}
		regions = append(regions, Region{
			Label:  s.Label,
			Bounds: pointer.Rect{X: 0, Y: top + len(lines), Width: width, Height: 1},
		})
		lines = append(lines, line)
	}
	if indicators && end < total {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more", total-end)))
	}

	return lines, regions
}
