package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"multipick/internal/pointer"
	"multipick/internal/ui/viewmodels"
)

const (
	maxChipLabelWidth = 24
	chipButtonText    = "X"
	chipGap           = " "
)

// ChipRenderer handles rendering of the selection chips
type ChipRenderer struct {
	styles *Styles
}

// NewChipRenderer creates a new chip renderer
func NewChipRenderer(styles *Styles) *ChipRenderer {
	return &ChipRenderer{
		styles: styles,
	}
}

// RenderChips lays out chips starting at row top, wrapping at width.
// It returns the rendered lines and the remove-button regions.
func (cr *ChipRenderer) RenderChips(chips []viewmodels.Chip, top, width int) ([]string, []Region) {
	if len(chips) == 0 {
		return []string{cr.styles.Dim.Render("no items selected")}, nil
	}

	var (
		lines   []string
		regions []Region
		line    strings.Builder
		x       int
	)
	gapWidth := runewidth.StringWidth(chipGap)

	for _, chip := range chips {
		label := cr.styles.Chip.Render(runewidth.Truncate(chip.Label, maxChipLabelWidth, "…"))
		button := cr.styles.ChipButton.Render(chipButtonText)
		labelWidth := lipgloss.Width(label)
		buttonWidth := lipgloss.Width(button)
		chipWidth := labelWidth + buttonWidth

		if x > 0 && x+gapWidth+chipWidth > width {
			lines = append(lines, line.String())
			line.Reset()
			x = 0
		}
		if x > 0 {
			line.WriteString(chipGap)
			x += gapWidth
		}

		line.WriteString(label)
		line.WriteString(button)
		regions = append(regions, Region{
			Label: chip.Label,
			Bounds: pointer.Rect{
				X:      x + labelWidth,
				Y:      top + len(lines),
				Width:  buttonWidth,
				Height: 1,
			},
		})
		x += chipWidth
	}
	lines = append(lines, line.String())

	return lines, regions
}
