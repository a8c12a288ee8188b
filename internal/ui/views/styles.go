package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Count         lipgloss.Style
	Dim           lipgloss.Style
	Chip          lipgloss.Style
	ChipButton    lipgloss.Style
	Input         lipgloss.Style
	InputBlurred  lipgloss.Style
	Suggestion    lipgloss.Style
	Highlight     lipgloss.Style
	HighlightBg   lipgloss.Style
	Scroll        lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	Help          lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Count: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Dim:   lipgloss.NewStyle().Faint(true),
		Chip: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("238")).
			Padding(0, 1),
		ChipButton: lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")). // red
			Background(lipgloss.Color("236")).
			Padding(0, 1),
		Input:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		InputBlurred: lipgloss.NewStyle().Faint(true),
		Suggestion:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Highlight:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		HighlightBg:  lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Scroll:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		StatusError:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusSuccess: lipgloss.NewStyle().
			Foreground(lipgloss.Color("78")), // green
		Help: lipgloss.NewStyle().Faint(true),
	}
}
