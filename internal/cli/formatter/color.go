package formatter

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ewblake/soiree/internal/domain"
)

// Nord-ish color palette.
var (
	ColorGreen  = lipgloss.Color("#a3be8c")
	ColorYellow = lipgloss.Color("#ebcb8b")
	ColorRed    = lipgloss.Color("#bf616a")
	ColorBlue   = lipgloss.Color("#81a1c1")
	ColorDim    = lipgloss.Color("#4c566a")
	ColorHeader = lipgloss.Color("#88c0d0")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Bold(true)
)

// PriorityStyle returns the lipgloss style for a priority band.
func PriorityStyle(p domain.Priority) lipgloss.Style {
	switch p {
	case domain.PriorityHigh:
		return StyleRed
	case domain.PriorityMedium:
		return StyleYellow
	case domain.PriorityLow:
		return StyleGreen
	default:
		return StyleDim
	}
}
