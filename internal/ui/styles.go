package ui

import (
	"tuicalc/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors for chrome that is not user-configurable.
const (
	ColorAccent    = "86"  // Cyan/green - for titles, focus ring
	ColorHighlight = "205" // Magenta - for help keys
	ColorMuted     = "241" // Gray - for dimmed text, hints
)

// Styles contains the style definitions used by the calculator view.
type Styles struct {
	Display  lipgloss.Style // Read-only result field
	Button   lipgloss.Style // Digit and '.' buttons
	Operator lipgloss.Style // + - x /
	Equals   lipgloss.Style // =
	Pressed  lipgloss.Style // Any button while it flashes
	Focused  lipgloss.Style // Button under the tab focus
	Blank    lipgloss.Style // Empty grid cells

	// Help and overlay styles
	Box      lipgloss.Style
	Title    lipgloss.Style
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
}

// NewStyles builds styles from a theme.
func NewStyles(t config.Theme) Styles {
	bg := lipgloss.Color(t.Background)
	fg := lipgloss.Color(t.Foreground)

	button := lipgloss.NewStyle().
		Bold(true).
		Foreground(fg).
		Background(bg).
		Align(lipgloss.Center, lipgloss.Center)

	return Styles{
		Display: lipgloss.NewStyle().
			Bold(true).
			Foreground(fg).
			Background(bg).
			Align(lipgloss.Right).
			Padding(1, 1, 0, 1).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(lipgloss.Color(t.Border)).
			BorderBackground(bg),
		Button:   button,
		Operator: button.Background(lipgloss.Color(t.Operator)),
		Equals:   button.Background(lipgloss.Color(t.Equals)),
		Pressed:  button.Background(lipgloss.Color(t.Pressed)),
		Focused:  button.Underline(true).Foreground(lipgloss.Color(ColorAccent)),
		Blank:    lipgloss.NewStyle().Background(bg),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorHighlight)).
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorAccent)),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorHighlight)).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorMuted)),
	}
}
