package ui

import tea "github.com/charmbracelet/bubbletea"

// DeleteLabel is the pseudo-label for backspace; it has no keypad button.
const DeleteLabel = "backspace"

// PressMsg is sent when a keypad button is activated by key, mouse or focus.
type PressMsg struct {
	Label string
}

// ToggleHelpMsg opens or closes the full keybinding help.
type ToggleHelpMsg struct{}

// flashDoneMsg ends the pressed highlight started by the press with the same id.
type flashDoneMsg struct {
	id int
}

func pressCmd(label string) tea.Cmd {
	return func() tea.Msg { return PressMsg{Label: label} }
}
