package ui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

// newHelpModel returns a bubbles/help model styled like the rest of the ui.
func newHelpModel(s Styles) help.Model {
	h := help.New()
	h.Styles.ShortKey = s.HelpKey
	h.Styles.ShortDesc = s.HelpDesc
	h.Styles.ShortSeparator = s.HelpDesc
	h.Styles.FullKey = s.HelpKey
	h.Styles.FullDesc = s.HelpDesc
	h.Styles.FullSeparator = s.HelpDesc
	return h
}

// RenderShortHelp produces the one-line hint shown under the keypad.
func RenderShortHelp(km help.KeyMap, s Styles) string {
	return newHelpModel(s).ShortHelpView(km.ShortHelp())
}

// HelpView is the overlay listing every keybinding.
type HelpView struct {
	KeyMap help.KeyMap
	Styles Styles
}

// Init implements View.
func (h *HelpView) Init() tea.Cmd { return nil }

// Update implements View.
func (h *HelpView) Update(tea.Msg) (View, tea.Cmd) { return h, nil }

// View implements View.
func (h *HelpView) View() string {
	m := newHelpModel(h.Styles)
	m.ShowAll = true
	body := h.Styles.Title.Render("Keys") + "\n\n" + m.View(h.KeyMap)
	return h.Styles.Box.Render(body)
}
