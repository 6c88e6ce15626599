package ui

import (
	"tuicalc/internal/calc"
	"tuicalc/internal/config"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// WindowTitle is set on the terminal when the program starts.
const WindowTitle = "Calculator"

// Help descriptions; also used to pick the short-help entries.
const (
	descDigit  = "digit"
	descPoint  = "point"
	descOp     = "operator"
	descEquals = "equals"
	descDelete = "delete"
	descClear  = "clear"
	descHelp   = "help"
	descQuit   = "quit"
)

// AppModel is the root model: one calculator view plus help overlays.
type AppModel struct {
	Calculator *CalculatorView
	KeyHandler *KeyHandler
	KeyMap     help.KeyMap
	Overlays   OverlayStack
	Styles     Styles
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle(WindowTitle), a.Calculator.Init())
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ToggleHelpMsg:
		if _, open := a.Overlays.Peek(); open {
			a.Overlays.Pop()
			return a, nil
		}
		a.Overlays.Push(Overlay{
			View:    &HelpView{KeyMap: a.KeyMap, Styles: a.Styles},
			Dismiss: []string{"esc", "?"},
		})
		return a, nil
	case tea.KeyMsg:
		if a.Overlays.HandleKey(msg) {
			return a, nil
		}
		if a.KeyHandler != nil {
			if consumed, keyCmd := a.KeyHandler.Handle(msg); consumed {
				return a, keyCmd
			}
		}
	}

	v, cmd := a.Calculator.Update(msg)
	if c, ok := v.(*CalculatorView); ok {
		a.Calculator = c
	}
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	parts := []string{a.Calculator.View(), RenderShortHelp(a.KeyMap, a.Styles)}
	if top, ok := a.Overlays.Peek(); ok {
		parts = append(parts, top.View.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// NewKeybinds returns the calculator's key bindings. Every keypad label is
// its own shortcut; enter evaluates and backspace deletes.
func NewKeybinds() *KeybindRegistry {
	reg := NewKeybindRegistry()
	for d := '0'; d <= '9'; d++ {
		reg.BindWithDesc(string(d), pressCmd(string(d)), descDigit)
	}
	reg.BindWithDesc(".", pressCmd("."), descPoint)
	for _, op := range []string{"+", "-", "x", "*", "/"} {
		reg.BindWithDesc(op, pressCmd(op), descOp)
	}
	reg.BindWithDesc("=", pressCmd("="), descEquals)
	reg.BindWithDesc("enter", pressCmd("="), descEquals)
	reg.BindWithDesc("backspace", pressCmd(DeleteLabel), descDelete)
	reg.BindWithDesc("c", pressCmd("c"), descClear)
	reg.BindWithDesc("?", func() tea.Msg { return ToggleHelpMsg{} }, descHelp)
	reg.BindWithDesc("q", tea.Quit, descQuit)
	reg.BindWithDesc("ctrl+c", tea.Quit, descQuit)
	return reg
}

// NewAppModel creates the root application model over session.
func NewAppModel(session *calc.Session, cfg config.Config) *AppModel {
	styles := NewStyles(cfg.Theme)
	view := NewCalculatorView(session, styles)
	if cfg.Placeholder != "" {
		view.Placeholder = cfg.Placeholder
	}
	view.Flash = cfg.Flash()

	reg := NewKeybinds()
	return &AppModel{
		Calculator: view,
		KeyHandler: NewKeyHandler(reg),
		KeyMap:     NewKeyMap(reg, descEquals, descDelete, descClear, descHelp, descQuit),
		Styles:     styles,
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}
