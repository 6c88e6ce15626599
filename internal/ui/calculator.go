package ui

import (
	"time"

	"tuicalc/internal/calc"
	"tuicalc/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// CalculatorView renders a calc.Session as a display field over a keypad.
// It holds no expression state of its own; the session is the source of truth.
type CalculatorView struct {
	Session     *calc.Session
	Styles      Styles
	Placeholder string
	Flash       time.Duration // how long a pressed button stays highlighted; 0 disables
	Grid        *GridLayout
	Focus       *FocusManager

	Pressed string // label currently flashing
	flashID int
}

// NewCalculatorView creates a view over session with the default keypad.
func NewCalculatorView(session *calc.Session, styles Styles) *CalculatorView {
	grid := NewGridLayout(DefaultButtons)
	return &CalculatorView{
		Session:     session,
		Styles:      styles,
		Placeholder: calc.DefaultPlaceholder,
		Grid:        grid,
		Focus:       NewFocusManager(grid),
	}
}

// Init implements View.
func (v *CalculatorView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *CalculatorView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case PressMsg:
		return v, v.press(msg.Label)
	case flashDoneMsg:
		if msg.id == v.flashID {
			v.Pressed = ""
		}
		return v, nil
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return v, nil
		}
		if label, ok := v.Grid.HitTest(msg.X, msg.Y-v.displayHeight()); ok {
			return v, v.press(label)
		}
		return v, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "right":
			v.Focus.Next()
		case "shift+tab", "left":
			v.Focus.Prev()
		case "esc":
			v.Focus.Blur()
		case " ":
			if v.Focus.Current != "" {
				return v, v.press(v.Focus.Current)
			}
		}
	}
	return v, nil
}

// press applies one button to the session. Evaluation failures leave the
// buffer unchanged and are not shown; observers on the session log them.
func (v *CalculatorView) press(label string) tea.Cmd {
	if label == DeleteLabel {
		v.Session.DeleteLast()
		return nil
	}
	in, ok := calc.InputForLabel(label)
	if !ok {
		return nil
	}
	_ = v.Session.Apply(in)
	return v.flash(label)
}

func (v *CalculatorView) flash(label string) tea.Cmd {
	if v.Flash <= 0 {
		return nil
	}
	if label == "*" {
		label = string(calc.OpMul)
	}
	v.Pressed = label
	v.flashID++
	id := v.flashID
	return tea.Tick(v.Flash, func(time.Time) tea.Msg {
		return flashDoneMsg{id: id}
	})
}

// View implements View.
func (v *CalculatorView) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, v.renderDisplay(), v.renderGrid())
}

func (v *CalculatorView) renderDisplay() string {
	st := v.Styles.Display.Width(v.Grid.Width())
	inner := v.Grid.Width() - st.GetHorizontalPadding()
	return st.Render(textutil.TruncateLeft(v.Session.Display(v.Placeholder), inner))
}

func (v *CalculatorView) displayHeight() int {
	return lipgloss.Height(v.renderDisplay())
}

func (v *CalculatorView) renderGrid() string {
	rows := make([]string, 0, GridRows)
	for r := 1; r <= GridRows; r++ {
		var cells []string
		col := 0
		for _, b := range v.Grid.Row(r) {
			if b.Col > col {
				cells = append(cells, v.blank(b.Col-col))
			}
			cells = append(cells, v.renderButton(b))
			col = b.Col + b.ColSpan
		}
		if col < GridCols {
			cells = append(cells, v.blank(GridCols-col))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (v *CalculatorView) renderButton(b ButtonSpec) string {
	st := v.buttonStyle(b.Label)
	return st.Width(b.ColSpan * CellWidth).Height(CellHeight).Render(b.Label)
}

func (v *CalculatorView) buttonStyle(label string) lipgloss.Style {
	var st lipgloss.Style
	switch {
	case label == v.Pressed:
		st = v.Styles.Pressed
	case label == "=":
		st = v.Styles.Equals
	case len(label) == 1 && calc.IsOperator(rune(label[0])):
		st = v.Styles.Operator
	default:
		st = v.Styles.Button
	}
	if label == v.Focus.Current {
		st = st.Underline(true).Foreground(v.Styles.Focused.GetForeground())
	}
	return st
}

func (v *CalculatorView) blank(cols int) string {
	return v.Styles.Blank.Width(cols * CellWidth).Height(CellHeight).Render("")
}
