package ui

import (
	"strings"
	"testing"
	"time"

	"tuicalc/internal/calc"
	"tuicalc/internal/config"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func newTestCalculator() *CalculatorView {
	return NewCalculatorView(calc.NewSession(), NewStyles(config.Default().Theme))
}

func click(v *CalculatorView, x, y int) tea.Cmd {
	_, cmd := v.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	return cmd
}

// buttonCenter returns screen coordinates inside the button with label.
func buttonCenter(t *testing.T, v *CalculatorView, label string) (int, int) {
	t.Helper()
	for _, p := range v.Grid.Panels() {
		if p.ID == label {
			x, y, w, h := p.Bounds(v.Grid.Width(), GridRows*CellHeight)
			return x + w/2, v.displayHeight() + y + h/2
		}
	}
	t.Fatalf("no button %q", label)
	return 0, 0
}

func TestCalculatorView_MouseClicks(t *testing.T) {
	v := newTestCalculator()
	for _, label := range []string{"7", "x", "6", "="} {
		x, y := buttonCenter(t, v, label)
		click(v, x, y)
	}
	if got := v.Session.Text(); got != "42" {
		t.Errorf("clicking 7 x 6 = gave %q, want \"42\"", got)
	}
}

func TestCalculatorView_MouseIgnoresGapsAndOtherButtons(t *testing.T) {
	v := newTestCalculator()

	// Display row and the empty cell on row 1 are not buttons.
	click(v, 1, 0)
	click(v, 2*CellWidth+1, v.displayHeight()+1)
	// Right button and release events are ignored.
	x, y := buttonCenter(t, v, "7")
	v.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	v.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	if got := v.Session.Text(); got != "" {
		t.Errorf("expected no input, got %q", got)
	}
}

func TestCalculatorView_WideButtons(t *testing.T) {
	v := newTestCalculator()
	// Both halves of the double-width 0 button press 0.
	_, y := buttonCenter(t, v, "0")
	click(v, 1, y)
	click(v, CellWidth+1, y)
	if got := v.Session.Text(); got != "00" {
		t.Errorf("got %q, want \"00\"", got)
	}
	_, y = buttonCenter(t, v, "c")
	click(v, CellWidth+2, y)
	if got := v.Session.Text(); got != "" {
		t.Errorf("right half of c should clear, got %q", got)
	}
}

func TestCalculatorView_FocusAndSpace(t *testing.T) {
	v := newTestCalculator()
	v.Update(keyMsg(" "))
	if got := v.Session.Text(); got != "" {
		t.Fatalf("space without focus pressed something: %q", got)
	}

	v.Update(keyMsg("tab")) // c
	v.Update(keyMsg("tab")) // /
	v.Update(keyMsg("tab")) // 7
	if v.Focus.Current != "7" {
		t.Fatalf("focus = %q, want 7", v.Focus.Current)
	}
	v.Update(keyMsg(" "))
	v.Update(keyMsg("shift+tab")) // /
	v.Update(keyMsg(" "))
	if got := v.Session.Text(); got != "7/" {
		t.Errorf("got %q, want \"7/\"", got)
	}

	v.Update(keyMsg("esc"))
	if v.Focus.Current != "" {
		t.Errorf("esc should clear focus, got %q", v.Focus.Current)
	}
	v.Update(keyMsg("shift+tab"))
	if v.Focus.Current != "=" {
		t.Errorf("shift+tab from no focus = %q, want \"=\"", v.Focus.Current)
	}
}

func TestCalculatorView_Flash(t *testing.T) {
	v := newTestCalculator()
	v.Flash = 50 * time.Millisecond

	_, cmd := v.Update(PressMsg{Label: "*"})
	if cmd == nil {
		t.Fatal("expected flash tick")
	}
	if v.Pressed != "x" {
		t.Errorf("pressed = %q, want x", v.Pressed)
	}
	first := v.flashID

	v.Update(PressMsg{Label: "8"})
	// A stale tick must not clear the newer flash.
	v.Update(flashDoneMsg{id: first})
	if v.Pressed != "8" {
		t.Errorf("stale flash cleared %q", v.Pressed)
	}
	v.Update(flashDoneMsg{id: v.flashID})
	if v.Pressed != "" {
		t.Errorf("pressed = %q after flash done", v.Pressed)
	}
}

func TestCalculatorView_BackspaceDoesNotFlash(t *testing.T) {
	v := newTestCalculator()
	v.Flash = time.Second
	v.Session.Append('1')
	_, cmd := v.Update(PressMsg{Label: DeleteLabel})
	if cmd != nil || v.Pressed != "" {
		t.Errorf("backspace flashed: cmd=%v pressed=%q", cmd != nil, v.Pressed)
	}
	if v.Session.Text() != "" {
		t.Errorf("backspace did not delete: %q", v.Session.Text())
	}
}

func TestCalculatorView_RenderSize(t *testing.T) {
	v := newTestCalculator()
	out := v.View()
	if w := lipgloss.Width(out); w != GridCols*CellWidth {
		t.Errorf("width = %d, want %d", w, GridCols*CellWidth)
	}
	if h := lipgloss.Height(out); h != v.displayHeight()+GridRows*CellHeight {
		t.Errorf("height = %d, want %d", h, v.displayHeight()+GridRows*CellHeight)
	}
	for _, b := range DefaultButtons {
		if !strings.Contains(out, b.Label) {
			t.Errorf("label %q not rendered", b.Label)
		}
	}
}

func TestCalculatorView_LongBufferKeepsTail(t *testing.T) {
	v := newTestCalculator()
	for range 40 {
		v.Session.Append('1')
	}
	v.Session.Append('+')
	v.Session.Append('9')
	display := v.renderDisplay()
	if !strings.Contains(display, "…") || !strings.Contains(display, "1+9") {
		t.Errorf("display should show the tail with an ellipsis:\n%s", display)
	}
}

func TestGridLayout_HitTest(t *testing.T) {
	g := NewGridLayout(DefaultButtons)
	tests := []struct {
		x, y int
		want string
		ok   bool
	}{
		{0, 0, "c", true},
		{CellWidth*2 - 1, CellHeight - 1, "c", true},
		{CellWidth * 2, 0, "", false},
		{CellWidth * 3, 0, "/", true},
		{CellWidth*3 + 1, CellHeight*4 + 1, "=", true},
		{CellWidth * 4, 0, "", false},
		{0, CellHeight * 5, "", false},
	}
	for _, tt := range tests {
		got, ok := g.HitTest(tt.x, tt.y)
		if got != tt.want || ok != tt.ok {
			t.Errorf("HitTest(%d, %d) = %q, %v; want %q, %v", tt.x, tt.y, got, ok, tt.want, tt.ok)
		}
	}
}
