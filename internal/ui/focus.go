package ui

// FocusManager tracks which keypad button has keyboard focus.
// Current is empty until the user first tabs into the grid.
type FocusManager struct {
	Current string   // Label of the focused button
	Order   []string // Tab order for focus rotation
}

// NewFocusManager creates a manager over a layout's focus order.
func NewFocusManager(l Layout) *FocusManager {
	return &FocusManager{Order: l.FocusOrder()}
}

// Next advances focus to the next button, wrapping at the end.
// Returns the new current focus label.
func (f *FocusManager) Next() string {
	return f.step(1)
}

// Prev moves focus to the previous button, wrapping at the start.
func (f *FocusManager) Prev() string {
	return f.step(-1)
}

// Blur removes focus from the grid.
func (f *FocusManager) Blur() {
	f.Current = ""
}

func (f *FocusManager) step(delta int) string {
	n := len(f.Order)
	if n == 0 {
		return ""
	}
	idx := f.index()
	switch {
	case idx < 0 && delta > 0:
		idx = 0
	case idx < 0:
		idx = n - 1
	default:
		idx = (idx + delta + n) % n
	}
	f.Current = f.Order[idx]
	return f.Current
}

func (f *FocusManager) index() int {
	for i, id := range f.Order {
		if id == f.Current {
			return i
		}
	}
	return -1
}
