package ui

import tea "github.com/charmbracelet/bubbletea"

// Overlay is a popup view drawn below the keypad. Keys in Dismiss close it.
type Overlay struct {
	View    View
	Dismiss []string // Keys that dismiss (e.g. "esc", "?")
}

// IsDismissKey returns true if the given key string should dismiss this overlay.
func (o *Overlay) IsDismissKey(k string) bool {
	for _, d := range o.Dismiss {
		if d == k {
			return true
		}
	}
	return false
}

// OverlayStack manages a stack of overlays (topmost receives input first).
type OverlayStack struct {
	Stack []Overlay
}

// Push adds an overlay to the top of the stack.
func (s *OverlayStack) Push(o Overlay) {
	s.Stack = append(s.Stack, o)
}

// Pop removes and returns the top overlay.
func (s *OverlayStack) Pop() (Overlay, bool) {
	o, ok := s.Peek()
	if ok {
		s.Stack = s.Stack[:len(s.Stack)-1]
	}
	return o, ok
}

// Peek returns the top overlay without removing it.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Len returns the number of overlays in the stack.
func (s *OverlayStack) Len() int {
	return len(s.Stack)
}

// HandleKey offers a key to the top overlay. A dismiss key pops it and is
// consumed. Other keys are passed through so the keypad stays usable while
// the overlay is open.
func (s *OverlayStack) HandleKey(msg tea.KeyMsg) bool {
	top, ok := s.Peek()
	if !ok || !top.IsDismissKey(msg.String()) {
		return false
	}
	s.Pop()
	return true
}
