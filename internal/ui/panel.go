package ui

// BoundsFunc returns the panel's position and size given the layout dimensions.
// Returns x, y, width, height.
type BoundsFunc func(width, height int) (x, y, w, h int)

// Panel is a bounded region within a layout. View is optional; keypad
// buttons are rendered by their parent view and only use Bounds for hit testing.
type Panel struct {
	ID     string
	View   View
	Bounds BoundsFunc
}

// Contains reports whether (px, py) falls inside the panel.
func (p Panel) Contains(px, py, width, height int) bool {
	if p.Bounds == nil {
		return false
	}
	x, y, w, h := p.Bounds(width, height)
	return px >= x && px < x+w && py >= y && py < y+h
}
