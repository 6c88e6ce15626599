package ui

import "sort"

// Layout arranges panels and defines focus order.
type Layout interface {
	Panels() []Panel
	FocusOrder() []string // Tab order for focus
}

// Grid cell size in terminal cells.
const (
	CellWidth  = 7
	CellHeight = 3
	GridCols   = 4
	GridRows   = 5
)

// ButtonSpec places one button on the grid. Rows start at 1; row 0 is the display.
type ButtonSpec struct {
	Label   string
	Row     int
	Col     int
	ColSpan int
}

// DefaultButtons is the calculator keypad. Row 1 column 2 is intentionally empty.
var DefaultButtons = []ButtonSpec{
	{Label: "c", Row: 1, Col: 0, ColSpan: 2},
	{Label: "/", Row: 1, Col: 3, ColSpan: 1},
	{Label: "7", Row: 2, Col: 0, ColSpan: 1},
	{Label: "8", Row: 2, Col: 1, ColSpan: 1},
	{Label: "9", Row: 2, Col: 2, ColSpan: 1},
	{Label: "x", Row: 2, Col: 3, ColSpan: 1},
	{Label: "4", Row: 3, Col: 0, ColSpan: 1},
	{Label: "5", Row: 3, Col: 1, ColSpan: 1},
	{Label: "6", Row: 3, Col: 2, ColSpan: 1},
	{Label: "-", Row: 3, Col: 3, ColSpan: 1},
	{Label: "1", Row: 4, Col: 0, ColSpan: 1},
	{Label: "2", Row: 4, Col: 1, ColSpan: 1},
	{Label: "3", Row: 4, Col: 2, ColSpan: 1},
	{Label: "+", Row: 4, Col: 3, ColSpan: 1},
	{Label: "0", Row: 5, Col: 0, ColSpan: 2},
	{Label: ".", Row: 5, Col: 2, ColSpan: 1},
	{Label: "=", Row: 5, Col: 3, ColSpan: 1},
}

// GridLayout is the keypad: one panel per button, bounds relative to the
// top-left corner of the grid.
type GridLayout struct {
	Buttons []ButtonSpec
}

// NewGridLayout returns a layout with buttons sorted by row, then column.
func NewGridLayout(buttons []ButtonSpec) *GridLayout {
	sorted := append([]ButtonSpec(nil), buttons...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Row != sorted[j].Row {
			return sorted[i].Row < sorted[j].Row
		}
		return sorted[i].Col < sorted[j].Col
	})
	return &GridLayout{Buttons: sorted}
}

// Width is the grid width in cells.
func (g *GridLayout) Width() int { return GridCols * CellWidth }

// Panels implements Layout.
func (g *GridLayout) Panels() []Panel {
	out := make([]Panel, 0, len(g.Buttons))
	for _, b := range g.Buttons {
		out = append(out, Panel{
			ID: b.Label,
			Bounds: func(_, _ int) (x, y, w, h int) {
				return b.Col * CellWidth, (b.Row - 1) * CellHeight, b.ColSpan * CellWidth, CellHeight
			},
		})
	}
	return out
}

// FocusOrder implements Layout. Reading order, left to right.
func (g *GridLayout) FocusOrder() []string {
	out := make([]string, 0, len(g.Buttons))
	for _, b := range g.Buttons {
		out = append(out, b.Label)
	}
	return out
}

// Row returns the buttons on row r in column order.
func (g *GridLayout) Row(r int) []ButtonSpec {
	var out []ButtonSpec
	for _, b := range g.Buttons {
		if b.Row == r {
			out = append(out, b)
		}
	}
	return out
}

// HitTest returns the label of the button at grid-relative (x, y).
func (g *GridLayout) HitTest(x, y int) (string, bool) {
	for _, p := range g.Panels() {
		if p.Contains(x, y, g.Width(), GridRows*CellHeight) {
			return p.ID, true
		}
	}
	return "", false
}
