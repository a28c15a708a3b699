// Package core provides the input surface, runtime settings and the screen
// buffer shared by the flow controller and the terminal host. It has no
// dependency on Bubble Tea so flow logic stays testable without a terminal.
package core

// Rect is an area on the screen, used to lay out panels.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle at (x, y) of size w×h.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// CenterIn returns a w×h rectangle centered inside r.
func (r Rect) CenterIn(w, h int) Rect {
	return NewRect(r.X+(r.W-w)/2, r.Y+(r.H-h)/2, w, h)
}

// ClampF restricts v to [lo, hi].
func ClampF(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}
