package vgcanvas

import "math"

// Rect is an axis-aligned rectangle (x, y, width, height).
type Rect struct {
	X, Y, W, H float64
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// IntOuter returns the smallest integer rectangle fully covering r:
// left/top rounded down, right/bottom rounded up.
func (r Rect) IntOuter() (x, y, w, h int) {
	l := int(math.Floor(r.X))
	t := int(math.Floor(r.Y))
	right := int(math.Ceil(r.X + r.W))
	bottom := int(math.Ceil(r.Y + r.H))
	return l, t, right - l, bottom - t
}
