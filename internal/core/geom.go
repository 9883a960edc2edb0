// Package core provides the drawing primitives shared by the game and its frontends.
// It has no dependency on any terminal or window library so game logic stays
// testable without a live display.
package core

// RectF is an axis-aligned box in logical surface units.
type RectF struct {
	X, Y float64
	W, H float64
}

// NewRectF creates a logical rectangle.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// ContainsOpen reports whether (x, y) lies strictly inside the rectangle.
// Points on an edge are outside.
func (r RectF) ContainsOpen(x, y float64) bool {
	return x > r.X && x < r.Right() && y > r.Y && y < r.Bottom()
}

// Overlap returns the width and height of the intersection with other.
// Both are zero when the rectangles do not overlap.
func (r RectF) Overlap(other RectF) (w, h float64) {
	w = min(r.Right(), other.Right()) - max(r.X, other.X)
	h = min(r.Bottom(), other.Bottom()) - max(r.Y, other.Y)
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	return w, h
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
