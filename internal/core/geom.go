// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned block of cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Span is a one-dimensional interval [Lo, Hi] on a continuous axis.
// Collision checks in the simulation are done per axis with spans.
type Span struct {
	Lo, Hi float64
}

// NewSpan creates a span; the bounds are swapped if given in reverse.
func NewSpan(lo, hi float64) Span {
	if lo > hi {
		lo, hi = hi, lo
	}
	return Span{Lo: lo, Hi: hi}
}

// Grow returns the span widened by margin on both sides.
func (s Span) Grow(margin float64) Span {
	return Span{Lo: s.Lo - margin, Hi: s.Hi + margin}
}

// ContainsHalfOpen reports whether v is in [Lo, Hi).
func (s Span) ContainsHalfOpen(v float64) bool {
	return v >= s.Lo && v < s.Hi
}

// ContainsClosed reports whether v is in [Lo, Hi].
func (s Span) ContainsClosed(v float64) bool {
	return v >= s.Lo && v <= s.Hi
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
