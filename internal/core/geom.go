// Package core provides fundamental types shared by the game, the loop and the
// terminal backends. It has no dependency on any terminal library so game logic
// stays pure and testable.
package core

// Rect represents an axis-aligned box in world or cell coordinates.
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

// ClampPoint moves a w×h box anchored at (x, y) so it lies fully inside r.
// A box larger than r is pinned to r's top-left corner.
func (r Rect) ClampPoint(x, y, w, h int) (int, int) {
	x = Clamp(x, r.X, Max(r.X, r.Right()-w))
	y = Clamp(y, r.Y, Max(r.Y, r.Bottom()-h))
	return x, y
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

// FloorDiv divides rounding toward negative infinity, so world coordinates just
// above the playfield map to cell -1 instead of cell 0.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
