// Package core provides fundamental types and utilities shared by the game
// and its frontends. It contains no external dependencies (especially no
// Bubble Tea or Ebiten) to keep game logic pure and testable.
package core

// Rect represents an axis-aligned rectangle in world coordinates.
// Entities own a Rect and expose their geometry through it.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Valid reports whether the rectangle has a positive area.
func (r Rect) Valid() bool {
	return r.W > 0 && r.H > 0
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 {
	return r.X
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 {
	return r.Y
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// CenterX returns the x-coordinate of the center point.
func (r Rect) CenterX() float64 {
	return r.X + r.W/2
}

// CenterY returns the y-coordinate of the center point.
func (r Rect) CenterY() float64 {
	return r.Y + r.H/2
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.CenterX(), r.CenterY()
}

// Intersects returns true if this rectangle overlaps with another.
// Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Move translates the rectangle by (dx, dy).
func (r *Rect) Move(dx, dy float64) {
	r.X += dx
	r.Y += dy
}

// SetLeft moves the rectangle so its left edge is at x.
func (r *Rect) SetLeft(x float64) {
	r.X = x
}

// SetRight moves the rectangle so its right edge is at x.
func (r *Rect) SetRight(x float64) {
	r.X = x - r.W
}

// SetTop moves the rectangle so its top edge is at y.
func (r *Rect) SetTop(y float64) {
	r.Y = y
}

// SetBottom moves the rectangle so its bottom edge is at y.
func (r *Rect) SetBottom(y float64) {
	r.Y = y - r.H
}

// SetCenter moves the rectangle so its center is at (cx, cy).
func (r *Rect) SetCenter(cx, cy float64) {
	r.X = cx - r.W/2
	r.Y = cy - r.H/2
}

// Resize changes the rectangle's size while keeping its center fixed.
func (r *Rect) Resize(w, h float64) {
	cx, cy := r.Center()
	r.W = w
	r.H = h
	r.SetCenter(cx, cy)
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
