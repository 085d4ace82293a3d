// Package core provides the geometry, input and screen types shared by the
// game and its frontends. It imports no frontend packages.
package core

// Rect represents an axis-aligned bounding box used for collision detection.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAt creates a w x h rectangle whose center is (cx, cy).
func RectAt(cx, cy, w, h int) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Rectangles that only share an edge do not overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Translate returns the rectangle moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// CheckBound reports, per axis, whether obj lies inside area.
// insideX is false iff obj sticks out past the left or right edge of area;
// insideY is the same for top and bottom. Touching an edge counts as inside.
func CheckBound(area, obj Rect) (insideX, insideY bool) {
	insideX = obj.X >= area.X && obj.Right() <= area.Right()
	insideY = obj.Y >= area.Y && obj.Bottom() <= area.Bottom()
	return insideX, insideY
}

// Inside reports whether obj lies fully inside area on both axes.
func Inside(area, obj Rect) bool {
	x, y := CheckBound(area, obj)
	return x && y
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
