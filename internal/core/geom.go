// Package core provides fundamental types shared by the narration and build
// engines. It contains no external dependencies (especially no Bubble Tea) to
// keep decision logic pure and testable.
package core

import "fmt"

// Point is a tile-grid coordinate.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// String renders the point the way it is spoken ("10, 12").
func (p Point) String() string {
	return fmt.Sprintf("%d, %d", p.X, p.Y)
}

// Rect represents an axis-aligned block of tiles.
type Rect struct {
	X, Y int // Top-left tile
	W, H int // Width and height in tiles
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectFromCorners returns the inclusive rectangle spanned by two tiles.
// The result does not depend on argument order and always covers at least
// one tile in each direction.
func RectFromCorners(a, b Point) Rect {
	minX, maxX := Min(a.X, b.X), Max(a.X, b.X)
	minY, maxY := Min(a.Y, b.Y), Max(a.Y, b.Y)
	return Rect{X: minX, Y: minY, W: maxX - minX + 1, H: maxY - minY + 1}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Area returns the number of tiles covered.
func (r Rect) Area() int {
	return r.W * r.H
}

// Cell maps a row-major linear index to its tile.
func (r Rect) Cell(index int) Point {
	return Point{X: r.X + index%r.W, Y: r.Y + index/r.W}
}

// Contains returns true if the tile (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
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

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
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
