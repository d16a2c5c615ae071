// Package core provides fundamental types and utilities for the snake game.
// Nothing here imports a terminal or UI package.
package core

import "fmt"

// Cell is a grid coordinate. Cells are 0-indexed from the top-left corner.
type Cell struct {
	X, Y int
}

// Add returns the cell one step away in direction d.
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.DX, Y: c.Y + d.DY}
}

// String returns the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is a unit step on the grid.
type Direction struct {
	DX, DY int
}

// The four movement directions. Y grows downwards.
var (
	Up    = Direction{DX: 0, DY: -1}
	Down  = Direction{DX: 0, DY: 1}
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
)

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Grid describes the dimensions of the play field in cells.
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether c lies inside [0, Width) x [0, Height).
func (g Grid) Contains(c Cell) bool {
	return g.Bounds().Contains(c.X, c.Y)
}

// Area returns the number of cells on the grid.
func (g Grid) Area() int {
	return g.Width * g.Height
}

// Center returns the middle cell, rounding down.
func (g Grid) Center() Cell {
	x, y := g.Bounds().Center()
	return Cell{X: x, Y: y}
}

// Bounds returns the grid as a rectangle anchored at the origin.
func (g Grid) Bounds() Rect {
	return NewRect(0, 0, g.Width, g.Height)
}

// Rect represents an axis-aligned rectangle.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}
