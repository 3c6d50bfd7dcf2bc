// Package core provides the primitive types shared by the flappy simulation
// and the terminal platform: screen buffer, geometry, input frames and
// runtime configuration. It has no Bubble Tea dependency so game logic stays
// pure and testable.
package core

import "math"

// Rect is an axis-aligned rectangle in screen cells.
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

// Scale converts between logical simulation units and terminal cells.
// A terminal cell is roughly twice as tall as it is wide, so CellH is
// normally about 2*CellW.
type Scale struct {
	CellW float64 // Logical units per column
	CellH float64 // Logical units per row
}

// Viewport returns the logical viewport covering cols x rows cells.
func (s Scale) Viewport(cols, rows int) (width, height int) {
	return int(float64(cols) * s.CellW), int(float64(rows) * s.CellH)
}

// Col maps a logical x coordinate to a column.
func (s Scale) Col(x float64) int {
	return int(math.Floor(x / s.CellW))
}

// Row maps a logical y coordinate to a row.
func (s Scale) Row(y float64) int {
	return int(math.Floor(y / s.CellH))
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

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
