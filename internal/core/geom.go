// Package core holds the engine-neutral pieces shared by the game and the
// terminal platform: geometry, the character screen buffer and input frames.
// Nothing here imports Bubble Tea.
package core

// Rect is an axis-aligned bounding box in world units.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects reports whether r and other overlap by at least one unit.
// Touching edges do not count as overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Project maps a world rectangle onto a cell grid.
// worldW/worldH is the size of the world, cellsW/cellsH the size of the grid.
// Every non-empty rect covers at least one cell.
func (r Rect) Project(worldW, worldH, cellsW, cellsH int) Rect {
	if worldW <= 0 || worldH <= 0 {
		return Rect{}
	}
	x0 := r.X * cellsW / worldW
	y0 := r.Y * cellsH / worldH
	x1 := (r.Right()*cellsW + worldW - 1) / worldW
	y1 := (r.Bottom()*cellsH + worldH - 1) / worldH
	if x1 <= x0 && r.W > 0 {
		x1 = x0 + 1
	}
	if y1 <= y0 && r.H > 0 {
		y1 = y0 + 1
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
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

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
