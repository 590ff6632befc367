// Package game implements the brick breaker: level catalog, entities, the
// scene state machine and the fixed-tick step and render functions.
package game

import (
	"fmt"

	"github.com/vovakirdan/brick-breaker/internal/config"
)

// Level is an immutable level definition.
type Level struct {
	Description string
	Layout      [][]int // Row-major; 1 = brick present
}

// BrickCount returns the number of bricks the layout produces.
func (l Level) BrickCount() int {
	n := 0
	for _, row := range l.Layout {
		for _, cell := range row {
			if cell != 0 {
				n++
			}
		}
	}
	return n
}

// Extent returns the number of columns and rows spanned by bricks, ignoring
// trailing empty cells.
func (l Level) Extent() (cols, rows int) {
	for row, cells := range l.Layout {
		for col, cell := range cells {
			if cell != 0 {
				cols = max(cols, col+1)
				rows = max(rows, row+1)
			}
		}
	}
	return cols, rows
}

// ValidateLevels checks that every brick of every level can be reached by
// the ball under cfg.
func ValidateLevels(levels []Level, cfg config.Config) error {
	for i, level := range levels {
		cols, rows := level.Extent()
		if err := cfg.CheckGrid(cols, rows); err != nil {
			return fmt.Errorf("game: level %d %q does not fit the field: %w", i+1, level.Description, err)
		}
	}
	return nil
}

var builtinLevels = []Level{
	{
		Description: "Level 1: Easy start",
		Layout: [][]int{
			{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
			{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
			{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		},
	},
	{
		Description: "Level 2: Alternating pattern",
		Layout: [][]int{
			{1, 0, 1, 0, 1, 0, 1, 0, 1, 0},
			{0, 1, 0, 1, 0, 1, 0, 1, 0, 1},
			{1, 0, 1, 0, 1, 0, 1, 0, 1, 0},
		},
	},
	{
		Description: "Level 3: Central gap",
		Layout: [][]int{
			{1, 1, 1, 1, 0, 0, 1, 1, 1, 1},
			{1, 1, 0, 0, 1, 1, 0, 0, 1, 1},
			{0, 0, 1, 1, 0, 0, 1, 1, 0, 0},
		},
	},
}

// BuiltinLevels returns the level catalog in play order.
// The returned slice is a copy; the layouts themselves must not be modified.
func BuiltinLevels() []Level {
	levels := make([]Level, len(builtinLevels))
	copy(levels, builtinLevels)
	return levels
}

// LevelCount returns the number of built-in levels.
func LevelCount() int {
	return len(builtinLevels)
}

// BuildBricks lays out one brick per set cell of the level.
func BuildBricks(level Level, cfg config.BricksConfig) []Brick {
	bricks := make([]Brick, 0, level.BrickCount())
	for row, cells := range level.Layout {
		for col, cell := range cells {
			if cell == 0 {
				continue
			}
			x, y := cfg.Origin(col, row)
			bricks = append(bricks, Brick{
				X:   x,
				Y:   y,
				W:   cfg.Width,
				H:   cfg.Height,
				Row: row,
			})
		}
	}
	return bricks
}
