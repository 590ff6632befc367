// Package config provides YAML-based configuration for the brick breaker
// and the difficulty presets that adjust it.
package config

import (
	"errors"
	"fmt"
)

// Config holds every tunable of a game session.
type Config struct {
	Field    FieldConfig    `yaml:"field"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Ball     BallConfig     `yaml:"ball"`
	Bricks   BricksConfig   `yaml:"bricks"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Controls ControlsConfig `yaml:"controls"`
}

// FieldConfig is the size of the logical playfield in world units.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PaddleConfig defines the paddle geometry and movement.
type PaddleConfig struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	Speed        int `yaml:"speed"`         // Units per tick while a direction is held
	BottomOffset int `yaml:"bottom_offset"` // Distance of the paddle top from the field bottom
}

// BallConfig defines the ball geometry and speed.
type BallConfig struct {
	Radius int `yaml:"radius"`
	Speed  int `yaml:"speed"` // Per-axis speed in units per tick
}

// BricksConfig defines the brick grid layout.
type BricksConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	Padding   int `yaml:"padding"`
	OffsetTop int `yaml:"offset_top"`
	Points    int `yaml:"points"` // Score per destroyed brick
}

// Origin returns the top-left corner of the brick at a layout cell.
func (b BricksConfig) Origin(col, row int) (x, y int) {
	return col*(b.Width+b.Padding) + b.Padding/2, row*(b.Height+b.Padding) + b.OffsetTop
}

// Widest and tallest built-in layout. Validate requires this grid to fit.
const (
	BuiltinGridColumns = 10
	BuiltinGridRows    = 3
)

// GameplayConfig defines session rules.
type GameplayConfig struct {
	Lives         int `yaml:"lives"`
	MaxNameLength int `yaml:"max_name_length"`
}

// ControlsConfig tunes input handling.
type ControlsConfig struct {
	// HoldTicks is how long a direction key counts as held after its last
	// press. Terminals report presses and auto-repeat, never key-up.
	HoldTicks int `yaml:"hold_ticks"`
}

// Validate reports every inconsistency found in the config.
func (c Config) Validate() error {
	var errs []error

	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}
	positive("field.width", c.Field.Width)
	positive("field.height", c.Field.Height)
	positive("paddle.width", c.Paddle.Width)
	positive("paddle.height", c.Paddle.Height)
	positive("paddle.speed", c.Paddle.Speed)
	positive("ball.radius", c.Ball.Radius)
	positive("ball.speed", c.Ball.Speed)
	positive("bricks.width", c.Bricks.Width)
	positive("bricks.height", c.Bricks.Height)
	positive("gameplay.lives", c.Gameplay.Lives)
	positive("gameplay.max_name_length", c.Gameplay.MaxNameLength)

	if c.Bricks.Padding < 0 {
		errs = append(errs, fmt.Errorf("bricks.padding must not be negative, got %d", c.Bricks.Padding))
	}
	if c.Bricks.OffsetTop < 0 {
		errs = append(errs, fmt.Errorf("bricks.offset_top must not be negative, got %d", c.Bricks.OffsetTop))
	}
	if c.Bricks.Points < 0 {
		errs = append(errs, fmt.Errorf("bricks.points must not be negative, got %d", c.Bricks.Points))
	}
	if c.Controls.HoldTicks < 1 {
		errs = append(errs, fmt.Errorf("controls.hold_ticks must be at least 1, got %d", c.Controls.HoldTicks))
	}
	if c.Paddle.Width > c.Field.Width {
		errs = append(errs, fmt.Errorf("paddle.width %d exceeds field.width %d", c.Paddle.Width, c.Field.Width))
	}
	if 2*c.Ball.Radius > c.Field.Width || 2*c.Ball.Radius > c.Field.Height {
		errs = append(errs, fmt.Errorf("ball diameter %d does not fit the field", 2*c.Ball.Radius))
	}
	if c.Paddle.BottomOffset < c.Paddle.Height || c.Paddle.BottomOffset > c.Field.Height {
		errs = append(errs, fmt.Errorf("paddle.bottom_offset %d must be within [%d, %d]",
			c.Paddle.BottomOffset, c.Paddle.Height, c.Field.Height))
	}

	// Grid checks only mean something once the sizes themselves are sane
	if len(errs) == 0 {
		if err := c.CheckGrid(BuiltinGridColumns, BuiltinGridRows); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// CheckGrid reports an error unless a brick grid of cols x rows lies inside
// the side walls and above the paddle. A brick outside those bounds can never
// be hit, so its level could never be cleared.
func (c Config) CheckGrid(cols, rows int) error {
	var errs []error
	if cols > 0 {
		x, _ := c.Bricks.Origin(cols-1, 0)
		if right := x + c.Bricks.Width; right > c.Field.Width {
			errs = append(errs, fmt.Errorf("%d brick columns end at x=%d, past field.width %d",
				cols, right, c.Field.Width))
		}
	}
	if rows > 0 {
		_, y := c.Bricks.Origin(0, rows-1)
		paddleTop := c.Field.Height - c.Paddle.BottomOffset
		if bottom := y + c.Bricks.Height; bottom > paddleTop {
			errs = append(errs, fmt.Errorf("%d brick rows end at y=%d, below the paddle top %d",
				rows, bottom, paddleTop))
		}
	}
	return errors.Join(errs...)
}
