package config

import (
	_ "embed"
)

//go:embed defaults/brickbreaker.yaml
var defaultYAML []byte

// Default returns the built-in configuration, matching the embedded YAML.
func Default() Config {
	return Config{
		Field: FieldConfig{
			Width:  850,
			Height: 600,
		},
		Paddle: PaddleConfig{
			Width:        100,
			Height:       10,
			Speed:        10,
			BottomOffset: 30,
		},
		Ball: BallConfig{
			Radius: 10,
			Speed:  5,
		},
		Bricks: BricksConfig{
			Width:     75,
			Height:    20,
			Padding:   10,
			OffsetTop: 100,
			Points:    10,
		},
		Gameplay: GameplayConfig{
			Lives:         3,
			MaxNameLength: 20,
		},
		Controls: ControlsConfig{
			HoldTicks: 8,
		},
	}
}
