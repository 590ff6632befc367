package config

import "fmt"

// DifficultyPreset is a named adjustment applied on top of a config.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a flag value into a preset.
// The empty string means "no preset" and is not an error.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal and the empty preset leave the config untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 140
		cfg.Ball.Speed = 4
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 70
		cfg.Ball.Speed = 7
	}
	if cfg.Paddle.Width > cfg.Field.Width {
		cfg.Paddle.Width = cfg.Field.Width
	}
}
