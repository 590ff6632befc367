package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMatchesEmbeddedYAML(t *testing.T) {
	cfg, err := Parse(defaultYAML)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg, "embedded YAML and Default() drifted apart")
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero field width", func(c *Config) { c.Field.Width = 0 }},
		{"negative ball speed", func(c *Config) { c.Ball.Speed = -1 }},
		{"paddle wider than field", func(c *Config) { c.Paddle.Width = c.Field.Width + 1 }},
		{"ball larger than field", func(c *Config) { c.Ball.Radius = c.Field.Height }},
		{"no lives", func(c *Config) { c.Gameplay.Lives = 0 }},
		{"negative padding", func(c *Config) { c.Bricks.Padding = -2 }},
		{"paddle below field", func(c *Config) { c.Paddle.BottomOffset = 1 }},
		{"hold ticks zero", func(c *Config) { c.Controls.HoldTicks = 0 }},
		{"negative offset top", func(c *Config) { c.Bricks.OffsetTop = -1 }},
		{"bricks past the right wall", func(c *Config) { c.Bricks.Width = 90 }},
		{"bricks below the paddle", func(c *Config) { c.Bricks.OffsetTop = 500 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestCheckGrid(t *testing.T) {
	cfg := Default()

	// Default layout: last column spans 770..845, last row ends at y=180
	assert.NoError(t, cfg.CheckGrid(10, 3))
	assert.NoError(t, cfg.CheckGrid(0, 0))
	assert.NoError(t, cfg.CheckGrid(10, 16), "last row ends exactly at the paddle top")

	err := cfg.CheckGrid(11, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "x=930")

	err = cfg.CheckGrid(1, 17)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "below the paddle top 570")
}

func TestBricksOrigin(t *testing.T) {
	b := Default().Bricks
	x, y := b.Origin(0, 0)
	assert.Equal(t, 5, x)
	assert.Equal(t, 100, y)

	x, y = b.Origin(9, 2)
	assert.Equal(t, 770, x)
	assert.Equal(t, 160, y)
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("gameplay:\n  lives: 7\n"))
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Gameplay.Lives)
	assert.Equal(t, Default().Paddle, cfg.Paddle, "unnamed sections keep defaults")
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse([]byte("field: [not, a, map"))
	assert.Error(t, err)
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ball:\n  speed: 9\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Ball.Speed)
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded default
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	// Local file is picked up
	require.NoError(t, os.MkdirAll(filepath.Join(work, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(work, LocalPath), []byte("gameplay:\n  lives: 4\n"), 0o600))
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Gameplay.Lives)

	// User file wins over local file
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".brickbreaker"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".brickbreaker", "config.yaml"), []byte("gameplay:\n  lives: 6\n"), 0o600))
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Gameplay.Lives)

	// An invalid user file is skipped
	require.NoError(t, os.WriteFile(filepath.Join(home, ".brickbreaker", "config.yaml"), []byte("gameplay:\n  lives: 0\n"), 0o600))
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Gameplay.Lives)
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Bricks.Points = 25

	data, err := Marshal(cfg)
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}

func TestDifficultyPresets(t *testing.T) {
	p, err := ParseDifficulty("")
	require.NoError(t, err)
	assert.Equal(t, DifficultyPreset(""), p)

	_, err = ParseDifficulty("nightmare")
	assert.Error(t, err)

	easy := Default()
	ApplyPreset(&easy, DifficultyEasy)
	assert.Greater(t, easy.Gameplay.Lives, Default().Gameplay.Lives)
	assert.Greater(t, easy.Paddle.Width, Default().Paddle.Width)
	assert.NoError(t, easy.Validate())

	hard := Default()
	ApplyPreset(&hard, DifficultyHard)
	assert.Less(t, hard.Gameplay.Lives, Default().Gameplay.Lives)
	assert.Greater(t, hard.Ball.Speed, Default().Ball.Speed)
	assert.NoError(t, hard.Validate())

	normal := Default()
	ApplyPreset(&normal, DifficultyNormal)
	assert.Equal(t, Default(), normal)
}
