package levels

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLevel(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestParseYAML(t *testing.T) {
	level, order, err := ParseYAML([]byte(`
description: "Level 4: Checkerboard"
order: 4
layout:
  - "#.#."
  - ".X.x"
  - "1-0 "
`))
	require.NoError(t, err)

	assert.Equal(t, "Level 4: Checkerboard", level.Description)
	assert.Equal(t, 4, order)
	assert.Equal(t, [][]int{
		{1, 0, 1, 0},
		{0, 1, 0, 1},
		{1, 0, 0, 0},
	}, level.Layout)
	assert.Equal(t, 5, level.BrickCount())
}

func TestParseYAMLEmptyLayout(t *testing.T) {
	level, _, err := ParseYAML([]byte(`description: "Nothing here"`))
	require.NoError(t, err)
	assert.Equal(t, 0, level.BrickCount())
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing description", "layout: [\"##\"]"},
		{"bad cell", "description: x\nlayout: [\"#?#\"]"},
		{"not yaml", "description: [unclosed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseYAML([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadDirOrdering(t *testing.T) {
	root := t.TempDir()
	writeLevel(t, filepath.Join(root, "b.yaml"), "description: B\norder: 1\nlayout: [\"#\"]")
	writeLevel(t, filepath.Join(root, "a.yaml"), "description: A\norder: 2\nlayout: [\"#\"]")
	writeLevel(t, filepath.Join(root, "nested", "c.yml"), "description: C\norder: 1\nlayout: [\"#\"]")
	writeLevel(t, filepath.Join(root, "README.md"), "not a level")

	levels, err := LoadDir(root)
	require.NoError(t, err)
	require.Len(t, levels, 3)

	// Same order sorts by path: root/b.yaml < root/nested/c.yml
	assert.Equal(t, "B", levels[0].Description)
	assert.Equal(t, "C", levels[1].Description)
	assert.Equal(t, "A", levels[2].Description)
}

func TestLoadDirEmpty(t *testing.T) {
	_, err := LoadDir(t.TempDir())
	assert.True(t, errors.Is(err, ErrNoLevels))
}

func TestLoadDirBrokenFile(t *testing.T) {
	root := t.TempDir()
	writeLevel(t, filepath.Join(root, "ok.yaml"), "description: ok\nlayout: [\"#\"]")
	writeLevel(t, filepath.Join(root, "bad.yaml"), "layout: [\"#\"]")

	_, err := LoadDir(root)
	assert.Error(t, err)
}

func TestLoadEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "one.yaml")
	writeLevel(t, path, "description: One\norder: 3\nlayout: [\"##\"]")

	level, order, err := loadEntry(path)
	require.NoError(t, err)
	assert.Equal(t, 2, level.BrickCount())
	assert.Equal(t, 3, order)

	_, _, err = loadEntry(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
