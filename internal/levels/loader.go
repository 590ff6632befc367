// Package levels loads level packs from YAML files. A pack replaces the
// built-in level catalog of the game.
package levels

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/brick-breaker/internal/game"
)

// ErrNoLevels is returned when a directory holds no level files.
var ErrNoLevels = errors.New("levels: no level files found")

// YAMLLevel represents the YAML structure for a level file.
//
//	description: "Level 4: Checkerboard"
//	order: 4
//	layout:
//	  - "#.#.#.#.#."
//	  - ".#.#.#.#.#"
type YAMLLevel struct {
	Description string   `yaml:"description"`
	Order       int      `yaml:"order,omitempty"`
	Layout      []string `yaml:"layout"`
}

// entry is a parsed level with its sort keys.
type entry struct {
	level game.Level
	order int
	path  string
}

// ParseYAML parses one level file. In layout rows '#', '1', 'x' and 'X'
// place a brick; '.', '0', '-' and ' ' leave the cell empty.
func ParseYAML(data []byte) (game.Level, int, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return game.Level{}, 0, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if strings.TrimSpace(yl.Description) == "" {
		return game.Level{}, 0, errors.New("description is required")
	}

	layout := make([][]int, len(yl.Layout))
	for row, line := range yl.Layout {
		cells := make([]int, 0, len(line))
		for col, r := range line {
			switch r {
			case '#', '1', 'x', 'X':
				cells = append(cells, 1)
			case '.', '0', '-', ' ':
				cells = append(cells, 0)
			default:
				return game.Level{}, 0, fmt.Errorf("row %d col %d: unexpected %q", row+1, col+1, r)
			}
		}
		layout[row] = cells
	}

	return game.Level{Description: yl.Description, Layout: layout}, yl.Order, nil
}

// loadEntry reads and parses one level file.
func loadEntry(path string) (game.Level, int, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- user supplied level directory
	if err != nil {
		return game.Level{}, 0, fmt.Errorf("levels: reading file %s: %w", path, err)
	}
	level, order, err := ParseYAML(data)
	if err != nil {
		return game.Level{}, 0, fmt.Errorf("levels: parsing file %s: %w", path, err)
	}
	return level, order, nil
}

// LoadDir recursively loads every .yaml/.yml file under root. Levels are
// played by ascending order, then by path. Any broken file fails the load.
func LoadDir(root string) ([]game.Level, error) {
	var entries []entry

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(filepath.Ext(path)) {
			return nil
		}

		level, order, err := loadEntry(path)
		if err != nil {
			return err
		}
		entries = append(entries, entry{level: level, order: order, path: path})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walking directory %s: %w", root, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoLevels, root)
	}

	slices.SortFunc(entries, func(a, b entry) int {
		return cmp.Or(cmp.Compare(a.order, b.order), strings.Compare(a.path, b.path))
	})

	levels := make([]game.Level, len(entries))
	for i, e := range entries {
		levels[i] = e.level
	}
	return levels, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
