package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// NameStore keeps the last entered player name.
type NameStore interface {
	Load() (string, error)
	Save(name string) error
}

// NameFile stores the player name as the whole content of a text file.
type NameFile struct {
	path string
}

// NewNameFile returns a NameFile at path; a leading ~ is expanded.
func NewNameFile(path string) (*NameFile, error) {
	expanded, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}
	return &NameFile{path: expanded}, nil
}

// Path returns the resolved file path.
func (f *NameFile) Path() string {
	return f.path
}

// Load returns the saved name. A missing file yields "".
func (f *NameFile) Load() (string, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("storage: cannot read name file: %w", err)
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

// Save overwrites the file with name.
func (f *NameFile) Save(name string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory for name file: %w", err)
	}
	if err := os.WriteFile(f.path, []byte(name), 0o644); err != nil { //#nosec G306 -- not a secret
		return fmt.Errorf("storage: cannot write name file: %w", err)
	}
	return nil
}

// MemoryName keeps the name in memory only.
type MemoryName struct {
	mu   sync.Mutex
	name string
}

// NewMemoryName returns a MemoryName preset to name.
func NewMemoryName(name string) *MemoryName {
	return &MemoryName{name: name}
}

// Load returns the current name.
func (m *MemoryName) Load() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.name, nil
}

// Save replaces the current name.
func (m *MemoryName) Save(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.name = name
	return nil
}
