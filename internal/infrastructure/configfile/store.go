package configfile

import (
	"fmt"
	"os"
	"path/filepath"
)

// Name is the artifact filename the bot imports at startup.
const Name = "config.py"

// Store persists the rendered configuration artifact inside the bot
// checkout. Writes replace the whole file; there is no merging with a
// previous artifact and no temp-file-then-rename step, so a crash mid-write
// can leave a truncated file.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at the checkout directory.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the artifact's location on disk.
func (s *Store) Path() string {
	return filepath.Join(s.dir, Name)
}

// Write persists the rendered artifact, creating the checkout directory if
// it does not exist yet, and returns the written path.
func (s *Store) Write(rendered string) (string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", s.dir, err)
	}
	path := s.Path()
	if err := os.WriteFile(path, []byte(rendered), 0644); err != nil {
		return "", fmt.Errorf("failed to write configuration: %w", err)
	}
	return path, nil
}

// Read returns the current artifact contents.
func (s *Store) Read() (string, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		return "", fmt.Errorf("failed to read configuration: %w", err)
	}
	return string(data), nil
}
