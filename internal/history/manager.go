// Package history persists input history for the tag bar and the
// command line under the user's data directory.
package history

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Manager reads and writes per-input history files in a single
// directory. Each file is TOML with an entries array.
type Manager struct {
	dir string
}

type historyFile struct {
	Entries []string `toml:"entries"`
}

// NewManager creates a manager rooted at ~/.local/share/orbit/history,
// creating the directory when missing.
func NewManager() (*Manager, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to locate home directory: %w", err)
	}
	return NewManagerAt(filepath.Join(home, ".local", "share", "orbit", "history"))
}

// NewManagerAt creates a manager rooted at dir.
func NewManagerAt(dir string) (*Manager, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}
	return &Manager{dir: dir}, nil
}

// Load returns the entries stored in filename, oldest first. A missing
// file yields an empty history rather than an error, and so does a
// file that no longer parses as TOML.
func (m *Manager) Load(filename string) ([]string, error) {
	data, err := os.ReadFile(filepath.Join(m.dir, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var hf historyFile
	if err := toml.Unmarshal(data, &hf); err != nil {
		// Corrupted history is not worth failing startup over
		return nil, nil
	}
	return hf.Entries, nil
}

// Save writes entries to filename, replacing previous contents.
func (m *Manager) Save(filename string, entries []string) error {
	data, err := toml.Marshal(historyFile{Entries: entries})
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(m.dir, filename), data, 0644)
}
