// Package history persists and loads the draw-history snapshot shared by the
// fetcher and the query API.
package history

import (
	"encoding/json"
	"fmt"
	"os"

	"lottery-history/internal/models"
)

// Store is the read side of the snapshot, injected into the API server so
// tests can substitute an in-memory fixture.
type Store interface {
	Load() (*models.History, error)
}

// FileStore reads and writes the snapshot as pretty-printed JSON on disk.
// Writes overwrite the file in place; a reader racing an in-progress write
// can observe a partial file.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore for the given snapshot path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads and decodes the snapshot. A missing or corrupt file is an error.
func (s *FileStore) Load() (*models.History, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read history file: %w", err)
	}

	var hist models.History
	if err := json.Unmarshal(raw, &hist); err != nil {
		return nil, fmt.Errorf("failed to decode history file: %w", err)
	}
	return &hist, nil
}

// Save encodes the snapshot with 2-space indentation and overwrites any prior
// file. It always writes, even when both game lists are empty.
func (s *FileStore) Save(hist *models.History) error {
	raw, err := json.MarshalIndent(hist, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}

	if err := os.WriteFile(s.path, raw, 0644); err != nil {
		return fmt.Errorf("failed to write history file: %w", err)
	}
	return nil
}
