package dashboard

import (
	"encoding/json"
	"fmt"
	"os"
)

// WatchlistStore persists the watchlist id set across restarts
type WatchlistStore interface {
	// Load returns the stored ids; a missing store yields an empty set
	Load() ([]string, error)
	// Save replaces the stored ids
	Save(ids []string) error
}

// FileStore keeps the watchlist as a JSON array of ids in a single file
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() ([]string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading watchlist file: %w", err)
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("parsing watchlist file: %w", err)
	}
	return ids, nil
}

func (s *FileStore) Save(ids []string) error {
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("encoding watchlist: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing watchlist file: %w", err)
	}
	return nil
}
