package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"itemforge/internal/domain"
	"itemforge/internal/inventory"
)

// FileStore keeps one JSON snapshot file per player under a directory.
// Suitable for development and single-node deployments.
type FileStore struct {
	dir string
}

// NewFileStore creates the directory if needed and returns a store over it.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create snapshot dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Save writes the snapshot atomically via a temp file rename.
func (s *FileStore) Save(ctx context.Context, playerID string, snap inventory.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	path := s.path(playerID)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to finalize snapshot: %w", err)
	}
	return nil
}

// Load reads the player's snapshot file.
func (s *FileStore) Load(ctx context.Context, playerID string) (inventory.Snapshot, error) {
	data, err := os.ReadFile(s.path(playerID))
	if err != nil {
		if os.IsNotExist(err) {
			return inventory.Snapshot{}, fmt.Errorf("player %s: %w", playerID, domain.ErrSnapshotNotFound)
		}
		return inventory.Snapshot{}, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap inventory.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return inventory.Snapshot{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return snap, nil
}

// path maps a player id to a file name, replacing separators so ids cannot
// escape the store directory.
func (s *FileStore) path(playerID string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '.', ':':
			return '_'
		}
		return r
	}, playerID)
	return filepath.Join(s.dir, name+".json")
}
