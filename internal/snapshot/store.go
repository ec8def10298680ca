package snapshot

import (
	"context"

	"itemforge/internal/inventory"
)

// Store persists inventory snapshots keyed by player id.
// Load returns domain.ErrSnapshotNotFound when the player has no snapshot.
type Store interface {
	Save(ctx context.Context, playerID string, snap inventory.Snapshot) error
	Load(ctx context.Context, playerID string) (inventory.Snapshot, error)
}
