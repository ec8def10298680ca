package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itemforge/internal/domain"
	"itemforge/internal/inventory"
)

func TestFileStore(t *testing.T) {
	ctx := context.Background()

	sample := inventory.Snapshot{
		MaxSlots: 3,
		Slots: []inventory.SlotSnapshot{
			{ItemID: "wood", Quantity: 5},
			{},
			{ItemID: "sword", Quantity: 1, ItemData: map[string]any{"durability": 60}},
		},
	}

	t.Run("save then load round trips", func(t *testing.T) {
		store, err := NewFileStore(t.TempDir())
		require.NoError(t, err)

		require.NoError(t, store.Save(ctx, "player-1", sample))

		loaded, err := store.Load(ctx, "player-1")
		require.NoError(t, err)
		assert.Equal(t, 3, loaded.MaxSlots)
		assert.Equal(t, "wood", loaded.Slots[0].ItemID)
		assert.Empty(t, loaded.Slots[1].ItemID)
		// JSON numbers decode as float64.
		assert.Equal(t, float64(60), loaded.Slots[2].ItemData["durability"])
	})

	t.Run("missing snapshot", func(t *testing.T) {
		store, err := NewFileStore(t.TempDir())
		require.NoError(t, err)

		_, err = store.Load(ctx, "nobody")
		assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
	})

	t.Run("save overwrites", func(t *testing.T) {
		store, err := NewFileStore(t.TempDir())
		require.NoError(t, err)

		require.NoError(t, store.Save(ctx, "player-1", sample))
		smaller := inventory.Snapshot{MaxSlots: 1, Slots: []inventory.SlotSnapshot{{}}}
		require.NoError(t, store.Save(ctx, "player-1", smaller))

		loaded, err := store.Load(ctx, "player-1")
		require.NoError(t, err)
		assert.Equal(t, 1, loaded.MaxSlots)
	})

	t.Run("player ids cannot escape the store directory", func(t *testing.T) {
		dir := t.TempDir()
		store, err := NewFileStore(dir)
		require.NoError(t, err)

		require.NoError(t, store.Save(ctx, "../escape", sample))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, filepath.Base(entries[0].Name()), entries[0].Name())

		loaded, err := store.Load(ctx, "../escape")
		require.NoError(t, err)
		assert.Equal(t, 3, loaded.MaxSlots)
	})
}
