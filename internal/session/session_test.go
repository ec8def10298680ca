package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itemforge/internal/domain"
	"itemforge/internal/event"
	"itemforge/internal/inventory"
)

type fakeDB struct {
	items   map[string]*domain.Item
	recipes map[string]*domain.Recipe
}

func (f *fakeDB) Get(id string) (*domain.Item, bool) {
	item, ok := f.items[id]
	return item, ok
}

func (f *fakeDB) RecipeByID(id string) (*domain.Recipe, bool) {
	r, ok := f.recipes[id]
	return r, ok
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		items: map[string]*domain.Item{
			"wood":  {ID: "wood", Name: "Wood", Type: "material", MaxStack: 99},
			"plank": {ID: "plank", Name: "Plank", Type: "material", MaxStack: 99},
		},
		recipes: map[string]*domain.Recipe{
			"plank_craft": {
				ID: "plank_craft", ResultItemID: "plank", ResultQuantity: 4,
				IngredientIDs: []string{"wood"}, Quantities: []int{1},
				CraftTime: 2,
			},
		},
	}
}

// memStore is an in-memory snapshot store for tests.
type memStore struct {
	mu    sync.Mutex
	snaps map[string]inventory.Snapshot
}

func newMemStore() *memStore {
	return &memStore{snaps: make(map[string]inventory.Snapshot)}
}

func (s *memStore) Save(ctx context.Context, playerID string, snap inventory.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snaps[playerID] = snap
	return nil
}

func (s *memStore) Load(ctx context.Context, playerID string) (inventory.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, ok := s.snaps[playerID]
	if !ok {
		return inventory.Snapshot{}, domain.ErrSnapshotNotFound
	}
	return snap, nil
}

func TestWithSession(t *testing.T) {
	ctx := context.Background()
	db := newFakeDB()

	t.Run("creates a session on first use", func(t *testing.T) {
		m := NewManager(db, nil, nil, 12)

		err := m.WithSession(ctx, "p1", func(s *Session) error {
			assert.Equal(t, "p1", s.PlayerID)
			assert.Equal(t, 12, s.Inventory.MaxSlots())
			assert.NotNil(t, s.Crafting)
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("same player gets the same session", func(t *testing.T) {
		m := NewManager(db, nil, nil, 10)

		require.NoError(t, m.WithSession(ctx, "p1", func(s *Session) error {
			s.Inventory.Add(db.items["wood"], 3)
			return nil
		}))
		require.NoError(t, m.WithSession(ctx, "p1", func(s *Session) error {
			assert.Equal(t, 3, s.Inventory.CountOf("wood"))
			return nil
		}))
	})

	t.Run("players are isolated", func(t *testing.T) {
		m := NewManager(db, nil, nil, 10)

		require.NoError(t, m.WithSession(ctx, "p1", func(s *Session) error {
			s.Inventory.Add(db.items["wood"], 3)
			return nil
		}))
		require.NoError(t, m.WithSession(ctx, "p2", func(s *Session) error {
			assert.Zero(t, s.Inventory.CountOf("wood"))
			return nil
		}))
	})

	t.Run("empty player id", func(t *testing.T) {
		m := NewManager(db, nil, nil, 10)
		err := m.WithSession(ctx, "", func(s *Session) error { return nil })
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("serializes concurrent access per player", func(t *testing.T) {
		m := NewManager(db, nil, nil, 10)
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = m.WithSession(ctx, "p1", func(s *Session) error {
					s.Inventory.Add(db.items["wood"], 1)
					return nil
				})
			}()
		}
		wg.Wait()

		require.NoError(t, m.WithSession(ctx, "p1", func(s *Session) error {
			assert.Equal(t, 20, s.Inventory.CountOf("wood"))
			return nil
		}))
	})
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	db := newFakeDB()

	t.Run("round trips through the store", func(t *testing.T) {
		store := newMemStore()
		m := NewManager(db, nil, store, 10)

		require.NoError(t, m.WithSession(ctx, "p1", func(s *Session) error {
			s.Inventory.Add(db.items["wood"], 7)
			return nil
		}))
		require.NoError(t, m.Save(ctx, "p1"))

		// Mutate after saving, then load the snapshot back.
		require.NoError(t, m.WithSession(ctx, "p1", func(s *Session) error {
			s.Inventory.Remove("wood", 5)
			return nil
		}))
		require.NoError(t, m.Load(ctx, "p1"))

		require.NoError(t, m.WithSession(ctx, "p1", func(s *Session) error {
			assert.Equal(t, 7, s.Inventory.CountOf("wood"))
			return nil
		}))
	})

	t.Run("load without a saved snapshot", func(t *testing.T) {
		m := NewManager(db, nil, newMemStore(), 10)
		assert.ErrorIs(t, m.Load(ctx, "p1"), domain.ErrSnapshotNotFound)
	})

	t.Run("nil store", func(t *testing.T) {
		m := NewManager(db, nil, nil, 10)
		assert.Error(t, m.Save(ctx, "p1"))
		assert.Error(t, m.Load(ctx, "p1"))
	})

	t.Run("loaded inventory keeps publishing events", func(t *testing.T) {
		store := newMemStore()
		bus := event.NewMemoryBus()
		m := NewManager(db, bus, store, 10)

		require.NoError(t, m.Save(ctx, "p1"))
		require.NoError(t, m.Load(ctx, "p1"))

		var got event.Event
		bus.Subscribe(event.Type(domain.EventTypeItemAdded), func(ctx context.Context, e event.Event) error {
			got = e
			return nil
		})
		require.NoError(t, m.WithSession(ctx, "p1", func(s *Session) error {
			s.Inventory.Add(db.items["wood"], 1)
			return nil
		}))
		assert.Equal(t, "p1", got.GetMetadataValue(domain.MetadataKeyPlayerID))
	})
}

func TestObserverEvents(t *testing.T) {
	ctx := context.Background()
	db := newFakeDB()
	bus := event.NewMemoryBus()
	m := NewManager(db, bus, nil, 10)

	var added []ItemAddedPayload
	var removed []ItemRemovedPayload
	bus.Subscribe(event.Type(domain.EventTypeItemAdded), func(ctx context.Context, e event.Event) error {
		added = append(added, e.Payload.(ItemAddedPayload))
		return nil
	})
	bus.Subscribe(event.Type(domain.EventTypeItemRemoved), func(ctx context.Context, e event.Event) error {
		removed = append(removed, e.Payload.(ItemRemovedPayload))
		return nil
	})

	require.NoError(t, m.WithSession(ctx, "p1", func(s *Session) error {
		s.Inventory.Add(db.items["wood"], 4)
		s.Inventory.Remove("wood", 2)
		return nil
	}))

	require.Len(t, added, 1)
	assert.Equal(t, "wood", added[0].ItemID)
	assert.Equal(t, 4, added[0].Quantity)
	require.Len(t, removed, 1)
	assert.Equal(t, 2, removed[0].Quantity)
}

func TestTickAll(t *testing.T) {
	ctx := context.Background()
	db := newFakeDB()
	m := NewManager(db, nil, nil, 10)

	require.NoError(t, m.WithSession(ctx, "p1", func(s *Session) error {
		s.Inventory.Add(db.items["wood"], 2)
		return s.Crafting.Enqueue(ctx, s.Inventory, "plank_craft")
	}))

	m.tickAll(ctx, 1)
	require.NoError(t, m.WithSession(ctx, "p1", func(s *Session) error {
		assert.Zero(t, s.Inventory.CountOf("plank"))
		return nil
	}))

	m.tickAll(ctx, 1)
	require.NoError(t, m.WithSession(ctx, "p1", func(s *Session) error {
		assert.Equal(t, 4, s.Inventory.CountOf("plank"))
		assert.Empty(t, s.Crafting.Queue())
		return nil
	}))
}

func TestRunTickerStops(t *testing.T) {
	m := NewManager(newFakeDB(), nil, nil, 10)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.RunTicker(ctx, time.Millisecond)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("ticker did not stop after cancellation")
	}
}
