package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itemforge/internal/domain"
)

func stackable(id string, maxStack int) *domain.Item {
	return &domain.Item{ID: id, Name: id, Type: "material", MaxStack: maxStack, BaseValue: 2}
}

func weapon(id string) *domain.Item {
	return &domain.Item{ID: id, Name: id, Type: "weapon", MaxStack: 1, BaseValue: 50, MaxDurability: 100, Durability: 100}
}

func TestAdd(t *testing.T) {
	t.Run("fills existing stacks before empty slots", func(t *testing.T) {
		inv := New(3)
		wood := stackable("wood", 10)

		assert.Equal(t, 6, inv.Add(wood, 6))
		assert.Equal(t, 7, inv.Add(wood, 7))

		s0, _ := inv.Slot(0)
		s1, _ := inv.Slot(1)
		assert.Equal(t, 10, s0.Quantity)
		assert.Equal(t, 3, s1.Quantity)
	})

	t.Run("partial placement keeps what fits", func(t *testing.T) {
		inv := New(2)
		wood := stackable("wood", 10)

		assert.Equal(t, 4, inv.Add(wood, 4))
		assert.Equal(t, 8, inv.Add(wood, 8))

		s0, _ := inv.Slot(0)
		s1, _ := inv.Slot(1)
		assert.Equal(t, 10, s0.Quantity)
		assert.Equal(t, 2, s1.Quantity)
		assert.Equal(t, 0, inv.Add(wood, 20))
	})

	t.Run("unstackable items take one slot each", func(t *testing.T) {
		inv := New(3)
		sword := weapon("sword")

		assert.Equal(t, 2, inv.Add(sword, 2))
		assert.Equal(t, 1, inv.EmptySlotCount())
	})

	t.Run("slots hold copies not the catalog item", func(t *testing.T) {
		inv := New(1)
		sword := weapon("sword")
		inv.Add(sword, 1)

		s0, _ := inv.Slot(0)
		s0.Item.Durability = 10
		assert.Equal(t, 100, sword.Durability)
	})

	t.Run("rejects nil item and non-positive quantity", func(t *testing.T) {
		inv := New(1)
		assert.Equal(t, 0, inv.Add(nil, 5))
		assert.Equal(t, 0, inv.Add(stackable("wood", 10), 0))
	})
}

func TestRemove(t *testing.T) {
	t.Run("drains stacks in index order", func(t *testing.T) {
		inv := New(3)
		wood := stackable("wood", 10)
		inv.Add(wood, 25)

		assert.Equal(t, 12, inv.Remove("wood", 12))
		assert.Equal(t, 13, inv.CountOf("wood"))

		s0, _ := inv.Slot(0)
		assert.True(t, s0.Empty())
	})

	t.Run("removes at most what exists", func(t *testing.T) {
		inv := New(2)
		inv.Add(stackable("wood", 10), 5)

		assert.Equal(t, 5, inv.Remove("wood", 50))
		assert.Equal(t, 0, inv.CountOf("wood"))
	})

	t.Run("add then remove restores the starting state", func(t *testing.T) {
		inv := New(3)
		wood := stackable("wood", 10)
		inv.Add(wood, 7)
		before := inv.Counts()

		inv.Add(wood, 5)
		inv.Remove("wood", 5)
		assert.Equal(t, before, inv.Counts())
	})
}

func TestMove(t *testing.T) {
	t.Run("move onto itself is a no-op", func(t *testing.T) {
		inv := New(2)
		inv.Add(stackable("wood", 10), 5)

		require.NoError(t, inv.Move(0, 0))
		s0, _ := inv.Slot(0)
		assert.Equal(t, 5, s0.Quantity)
	})

	t.Run("relocates into an empty slot", func(t *testing.T) {
		inv := New(3)
		inv.Add(stackable("wood", 10), 5)

		require.NoError(t, inv.Move(0, 2))
		s0, _ := inv.Slot(0)
		s2, _ := inv.Slot(2)
		assert.True(t, s0.Empty())
		assert.Equal(t, 5, s2.Quantity)
	})

	t.Run("merges up to destination capacity", func(t *testing.T) {
		inv := New(2)
		wood := stackable("wood", 10)
		inv.Add(wood, 10)
		inv.Add(wood, 7) // second stack

		require.NoError(t, inv.Move(1, 0))
		s0, _ := inv.Slot(0)
		s1, _ := inv.Slot(1)
		assert.Equal(t, 10, s0.Quantity)
		assert.Equal(t, 7, s1.Quantity)

		require.NoError(t, inv.Move(0, 1)) // 10 onto 7: moves 3
		s0, _ = inv.Slot(0)
		s1, _ = inv.Slot(1)
		assert.Equal(t, 7, s0.Quantity)
		assert.Equal(t, 10, s1.Quantity)
	})

	t.Run("swaps incompatible stacks", func(t *testing.T) {
		inv := New(2)
		inv.Add(stackable("wood", 10), 5)
		inv.Add(weapon("sword"), 1)

		require.NoError(t, inv.Move(0, 1))
		s0, _ := inv.Slot(0)
		s1, _ := inv.Slot(1)
		assert.Equal(t, "sword", s0.Item.ID)
		assert.Equal(t, "wood", s1.Item.ID)
	})

	t.Run("rejects out-of-range and empty sources", func(t *testing.T) {
		inv := New(2)
		assert.ErrorIs(t, inv.Move(0, 5), domain.ErrInvalidSlot)
		assert.ErrorIs(t, inv.Move(-1, 0), domain.ErrInvalidSlot)
		assert.ErrorIs(t, inv.Move(0, 1), domain.ErrInvalidSlot) // empty source
	})
}

func TestSort(t *testing.T) {
	inv := New(6)
	inv.Add(weapon("sword"), 1)
	inv.Add(stackable("wood", 10), 5)
	inv.Add(&domain.Item{ID: "apple", Name: "apple", Type: "consumable", MaxStack: 10}, 3)

	inv.Sort()

	s0, _ := inv.Slot(0)
	s1, _ := inv.Slot(1)
	s2, _ := inv.Slot(2)
	assert.Equal(t, "apple", s0.Item.ID)  // consumable
	assert.Equal(t, "wood", s1.Item.ID)   // material
	assert.Equal(t, "sword", s2.Item.ID)  // weapon
	assert.Equal(t, 3, s0.Quantity)
}

type recordingObserver struct {
	added   int
	removed int
	moved   int
	sorted  int
}

func (o *recordingObserver) ItemAdded(item *domain.Item, qty, slot int) { o.added += qty }
func (o *recordingObserver) ItemRemoved(itemID string, qty int)         { o.removed += qty }
func (o *recordingObserver) ItemMoved(from, to int)                     { o.moved++ }
func (o *recordingObserver) Sorted()                                    { o.sorted++ }

func TestObserver(t *testing.T) {
	inv := New(3)
	obs := &recordingObserver{}
	inv.AddObserver(obs)

	wood := stackable("wood", 10)
	inv.Add(wood, 12)
	inv.Remove("wood", 4)
	require.NoError(t, inv.Move(0, 2))
	inv.Sort()

	assert.Equal(t, 12, obs.added)
	assert.Equal(t, 4, obs.removed)
	assert.Equal(t, 1, obs.moved)
	assert.Equal(t, 1, obs.sorted)
}

func TestStats(t *testing.T) {
	inv := New(5)
	inv.Add(stackable("wood", 10), 12)
	inv.Add(weapon("sword"), 1)

	st := inv.Stats()
	assert.Equal(t, 5, st.MaxSlots)
	assert.Equal(t, 3, st.UsedSlots)
	assert.Equal(t, 13, st.TotalItems)
	assert.Equal(t, 2, st.UniqueItems)
	assert.Equal(t, 12*2+50, st.TotalValue)
}
