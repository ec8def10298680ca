package crafting

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itemforge/internal/domain"
	"itemforge/internal/event"
	"itemforge/internal/inventory"
)

// fakeDB is a hand-rolled catalog for crafting tests.
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
			"stone": {ID: "stone", Name: "Stone", Type: "material", MaxStack: 99},
			"sword": {ID: "sword", Name: "Sword", Type: "weapon", MaxStack: 1, MaxDurability: 100, Durability: 100},
			"plank": {ID: "plank", Name: "Plank", Type: "material", MaxStack: 99},
		},
		recipes: map[string]*domain.Recipe{
			"sword_craft": {
				ID: "sword_craft", ResultItemID: "sword", ResultQuantity: 1,
				IngredientIDs: []string{"wood", "stone"}, Quantities: []int{2, 3},
				CraftTime: 5,
			},
			"plank_craft": {
				ID: "plank_craft", ResultItemID: "plank", ResultQuantity: 4,
				IngredientIDs: []string{"wood"}, Quantities: []int{1},
				CraftTime: 2,
			},
			"phantom_result": {
				ID: "phantom_result", ResultItemID: "vanished", ResultQuantity: 1,
				IngredientIDs: []string{"wood"}, Quantities: []int{1},
			},
		},
	}
}

func seededInventory(db *fakeDB, counts map[string]int) *inventory.Inventory {
	inv := inventory.New(10)
	for id, qty := range counts {
		item := db.items[id]
		inv.Add(item, qty)
	}
	return inv
}

func TestCraft(t *testing.T) {
	ctx := context.Background()

	t.Run("consumes ingredients and grants the result", func(t *testing.T) {
		db := newFakeDB()
		svc := NewService(db, nil)
		inv := seededInventory(db, map[string]int{"wood": 5, "stone": 5})

		item, qty, err := svc.Craft(ctx, inv, "sword_craft")
		require.NoError(t, err)
		assert.Equal(t, "sword", item.ID)
		assert.Equal(t, 1, qty)
		assert.Equal(t, 3, inv.CountOf("wood"))
		assert.Equal(t, 2, inv.CountOf("stone"))
		assert.Equal(t, 1, inv.CountOf("sword"))
	})

	t.Run("unknown recipe", func(t *testing.T) {
		db := newFakeDB()
		svc := NewService(db, nil)
		inv := seededInventory(db, map[string]int{"wood": 5})

		_, _, err := svc.Craft(ctx, inv, "absent")
		assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	})

	t.Run("insufficient ingredients leave the inventory unchanged", func(t *testing.T) {
		db := newFakeDB()
		svc := NewService(db, nil)
		inv := seededInventory(db, map[string]int{"wood": 2, "stone": 2})

		_, _, err := svc.Craft(ctx, inv, "sword_craft")
		assert.ErrorIs(t, err, domain.ErrInsufficientIngredients)
		assert.Equal(t, 2, inv.CountOf("wood"))
		assert.Equal(t, 2, inv.CountOf("stone"))
	})

	t.Run("result that no longer resolves", func(t *testing.T) {
		db := newFakeDB()
		svc := NewService(db, nil)
		inv := seededInventory(db, map[string]int{"wood": 5})

		_, _, err := svc.Craft(ctx, inv, "phantom_result")
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
		// Ingredients stay spent.
		assert.Equal(t, 4, inv.CountOf("wood"))
	})

	t.Run("publishes completed event", func(t *testing.T) {
		db := newFakeDB()
		bus := event.NewMemoryBus()
		var got event.Event
		bus.Subscribe(event.Type(domain.EventTypeCraftCompleted), func(ctx context.Context, e event.Event) error {
			got = e
			return nil
		})

		svc := NewService(db, bus)
		inv := seededInventory(db, map[string]int{"wood": 5, "stone": 5})
		_, _, err := svc.Craft(ctx, inv, "sword_craft")
		require.NoError(t, err)

		payload, ok := got.Payload.(CraftCompletedPayload)
		require.True(t, ok)
		assert.Equal(t, "sword_craft", payload.RecipeID)
		assert.Equal(t, "sword", payload.ItemID)
	})
}

func TestCraftInventoryFull(t *testing.T) {
	db := newFakeDB()
	svc := NewService(db, nil)

	// Two slots: wood stack plus a sword blocking the free slot. Crafting
	// consumes one wood (stack stays), then the 4 planks need an empty slot.
	inv := inventory.New(2)
	inv.Add(db.items["wood"], 5)
	inv.Add(db.items["sword"], 1)

	_, placed, err := svc.Craft(context.Background(), inv, "plank_craft")
	assert.ErrorIs(t, err, domain.ErrInventoryFull)
	assert.Equal(t, 0, placed)

	// No refund: the wood stays spent.
	assert.Equal(t, 4, inv.CountOf("wood"))
}
