package crafting

import (
	"context"
	"fmt"

	"itemforge/internal/domain"
	"itemforge/internal/event"
	"itemforge/internal/inventory"
	"itemforge/internal/logger"
)

// Database defines the item and recipe lookups the crafting service needs.
type Database interface {
	Get(id string) (*domain.Item, bool)
	RecipeByID(id string) (*domain.Recipe, bool)
}

// Service defines the interface for crafting operations. All methods operate
// on the inventory passed in; callers serialize access per player.
type Service interface {
	Craft(ctx context.Context, inv *inventory.Inventory, recipeID string) (*domain.Item, int, error)
	Enqueue(ctx context.Context, inv *inventory.Inventory, recipeID string) error
	Tick(ctx context.Context, inv *inventory.Inventory, elapsed float64) []string
	Cancel(ctx context.Context, inv *inventory.Inventory) error
	ClearQueue(ctx context.Context, inv *inventory.Inventory) int
	Queue() []JobInfo
}

type service struct {
	db  Database
	bus event.Bus

	queue []job
}

// NewService creates a new crafting service. The queue starts empty.
func NewService(db Database, bus event.Bus) Service {
	return &service{db: db, bus: bus}
}

// checkIngredients verifies the inventory covers every recipe cost. It
// returns the first missing cost for error reporting.
func checkIngredients(inv *inventory.Inventory, recipe *domain.Recipe) (domain.RecipeCost, bool) {
	counts := inv.Counts()
	for _, cost := range recipe.Costs() {
		if counts[cost.ItemID] < cost.Quantity {
			return cost, false
		}
	}
	return domain.RecipeCost{}, true
}

// consumeIngredients removes every recipe cost from the inventory. The
// availability check runs first, so a short removal means the two views of
// the inventory disagree and the state can no longer be trusted. There is no
// rollback; callers treat ErrConsistency as fatal for the session.
func (s *service) consumeIngredients(inv *inventory.Inventory, recipe *domain.Recipe) error {
	for _, cost := range recipe.Costs() {
		removed := inv.Remove(cost.ItemID, cost.Quantity)
		if removed != cost.Quantity {
			return fmt.Errorf("removed %d of %d %s: %w",
				removed, cost.Quantity, cost.ItemID, domain.ErrConsistency)
		}
	}
	return nil
}

// grantResult resolves the recipe result and adds it to the inventory. The
// ingredients are already spent at this point and are not refunded when the
// inventory cannot hold the result.
func (s *service) grantResult(inv *inventory.Inventory, recipe *domain.Recipe) (*domain.Item, int, error) {
	result, ok := s.db.Get(recipe.ResultItemID)
	if !ok {
		return nil, 0, fmt.Errorf("recipe %s result %s: %w",
			recipe.ID, recipe.ResultItemID, domain.ErrItemNotFound)
	}

	qty := recipe.ResultQuantity
	if qty < 1 {
		qty = 1
	}
	placed := inv.Add(result, qty)
	if placed < qty {
		return result, placed, fmt.Errorf("placed %d of %d %s: %w",
			placed, qty, result.ID, domain.ErrInventoryFull)
	}
	return result, placed, nil
}

// Craft performs an immediate craft: verify ingredients, consume them, grant
// the result. It returns the crafted item and the quantity placed.
func (s *service) Craft(ctx context.Context, inv *inventory.Inventory, recipeID string) (*domain.Item, int, error) {
	log := logger.FromContext(ctx)

	recipe, ok := s.db.RecipeByID(recipeID)
	if !ok {
		return nil, 0, fmt.Errorf("recipe %s: %w", recipeID, domain.ErrRecipeNotFound)
	}

	if missing, ok := checkIngredients(inv, recipe); !ok {
		s.publishCraftFailed(ctx, recipeID, domain.ErrMsgInsufficientIngredients)
		return nil, 0, fmt.Errorf("need %d %s: %w",
			missing.Quantity, missing.ItemID, domain.ErrInsufficientIngredients)
	}

	if err := s.consumeIngredients(inv, recipe); err != nil {
		log.Error("Inventory diverged during craft", "recipe_id", recipeID, "error", err)
		s.publishCraftFailed(ctx, recipeID, domain.ErrMsgConsistency)
		return nil, 0, err
	}

	result, placed, err := s.grantResult(inv, recipe)
	if err != nil {
		log.Warn("Craft result not fully placed", "recipe_id", recipeID, "error", err)
		s.publishCraftFailed(ctx, recipeID, err.Error())
		return result, placed, err
	}

	log.Info("Crafted item", "recipe_id", recipeID, "item_id", result.ID, "quantity", placed)
	s.publishCraftCompleted(ctx, recipeID, result.ID, placed)
	return result, placed, nil
}
