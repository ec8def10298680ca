package crafting

import (
	"context"
	"fmt"

	"itemforge/internal/domain"
	"itemforge/internal/inventory"
	"itemforge/internal/logger"
)

// job is a reserved craft waiting for its timer. Ingredients are consumed at
// enqueue time, so a queued job owns its inputs until it completes or is
// refunded.
type job struct {
	recipeID  string
	remaining float64 // seconds left; only the front job's timer runs
}

// JobInfo is the externally visible queue entry.
type JobInfo struct {
	RecipeID  string  `json:"recipe_id"`
	Remaining float64 `json:"remaining_seconds"`
	Status    string  `json:"status"`
}

// Enqueue reserves a craft: ingredients are verified and consumed immediately
// and the job joins the back of the queue with its full craft time.
func (s *service) Enqueue(ctx context.Context, inv *inventory.Inventory, recipeID string) error {
	log := logger.FromContext(ctx)

	recipe, ok := s.db.RecipeByID(recipeID)
	if !ok {
		return fmt.Errorf("recipe %s: %w", recipeID, domain.ErrRecipeNotFound)
	}

	if missing, ok := checkIngredients(inv, recipe); !ok {
		return fmt.Errorf("need %d %s: %w",
			missing.Quantity, missing.ItemID, domain.ErrInsufficientIngredients)
	}
	if err := s.consumeIngredients(inv, recipe); err != nil {
		log.Error("Inventory diverged during enqueue", "recipe_id", recipeID, "error", err)
		return err
	}

	s.queue = append(s.queue, job{recipeID: recipeID, remaining: recipe.CraftTime})
	log.Info("Queued craft", "recipe_id", recipeID, "craft_time", recipe.CraftTime, "queue_len", len(s.queue))
	s.publishCraftQueued(ctx, recipeID, len(s.queue))
	return nil
}

// Tick advances the front job by elapsed seconds. When the front job
// finishes, its result is granted and the next job starts with its full
// craft time; leftover elapsed time does not carry over. Returns the recipe
// ids completed this tick.
func (s *service) Tick(ctx context.Context, inv *inventory.Inventory, elapsed float64) []string {
	if len(s.queue) == 0 || elapsed <= 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	s.queue[0].remaining -= elapsed
	var completed []string
	for len(s.queue) > 0 && s.queue[0].remaining <= 0 {
		finished := s.queue[0]
		s.queue = s.queue[1:]

		recipe, ok := s.db.RecipeByID(finished.recipeID)
		if !ok {
			log.Error("Queued recipe vanished before completion", "recipe_id", finished.recipeID)
			s.publishCraftFailed(ctx, finished.recipeID, domain.ErrMsgRecipeNotFound)
			continue
		}

		result, placed, err := s.grantResult(inv, recipe)
		if err != nil {
			log.Warn("Queued craft result not fully placed", "recipe_id", recipe.ID, "error", err)
			s.publishCraftFailed(ctx, recipe.ID, err.Error())
		} else {
			log.Info("Queued craft completed", "recipe_id", recipe.ID, "item_id", result.ID, "quantity", placed)
			s.publishCraftCompleted(ctx, recipe.ID, result.ID, placed)
		}
		completed = append(completed, finished.recipeID)
	}
	return completed
}

// Cancel removes the active job and refunds its ingredients. Refunded items
// that no longer fit are dropped with a warning.
func (s *service) Cancel(ctx context.Context, inv *inventory.Inventory) error {
	if len(s.queue) == 0 {
		return domain.ErrQueueEmpty
	}
	cancelled := s.queue[0]
	s.queue = s.queue[1:]

	s.refund(ctx, inv, cancelled.recipeID)
	logger.FromContext(ctx).Info("Cancelled craft", "recipe_id", cancelled.recipeID)
	s.publishCraftCancelled(ctx, cancelled.recipeID)
	return nil
}

// ClearQueue cancels every job, refunding each one's ingredients, and
// returns the number of jobs removed.
func (s *service) ClearQueue(ctx context.Context, inv *inventory.Inventory) int {
	cleared := len(s.queue)
	for _, j := range s.queue {
		s.refund(ctx, inv, j.recipeID)
		s.publishCraftCancelled(ctx, j.recipeID)
	}
	s.queue = nil
	if cleared > 0 {
		logger.FromContext(ctx).Info("Cleared craft queue", "jobs", cleared)
	}
	return cleared
}

// Queue reports the pending jobs front to back. The front job is active, the
// rest wait with their full craft time.
func (s *service) Queue() []JobInfo {
	out := make([]JobInfo, len(s.queue))
	for i, j := range s.queue {
		status := StatusWaiting
		if i == 0 {
			status = StatusActive
		}
		out[i] = JobInfo{RecipeID: j.recipeID, Remaining: j.remaining, Status: status}
	}
	return out
}

// refund returns a job's ingredients to the inventory. Overflow is dropped.
func (s *service) refund(ctx context.Context, inv *inventory.Inventory, recipeID string) {
	recipe, ok := s.db.RecipeByID(recipeID)
	if !ok {
		logger.FromContext(ctx).Error("Cannot refund unknown recipe", "recipe_id", recipeID)
		return
	}
	for _, cost := range recipe.Costs() {
		item, ok := s.db.Get(cost.ItemID)
		if !ok {
			logger.FromContext(ctx).Error("Cannot refund unknown ingredient",
				"recipe_id", recipeID, "item_id", cost.ItemID)
			continue
		}
		placed := inv.Add(item, cost.Quantity)
		if placed < cost.Quantity {
			logger.FromContext(ctx).Warn("Refund dropped overflow",
				"recipe_id", recipeID, "item_id", cost.ItemID, "dropped", cost.Quantity-placed)
		}
	}
}
