package crafting

import (
	"context"
	"time"

	"itemforge/internal/domain"
	"itemforge/internal/event"
)

// CraftCompletedPayload describes a successful craft, immediate or queued.
type CraftCompletedPayload struct {
	RecipeID  string `json:"recipe_id"`
	ItemID    string `json:"item_id"`
	Quantity  int    `json:"quantity"`
	Timestamp int64  `json:"timestamp"`
}

// CraftFailedPayload describes a craft that could not complete.
type CraftFailedPayload struct {
	RecipeID  string `json:"recipe_id"`
	Reason    string `json:"reason"`
	Timestamp int64  `json:"timestamp"`
}

// CraftQueuedPayload describes a craft reservation joining the queue.
type CraftQueuedPayload struct {
	RecipeID  string `json:"recipe_id"`
	QueueLen  int    `json:"queue_len"`
	Timestamp int64  `json:"timestamp"`
}

// CraftCancelledPayload describes a refunded queue entry.
type CraftCancelledPayload struct {
	RecipeID  string `json:"recipe_id"`
	Timestamp int64  `json:"timestamp"`
}

func (s *service) publishCraftCompleted(ctx context.Context, recipeID, itemID string, qty int) {
	if s.bus == nil {
		return
	}
	_ = s.bus.Publish(ctx, event.Event{
		Version: event.EventSchemaVersion,
		Type:    event.Type(domain.EventTypeCraftCompleted),
		Payload: CraftCompletedPayload{
			RecipeID:  recipeID,
			ItemID:    itemID,
			Quantity:  qty,
			Timestamp: time.Now().Unix(),
		},
	})
}

func (s *service) publishCraftFailed(ctx context.Context, recipeID, reason string) {
	if s.bus == nil {
		return
	}
	_ = s.bus.Publish(ctx, event.Event{
		Version: event.EventSchemaVersion,
		Type:    event.Type(domain.EventTypeCraftFailed),
		Payload: CraftFailedPayload{
			RecipeID:  recipeID,
			Reason:    reason,
			Timestamp: time.Now().Unix(),
		},
	})
}

func (s *service) publishCraftQueued(ctx context.Context, recipeID string, queueLen int) {
	if s.bus == nil {
		return
	}
	_ = s.bus.Publish(ctx, event.Event{
		Version: event.EventSchemaVersion,
		Type:    event.Type(domain.EventTypeCraftQueued),
		Payload: CraftQueuedPayload{
			RecipeID:  recipeID,
			QueueLen:  queueLen,
			Timestamp: time.Now().Unix(),
		},
	})
}

func (s *service) publishCraftCancelled(ctx context.Context, recipeID string) {
	if s.bus == nil {
		return
	}
	_ = s.bus.Publish(ctx, event.Event{
		Version: event.EventSchemaVersion,
		Type:    event.Type(domain.EventTypeCraftCancelled),
		Payload: CraftCancelledPayload{
			RecipeID:  recipeID,
			Timestamp: time.Now().Unix(),
		},
	})
}
