package metrics

import (
	"context"

	"itemforge/internal/crafting"
	"itemforge/internal/domain"
	"itemforge/internal/event"
	"itemforge/internal/itemdb"
	"itemforge/internal/logger"
)

// EventMetricsCollector subscribes to bus events and records business metrics.
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all event types the collector tracks.
func (e *EventMetricsCollector) Register(bus event.Bus) {
	eventTypes := []event.Type{
		domain.EventTypeDatabaseLoaded,
		domain.EventTypeDatabaseLoadFailed,
		domain.EventTypeItemAdded,
		domain.EventTypeItemRemoved,
		domain.EventTypeItemMoved,
		domain.EventTypeInventorySorted,
		domain.EventTypeCraftCompleted,
		domain.EventTypeCraftFailed,
		domain.EventTypeCraftQueued,
		domain.EventTypeLootGenerated,
	}
	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.Type(domain.EventTypeDatabaseLoaded):
		DatabaseReloads.WithLabelValues(ResultSuccess).Inc()
		if p, ok := evt.Payload.(itemdb.DatabaseLoadedPayload); ok {
			DatabaseItems.Set(float64(p.Items))
		}

	case event.Type(domain.EventTypeDatabaseLoadFailed):
		DatabaseReloads.WithLabelValues(ResultFailure).Inc()

	case event.Type(domain.EventTypeItemAdded):
		InventoryOps.WithLabelValues(OpAdd).Inc()

	case event.Type(domain.EventTypeItemRemoved):
		InventoryOps.WithLabelValues(OpRemove).Inc()

	case event.Type(domain.EventTypeItemMoved):
		InventoryOps.WithLabelValues(OpMove).Inc()

	case event.Type(domain.EventTypeInventorySorted):
		InventoryOps.WithLabelValues(OpSort).Inc()

	case event.Type(domain.EventTypeCraftCompleted):
		if p, ok := evt.Payload.(crafting.CraftCompletedPayload); ok {
			ItemsCrafted.WithLabelValues(p.RecipeID, p.ItemID).Add(float64(p.Quantity))
		}

	case event.Type(domain.EventTypeCraftFailed):
		if p, ok := evt.Payload.(crafting.CraftFailedPayload); ok {
			CraftFailures.WithLabelValues(p.RecipeID).Inc()
		}

	case event.Type(domain.EventTypeCraftQueued):
		if p, ok := evt.Payload.(crafting.CraftQueuedPayload); ok {
			CraftJobsQueued.WithLabelValues(p.RecipeID).Inc()
		}

	case event.Type(domain.EventTypeLootGenerated):
		if p, ok := evt.Payload.(itemdb.LootGeneratedPayload); ok {
			LootRolls.WithLabelValues(p.TableID).Inc()
			for itemID, qty := range p.Drops {
				LootItemsDropped.WithLabelValues(p.TableID, itemID).Add(float64(qty))
			}
		}

	default:
		logger.FromContext(ctx).Debug("Unhandled metric event", "type", evt.Type)
	}
	return nil
}
