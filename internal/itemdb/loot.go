package itemdb

import (
	"context"

	"itemforge/internal/domain"
	"itemforge/internal/logger"
	"itemforge/internal/rng"
)

// GenerateLoot rolls every entry of a table independently against its drop
// chance and, on success, draws a quantity uniformly from [min,max]. A
// quantity-N draw appends N separate references to the resolved item; callers
// that want stacks aggregate themselves. Unknown tables and dangling item ids
// degrade to nothing with a warning.
func (db *Database) GenerateLoot(ctx context.Context, tableID string, src rng.Source) []*domain.Item {
	log := logger.FromContext(ctx)

	entries, ok := db.lootTables[tableID]
	if !ok {
		log.Warn("Unknown loot table", "table_id", tableID)
		return nil
	}

	var drops []*domain.Item
	for _, entry := range entries {
		if src.Float64() > entry.Chance {
			continue
		}

		qty := entry.MinQuantity
		if entry.MaxQuantity > entry.MinQuantity {
			qty = src.IntBetween(entry.MinQuantity, entry.MaxQuantity)
		}

		item, ok := db.items[entry.ItemID]
		if !ok {
			log.Warn("Loot entry references unknown item",
				"table_id", tableID, "item_id", entry.ItemID)
			continue
		}
		for i := 0; i < qty; i++ {
			drops = append(drops, item)
		}
	}

	db.publishLootGenerated(ctx, tableID, drops)
	return drops
}

func (db *Database) publishLootGenerated(ctx context.Context, tableID string, drops []*domain.Item) {
	if db.bus == nil {
		return
	}
	counts := make(map[string]int, len(drops))
	for _, item := range drops {
		counts[item.ID]++
	}
	evt := NewLootGeneratedEvent(tableID, counts, len(drops))
	if err := db.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn("Loot event publish failed", "error", err)
	}
}
