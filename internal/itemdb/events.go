package itemdb

import (
	"time"

	"itemforge/internal/domain"
	"itemforge/internal/event"
)

// DatabaseLoadedPayload describes a successful catalog (re)load.
type DatabaseLoadedPayload struct {
	Items      int   `json:"items"`
	Recipes    int   `json:"recipes"`
	LootTables int   `json:"loot_tables"`
	Timestamp  int64 `json:"timestamp"`
}

// DatabaseLoadFailedPayload describes a failed catalog (re)load.
type DatabaseLoadFailedPayload struct {
	Reason    string `json:"reason"`
	Timestamp int64  `json:"timestamp"`
}

// NewDatabaseLoadedEvent creates the event published after a successful load.
func NewDatabaseLoadedEvent(items, recipes, lootTables int) event.Event {
	return event.Event{
		Version: event.EventSchemaVersion,
		Type:    event.Type(domain.EventTypeDatabaseLoaded),
		Payload: DatabaseLoadedPayload{
			Items:      items,
			Recipes:    recipes,
			LootTables: lootTables,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// LootGeneratedPayload describes one resolved loot roll.
type LootGeneratedPayload struct {
	TableID   string         `json:"table_id"`
	Drops     map[string]int `json:"drops"`
	Total     int            `json:"total"`
	Timestamp int64          `json:"timestamp"`
}

// NewLootGeneratedEvent creates the event published after a loot roll.
func NewLootGeneratedEvent(tableID string, drops map[string]int, total int) event.Event {
	return event.Event{
		Version: event.EventSchemaVersion,
		Type:    event.Type(domain.EventTypeLootGenerated),
		Payload: LootGeneratedPayload{
			TableID:   tableID,
			Drops:     drops,
			Total:     total,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewDatabaseLoadFailedEvent creates the event published when a load fails.
func NewDatabaseLoadFailedEvent(reason string) event.Event {
	return event.Event{
		Version: event.EventSchemaVersion,
		Type:    event.Type(domain.EventTypeDatabaseLoadFailed),
		Payload: DatabaseLoadFailedPayload{
			Reason:    reason,
			Timestamp: time.Now().Unix(),
		},
	}
}
