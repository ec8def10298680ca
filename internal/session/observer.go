package session

import (
	"context"
	"time"

	"itemforge/internal/domain"
	"itemforge/internal/event"
)

// ItemAddedPayload describes items entering a player's inventory.
type ItemAddedPayload struct {
	ItemID    string `json:"item_id"`
	Quantity  int    `json:"quantity"`
	Slot      int    `json:"slot"`
	Timestamp int64  `json:"timestamp"`
}

// ItemRemovedPayload describes items leaving a player's inventory.
type ItemRemovedPayload struct {
	ItemID    string `json:"item_id"`
	Quantity  int    `json:"quantity"`
	Timestamp int64  `json:"timestamp"`
}

// ItemMovedPayload describes a slot rearrangement.
type ItemMovedPayload struct {
	From      int   `json:"from"`
	To        int   `json:"to"`
	Timestamp int64 `json:"timestamp"`
}

// InventorySortedPayload marks a full inventory re-order.
type InventorySortedPayload struct {
	Timestamp int64 `json:"timestamp"`
}

// busObserver forwards inventory mutations onto the event bus tagged with the
// owning player.
type busObserver struct {
	playerID string
	bus      event.Bus
}

func (o *busObserver) publish(eventType string, payload any) {
	_ = o.bus.Publish(context.Background(), event.Event{
		Version:  event.EventSchemaVersion,
		Type:     event.Type(eventType),
		Payload:  payload,
		Metadata: map[string]any{domain.MetadataKeyPlayerID: o.playerID},
	})
}

func (o *busObserver) ItemAdded(item *domain.Item, quantity, slot int) {
	o.publish(domain.EventTypeItemAdded, ItemAddedPayload{
		ItemID:    item.ID,
		Quantity:  quantity,
		Slot:      slot,
		Timestamp: time.Now().Unix(),
	})
}

func (o *busObserver) ItemRemoved(itemID string, quantity int) {
	o.publish(domain.EventTypeItemRemoved, ItemRemovedPayload{
		ItemID:    itemID,
		Quantity:  quantity,
		Timestamp: time.Now().Unix(),
	})
}

func (o *busObserver) ItemMoved(from, to int) {
	o.publish(domain.EventTypeItemMoved, ItemMovedPayload{
		From:      from,
		To:        to,
		Timestamp: time.Now().Unix(),
	})
}

func (o *busObserver) Sorted() {
	o.publish(domain.EventTypeInventorySorted, InventorySortedPayload{
		Timestamp: time.Now().Unix(),
	})
}
