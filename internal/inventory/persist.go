package inventory

import (
	"log/slog"

	"itemforge/internal/domain"
)

// SlotSnapshot is the persisted form of one slot. An empty struct marks an
// empty slot so indices survive the round trip.
type SlotSnapshot struct {
	ItemID   string         `json:"item_id,omitempty"`
	Quantity int            `json:"quantity,omitempty"`
	ItemData map[string]any `json:"item_data,omitempty"`
}

// Snapshot is the persisted inventory layout.
type Snapshot struct {
	MaxSlots int            `json:"max_slots"`
	Slots    []SlotSnapshot `json:"slots"`
}

// ItemResolver resolves an item id to its canonical definition. The item
// database satisfies this.
type ItemResolver interface {
	Get(id string) (*domain.Item, bool)
}

const slotDataKeyDurability = "durability"

// Snapshot captures the current layout: per slot, the item id, quantity and
// item-specific state (durability for damageable items).
func (inv *Inventory) Snapshot() Snapshot {
	snap := Snapshot{
		MaxSlots: len(inv.slots),
		Slots:    make([]SlotSnapshot, len(inv.slots)),
	}
	for i := range inv.slots {
		if inv.slots[i].Empty() {
			continue
		}
		ss := SlotSnapshot{
			ItemID:   inv.slots[i].Item.ID,
			Quantity: inv.slots[i].Quantity,
		}
		if inv.slots[i].Item.Damageable() {
			ss.ItemData = map[string]any{slotDataKeyDurability: inv.slots[i].Item.Durability}
		}
		snap.Slots[i] = ss
	}
	return snap
}

// Restore rebuilds an inventory from a snapshot, sized to the saved slot
// count. Every stored item id is re-resolved against the database and a fresh
// copy is instantiated per slot, so restored items never alias the catalog or
// the previous inventory. Entries whose id is unknown are dropped with a
// warning. Quantities clamp to the item's max stack.
func Restore(snap Snapshot, resolver ItemResolver) *Inventory {
	inv := New(snap.MaxSlots)
	for i, ss := range snap.Slots {
		if i >= len(inv.slots) {
			break
		}
		if ss.ItemID == "" || ss.Quantity <= 0 {
			continue
		}

		canonical, ok := resolver.Get(ss.ItemID)
		if !ok {
			slog.Default().Warn("Dropping saved slot with unknown item id",
				"item_id", ss.ItemID, "slot", i)
			continue
		}

		item := canonical.Clone()
		if raw, ok := ss.ItemData[slotDataKeyDurability]; ok && item.Damageable() {
			item.Durability = clampDurability(toInt(raw), item.MaxDurability)
		}

		qty := ss.Quantity
		limit := item.MaxStack
		if limit < 1 {
			limit = 1
		}
		if qty > limit {
			qty = limit
		}
		inv.slots[i] = Slot{Item: item, Quantity: qty}
	}
	return inv
}

// toInt handles the int/float64 split JSON decoding introduces.
func toInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}

func clampDurability(d, max int) int {
	if d < 0 {
		return 0
	}
	if d > max {
		return max
	}
	return d
}
