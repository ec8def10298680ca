package inventory

import "itemforge/internal/domain"

// Stats aggregates slot usage for UI and telemetry.
type Stats struct {
	MaxSlots    int `json:"max_slots"`
	UsedSlots   int `json:"used_slots"`
	TotalItems  int `json:"total_items"`
	UniqueItems int `json:"unique_items"`
	TotalValue  int `json:"total_value"`
}

// CountOf returns the total quantity of an item id across all slots.
func (inv *Inventory) CountOf(itemID string) int {
	total := 0
	for i := range inv.slots {
		if !inv.slots[i].Empty() && inv.slots[i].Item.ID == itemID {
			total += inv.slots[i].Quantity
		}
	}
	return total
}

// Counts returns the quantity per item id across all slots.
func (inv *Inventory) Counts() map[string]int {
	counts := make(map[string]int)
	for i := range inv.slots {
		if !inv.slots[i].Empty() {
			counts[inv.slots[i].Item.ID] += inv.slots[i].Quantity
		}
	}
	return counts
}

// ItemsByType returns the distinct items of a type currently held.
func (inv *Inventory) ItemsByType(itemType string) []*domain.Item {
	seen := make(map[string]bool)
	var out []*domain.Item
	for i := range inv.slots {
		if inv.slots[i].Empty() || inv.slots[i].Item.Type != itemType {
			continue
		}
		if !seen[inv.slots[i].Item.ID] {
			seen[inv.slots[i].Item.ID] = true
			out = append(out, inv.slots[i].Item)
		}
	}
	return out
}

// FirstEmptySlot returns the lowest empty slot index, or -1 when full.
func (inv *Inventory) FirstEmptySlot() int {
	for i := range inv.slots {
		if inv.slots[i].Empty() {
			return i
		}
	}
	return -1
}

// EmptySlotCount returns the number of empty slots.
func (inv *Inventory) EmptySlotCount() int {
	count := 0
	for i := range inv.slots {
		if inv.slots[i].Empty() {
			count++
		}
	}
	return count
}

// IsFull reports whether no slot is empty.
func (inv *Inventory) IsFull() bool {
	return inv.FirstEmptySlot() == -1
}

// Stats aggregates usage, item totals and total base value.
func (inv *Inventory) Stats() Stats {
	st := Stats{MaxSlots: len(inv.slots)}
	unique := make(map[string]bool)
	for i := range inv.slots {
		if inv.slots[i].Empty() {
			continue
		}
		st.UsedSlots++
		st.TotalItems += inv.slots[i].Quantity
		st.TotalValue += inv.slots[i].Item.BaseValue * inv.slots[i].Quantity
		unique[inv.slots[i].Item.ID] = true
	}
	st.UniqueItems = len(unique)
	return st
}
