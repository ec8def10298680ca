package domain

import (
	"fmt"
	"strings"
)

// Item represents one entry in the item catalog. The database owns the
// canonical definition; inventories hold their own copies so per-instance
// state (durability) never leaks back into the catalog.
type Item struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Type          string `json:"type,omitempty"`
	Rarity        string `json:"rarity,omitempty"`
	MaxStack      int    `json:"max_stack"`
	BaseValue     int    `json:"base_value"`
	MaxDurability int    `json:"max_durability,omitempty"`
	Durability    int    `json:"durability,omitempty"`
	IconPath      string `json:"icon_path,omitempty"`
}

// Stackable reports whether more than one unit of this item can share a slot.
func (it *Item) Stackable() bool {
	return it.MaxStack > 1
}

// CanStackWith reports whether two item instances may occupy the same stack:
// identical IDs and a stack size above one.
func (it *Item) CanStackWith(other *Item) bool {
	if it == nil || other == nil {
		return false
	}
	return it.ID == other.ID && it.MaxStack > 1
}

// Damageable reports whether the item tracks durability at all.
// MaxDurability == 0 means the item cannot be damaged.
func (it *Item) Damageable() bool {
	return it.MaxDurability > 0
}

// ApplyDamage reduces durability by amount, clamped to zero.
// Returns true once the item is broken.
func (it *Item) ApplyDamage(amount int) bool {
	if !it.Damageable() || amount <= 0 {
		return false
	}
	it.Durability -= amount
	if it.Durability < 0 {
		it.Durability = 0
	}
	return it.Durability == 0
}

// Repair restores durability by amount, clamped to MaxDurability.
func (it *Item) Repair(amount int) {
	if !it.Damageable() || amount <= 0 {
		return
	}
	it.Durability += amount
	if it.Durability > it.MaxDurability {
		it.Durability = it.MaxDurability
	}
}

// Clone returns an independent copy of the item.
func (it *Item) Clone() *Item {
	if it == nil {
		return nil
	}
	cp := *it
	return &cp
}

// Tooltip renders the user-facing description block for the item.
func (it *Item) Tooltip() string {
	var b strings.Builder
	b.WriteString(it.Name)
	if it.Rarity != "" {
		fmt.Fprintf(&b, " (%s)", it.Rarity)
	}
	if it.Description != "" {
		b.WriteString("\n")
		b.WriteString(it.Description)
	}
	if it.Damageable() {
		fmt.Fprintf(&b, "\nDurability: %d/%d", it.Durability, it.MaxDurability)
	}
	return b.String()
}
