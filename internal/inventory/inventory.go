package inventory

import (
	"fmt"
	"sort"

	"itemforge/internal/domain"
)

// Slot is one storage unit: empty, or a single stack of one item id.
type Slot struct {
	Item     *domain.Item `json:"item,omitempty"`
	Quantity int          `json:"quantity,omitempty"`
}

// Empty reports whether the slot holds nothing.
func (s Slot) Empty() bool {
	return s.Item == nil || s.Quantity <= 0
}

// Observer receives synchronous notifications after a mutating call
// completes. Implementations must not mutate the inventory reentrantly.
type Observer interface {
	ItemAdded(item *domain.Item, quantity, slot int)
	ItemRemoved(itemID string, quantity int)
	ItemMoved(from, to int)
	Sorted()
}

// Inventory is a fixed-size slot array. It owns its slots exclusively; slots
// hold their own item copies so per-stack state (durability) never aliases
// the catalog. All methods are single-threaded by design; callers serialize
// access per player.
type Inventory struct {
	slots     []Slot
	observers []Observer
	muted     bool // suppresses per-slot notifications during Sort
}

// New creates an empty inventory with the given slot count.
func New(maxSlots int) *Inventory {
	if maxSlots < 1 {
		maxSlots = 1
	}
	return &Inventory{slots: make([]Slot, maxSlots)}
}

// AddObserver registers an observer for mutation notifications.
func (inv *Inventory) AddObserver(o Observer) {
	if o != nil {
		inv.observers = append(inv.observers, o)
	}
}

// MaxSlots returns the fixed slot count.
func (inv *Inventory) MaxSlots() int { return len(inv.slots) }

// Slot returns the slot at index i.
func (inv *Inventory) Slot(i int) (Slot, error) {
	if i < 0 || i >= len(inv.slots) {
		return Slot{}, fmt.Errorf("slot %d: %w", i, domain.ErrInvalidSlot)
	}
	return inv.slots[i], nil
}

// Slots returns a copy of the slot array for read-only iteration.
func (inv *Inventory) Slots() []Slot {
	out := make([]Slot, len(inv.slots))
	copy(out, inv.slots)
	return out
}

// Add places up to qty units of item and returns the amount actually placed.
// Two-phase placement: existing stacks top up in index order first, then
// empty slots fill in index order, each capped at the item's max stack.
// Partial placement is not rolled back; the return value is authoritative.
func (inv *Inventory) Add(item *domain.Item, qty int) int {
	if item == nil || item.ID == "" || qty <= 0 {
		return 0
	}

	remaining := qty

	// Phase 1: top up existing stacks.
	if item.Stackable() {
		for i := range inv.slots {
			if remaining == 0 {
				break
			}
			slot := &inv.slots[i]
			if slot.Empty() || !slot.Item.CanStackWith(item) {
				continue
			}
			space := slot.Item.MaxStack - slot.Quantity
			if space <= 0 {
				continue
			}
			placed := min(space, remaining)
			slot.Quantity += placed
			remaining -= placed
			inv.notifyAdded(slot.Item, placed, i)
		}
	}

	// Phase 2: fill empty slots.
	for i := range inv.slots {
		if remaining == 0 {
			break
		}
		if !inv.slots[i].Empty() {
			continue
		}
		capacity := item.MaxStack
		if capacity < 1 {
			capacity = 1
		}
		placed := min(capacity, remaining)
		inv.slots[i] = Slot{Item: item.Clone(), Quantity: placed}
		remaining -= placed
		inv.notifyAdded(inv.slots[i].Item, placed, i)
	}

	return qty - remaining
}

// Remove takes up to qty units of the item id across slots in index order,
// emptying drained slots, and returns the amount actually removed.
func (inv *Inventory) Remove(itemID string, qty int) int {
	if itemID == "" || qty <= 0 {
		return 0
	}

	remaining := qty
	for i := range inv.slots {
		if remaining == 0 {
			break
		}
		slot := &inv.slots[i]
		if slot.Empty() || slot.Item.ID != itemID {
			continue
		}
		taken := min(slot.Quantity, remaining)
		slot.Quantity -= taken
		remaining -= taken
		if slot.Quantity == 0 {
			*slot = Slot{}
		}
	}

	removed := qty - remaining
	if removed > 0 {
		inv.notifyRemoved(itemID, removed)
	}
	return removed
}

// Move relocates, merges or swaps the contents of two slots. Moving a slot
// onto itself succeeds as a no-op. Merging transfers up to the destination's
// remaining capacity; incompatible stacks swap outright.
func (inv *Inventory) Move(from, to int) error {
	if from < 0 || from >= len(inv.slots) || to < 0 || to >= len(inv.slots) {
		return fmt.Errorf("move %d -> %d: %w", from, to, domain.ErrInvalidSlot)
	}
	if from == to {
		return nil
	}

	src := &inv.slots[from]
	dst := &inv.slots[to]
	if src.Empty() {
		return fmt.Errorf("move from empty slot %d: %w", from, domain.ErrInvalidSlot)
	}

	switch {
	case dst.Empty():
		*dst = *src
		*src = Slot{}
	case dst.Item.CanStackWith(src.Item):
		space := dst.Item.MaxStack - dst.Quantity
		moved := min(space, src.Quantity)
		dst.Quantity += moved
		src.Quantity -= moved
		if src.Quantity == 0 {
			*src = Slot{}
		}
	default:
		*src, *dst = *dst, *src
	}

	inv.notifyMoved(from, to)
	return nil
}

// Sort rebuilds the slot contents ordered by (item type, name) ascending.
// Stacks are re-inserted through Add, so the same capacity rules apply as a
// fresh fill.
func (inv *Inventory) Sort() {
	type stack struct {
		item *domain.Item
		qty  int
	}
	var stacks []stack
	for i := range inv.slots {
		if !inv.slots[i].Empty() {
			stacks = append(stacks, stack{inv.slots[i].Item, inv.slots[i].Quantity})
		}
	}

	sort.SliceStable(stacks, func(a, b int) bool {
		if stacks[a].item.Type != stacks[b].item.Type {
			return stacks[a].item.Type < stacks[b].item.Type
		}
		return stacks[a].item.Name < stacks[b].item.Name
	})

	for i := range inv.slots {
		inv.slots[i] = Slot{}
	}

	// Re-inserting is a rearrangement, not new items; keep observers quiet
	// until the single Sorted notification.
	inv.muted = true
	for _, st := range stacks {
		inv.Add(st.item, st.qty)
	}
	inv.muted = false

	for _, o := range inv.observers {
		o.Sorted()
	}
}

func (inv *Inventory) notifyAdded(item *domain.Item, qty, slot int) {
	if inv.muted {
		return
	}
	for _, o := range inv.observers {
		o.ItemAdded(item, qty, slot)
	}
}

func (inv *Inventory) notifyRemoved(itemID string, qty int) {
	if inv.muted {
		return
	}
	for _, o := range inv.observers {
		o.ItemRemoved(itemID, qty)
	}
}

func (inv *Inventory) notifyMoved(from, to int) {
	if inv.muted {
		return
	}
	for _, o := range inv.observers {
		o.ItemMoved(from, to)
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
