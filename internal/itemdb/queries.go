package itemdb

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"itemforge/internal/domain"
)

// fold lower-cases with full Unicode case mapping so searches behave for
// non-ASCII item names.
var fold = cases.Lower(language.Und)

// Get returns the canonical item for id. Callers that store the item must
// clone it first; inventories do.
func (db *Database) Get(id string) (*domain.Item, bool) {
	item, ok := db.items[id]
	return item, ok
}

// Items returns all catalog items in unspecified order.
func (db *Database) Items() []*domain.Item {
	out := make([]*domain.Item, 0, len(db.items))
	for _, item := range db.items {
		out = append(out, item)
	}
	return out
}

// ByType returns the items of a type, case-insensitive. Unknown types yield
// an empty slice.
func (db *Database) ByType(itemType string) []*domain.Item {
	return db.typeIndex[foldKey(itemType)]
}

// ByRarity returns the items of a rarity, case-insensitive.
func (db *Database) ByRarity(rarity string) []*domain.Item {
	want := foldKey(rarity)
	var out []*domain.Item
	for _, item := range db.items {
		if foldKey(item.Rarity) == want {
			out = append(out, item)
		}
	}
	return out
}

// Search returns the items whose name or description contains the query,
// case-insensitive. An empty query matches nothing.
func (db *Database) Search(query string) []*domain.Item {
	q := fold.String(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []*domain.Item
	for _, item := range db.items {
		if strings.Contains(fold.String(item.Name), q) ||
			strings.Contains(fold.String(item.Description), q) {
			out = append(out, item)
		}
	}
	return out
}

// CraftableItems returns every item that is the result of some recipe.
func (db *Database) CraftableItems() []*domain.Item {
	var out []*domain.Item
	for resultID := range db.recipeByResult {
		if item, ok := db.items[resultID]; ok {
			out = append(out, item)
		}
	}
	return out
}

// Recipes returns all loaded recipes in source order.
func (db *Database) Recipes() []*domain.Recipe {
	return db.recipes
}

// RecipeByID looks a recipe up by its own id.
func (db *Database) RecipeByID(id string) (*domain.Recipe, bool) {
	r, ok := db.recipeByID[id]
	return r, ok
}

// RecipeForResult looks a recipe up by the item it produces.
func (db *Database) RecipeForResult(itemID string) (*domain.Recipe, bool) {
	r, ok := db.recipeByResult[itemID]
	return r, ok
}

// LootTable returns the entries for a table id, nil when unknown.
func (db *Database) LootTable(tableID string) []domain.LootEntry {
	return db.lootTables[tableID]
}

// LootTableIDs returns the known loot table names.
func (db *Database) LootTableIDs() []string {
	out := make([]string, 0, len(db.lootTables))
	for id := range db.lootTables {
		out = append(out, id)
	}
	return out
}
