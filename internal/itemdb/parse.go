package itemdb

import (
	"strconv"
	"strings"

	"itemforge/internal/domain"
	"itemforge/internal/tabular"
)

// parseItem builds an Item from one record. Rows without an id are unusable.
// Durability starts full.
func parseItem(rec tabular.Record) (*domain.Item, bool) {
	id := strings.TrimSpace(rec.Str(ColItemID, ""))
	if id == "" {
		return nil, false
	}

	item := &domain.Item{
		ID:            id,
		Name:          rec.Str(ColItemName, id),
		Description:   rec.Str(ColItemDesc, ""),
		Type:          rec.Str(ColItemType, ""),
		Rarity:        rec.Str(ColItemRarity, ""),
		MaxStack:      rec.Int(ColItemMaxStack, DefaultMaxStack),
		BaseValue:     rec.Int(ColItemBaseValue, 0),
		MaxDurability: rec.Int(ColItemMaxDur, 0),
		IconPath:      rec.Str(ColItemIconPath, ""),
	}
	if item.MaxStack < 1 {
		item.MaxStack = DefaultMaxStack
	}
	if item.MaxDurability < 0 {
		item.MaxDurability = 0
	}
	item.Durability = item.MaxDurability
	return item, true
}

// parseRecipe builds a Recipe. Ingredient and quantity cells are accepted
// either as bracketed lists or comma-joined strings; quantities parse as
// integers from trimmed substrings and malformed entries fall back to 1.
func parseRecipe(rec tabular.Record) (*domain.Recipe, bool) {
	id := strings.TrimSpace(rec.Str(ColRecipeID, ""))
	result := strings.TrimSpace(rec.Str(ColRecipeResult, ""))
	if id == "" || result == "" {
		return nil, false
	}

	recipe := &domain.Recipe{
		ID:             id,
		ResultItemID:   result,
		ResultQuantity: rec.Int(ColRecipeResultQt, DefaultResultQuantity),
		IngredientIDs:  rec.List(ColRecipeIngr),
		Quantities:     parseQuantities(rec.List(ColRecipeQts)),
		CraftTime:      rec.Float(ColRecipeTime, 0),
		RequiredTool:   rec.Str(ColRecipeTool, ""),
		RequiredSkill:  rec.Str(ColRecipeSkill, ""),
	}
	if recipe.ResultQuantity < 1 {
		recipe.ResultQuantity = DefaultResultQuantity
	}
	if recipe.CraftTime < 0 {
		recipe.CraftTime = 0
	}
	return recipe, true
}

func parseQuantities(raw []string) []int {
	out := make([]int, 0, len(raw))
	for _, s := range raw {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || n < 1 {
			n = 1
		}
		out = append(out, n)
	}
	return out
}

// parseLootEntry builds a LootEntry. Chance clamps to [0,1]; the quantity
// range is normalized so max >= min >= 1.
func parseLootEntry(rec tabular.Record) (domain.LootEntry, bool) {
	tableID := strings.TrimSpace(rec.Str(ColLootTableID, ""))
	itemID := strings.TrimSpace(rec.Str(ColLootItemID, ""))
	if tableID == "" || itemID == "" {
		return domain.LootEntry{}, false
	}

	entry := domain.LootEntry{
		TableID:     tableID,
		ItemID:      itemID,
		Chance:      rec.Float(ColLootChance, 0),
		MinQuantity: rec.Int(ColLootMinQty, DefaultMinQuantity),
		MaxQuantity: rec.Int(ColLootMaxQty, 0),
	}
	if entry.Chance < 0 {
		entry.Chance = 0
	}
	if entry.Chance > 1 {
		entry.Chance = 1
	}
	if entry.MinQuantity < 1 {
		entry.MinQuantity = 1
	}
	if entry.MaxQuantity < entry.MinQuantity {
		entry.MaxQuantity = entry.MinQuantity
	}
	return entry, true
}
