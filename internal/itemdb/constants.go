package itemdb

// Column names understood by the three CSV sources. Columns are
// data-source-defined; only the ones below are interpreted, anything else
// stays available through the raw records.
const (
	// items.csv
	ColItemID        = "id"
	ColItemName      = "name"
	ColItemDesc      = "description"
	ColItemType      = "type"
	ColItemRarity    = "rarity"
	ColItemMaxStack  = "max_stack"
	ColItemBaseValue = "base_value"
	ColItemMaxDur    = "max_durability"
	ColItemIconPath  = "icon_path"

	// recipes.csv
	ColRecipeID       = "id"
	ColRecipeResult   = "result_item_id"
	ColRecipeResultQt = "result_quantity"
	ColRecipeIngr     = "ingredients"
	ColRecipeQts      = "quantities"
	ColRecipeTime     = "craft_time"
	ColRecipeTool     = "required_tool"
	ColRecipeSkill    = "required_skill"

	// loot_tables.csv
	ColLootTableID = "table_id"
	ColLootItemID  = "item_id"
	ColLootChance  = "drop_chance"
	ColLootMinQty  = "min_quantity"
	ColLootMaxQty  = "max_quantity"
)

// Defaults applied when a column is absent or null.
const (
	DefaultMaxStack       = 1
	DefaultResultQuantity = 1
	DefaultMinQuantity    = 1
)
