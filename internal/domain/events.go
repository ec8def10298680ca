package domain

// Event type names published on the in-process bus. Consumers subscribe by
// these constants; payload structs live next to their producers.
const (
	EventTypeDatabaseLoaded     = "database.loaded"
	EventTypeDatabaseLoadFailed = "database.load_failed"

	EventTypeItemAdded       = "inventory.item_added"
	EventTypeItemRemoved     = "inventory.item_removed"
	EventTypeItemMoved       = "inventory.item_moved"
	EventTypeInventorySorted = "inventory.sorted"

	EventTypeCraftCompleted = "craft.completed"
	EventTypeCraftFailed    = "craft.failed"
	EventTypeCraftQueued    = "craft.queued"
	EventTypeCraftCancelled = "craft.cancelled"

	EventTypeLootGenerated = "loot.generated"
)

// Metadata keys shared across event payload metadata maps.
const (
	MetadataKeyPlayerID = "player_id"
	MetadataKeyItemID   = "item_id"
	MetadataKeyQuantity = "quantity"
	MetadataKeySource   = "source"
)
