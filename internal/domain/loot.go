package domain

// LootEntry is one conditional drop inside a loot table. Chance is a
// probability in [0,1]; quantity is drawn uniformly from [MinQuantity,
// MaxQuantity] when the roll succeeds.
type LootEntry struct {
	TableID     string  `json:"table_id"`
	ItemID      string  `json:"item_id"`
	Chance      float64 `json:"drop_chance"`
	MinQuantity int     `json:"min_quantity"`
	MaxQuantity int     `json:"max_quantity"`
}
