package domain

// RecipeCost represents a single material requirement for a recipe.
type RecipeCost struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// Recipe maps a set of ingredient costs to a result item. Ingredient IDs and
// quantities are parallel lists matched by position; a missing quantity
// defaults to one.
type Recipe struct {
	ID             string   `json:"recipe_id"`
	ResultItemID   string   `json:"result_item_id"`
	ResultQuantity int      `json:"result_quantity"`
	IngredientIDs  []string `json:"ingredients"`
	Quantities     []int    `json:"quantities"`
	CraftTime      float64  `json:"craft_time,omitempty"` // seconds
	RequiredTool   string   `json:"required_tool,omitempty"`
	RequiredSkill  string   `json:"required_skill,omitempty"`
}

// QuantityAt returns the required quantity for ingredient i, defaulting to 1
// when the quantities list is shorter than the ingredient list.
func (r *Recipe) QuantityAt(i int) int {
	if i < len(r.Quantities) && r.Quantities[i] > 0 {
		return r.Quantities[i]
	}
	return 1
}

// Costs expands the parallel ingredient/quantity lists into cost pairs.
func (r *Recipe) Costs() []RecipeCost {
	costs := make([]RecipeCost, 0, len(r.IngredientIDs))
	for i, id := range r.IngredientIDs {
		costs = append(costs, RecipeCost{ItemID: id, Quantity: r.QuantityAt(i)})
	}
	return costs
}
