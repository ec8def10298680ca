package itemdb

// CanCraft reports whether the available counts cover every ingredient of the
// recipe. Ingredient i pairs with quantity i; a missing quantity means 1.
// Unknown recipes are simply not craftable.
func (db *Database) CanCraft(recipeID string, available map[string]int) bool {
	recipe, ok := db.recipeByID[recipeID]
	if !ok {
		return false
	}
	for _, cost := range recipe.Costs() {
		if available[cost.ItemID] < cost.Quantity {
			return false
		}
	}
	return true
}
