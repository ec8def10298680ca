package itemdb

import "fmt"

// IssueKind classifies a data integrity finding.
type IssueKind string

const (
	IssueDuplicateItemID     IssueKind = "duplicate_item_id"
	IssueMissingRecipeResult IssueKind = "missing_recipe_result"
	IssueMissingIngredient   IssueKind = "missing_ingredient"
	IssueMissingLootItem     IssueKind = "missing_loot_item"
)

// Issue is one advisory data problem found by Validate.
type Issue struct {
	Kind    IssueKind `json:"kind"`
	Subject string    `json:"subject"`
	Detail  string    `json:"detail"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s (%s)", i.Kind, i.Subject, i.Detail)
}

// Validate scans the loaded data for integrity problems: duplicate item ids
// (last loaded row won), recipes whose result or ingredients are unknown, and
// loot entries pointing at unknown items. Advisory only; the database stays
// usable regardless.
func (db *Database) Validate() []Issue {
	var issues []Issue

	for _, id := range db.duplicateIDs {
		issues = append(issues, Issue{
			Kind:    IssueDuplicateItemID,
			Subject: id,
			Detail:  "multiple item rows share this id; the last row loaded wins",
		})
	}

	for _, recipe := range db.recipes {
		if _, ok := db.items[recipe.ResultItemID]; !ok {
			issues = append(issues, Issue{
				Kind:    IssueMissingRecipeResult,
				Subject: recipe.ID,
				Detail:  fmt.Sprintf("result item %q is not in the catalog", recipe.ResultItemID),
			})
		}
		for _, cost := range recipe.Costs() {
			if _, ok := db.items[cost.ItemID]; !ok {
				issues = append(issues, Issue{
					Kind:    IssueMissingIngredient,
					Subject: recipe.ID,
					Detail:  fmt.Sprintf("ingredient %q is not in the catalog", cost.ItemID),
				})
			}
		}
	}

	for tableID, entries := range db.lootTables {
		for _, entry := range entries {
			if _, ok := db.items[entry.ItemID]; !ok {
				issues = append(issues, Issue{
					Kind:    IssueMissingLootItem,
					Subject: tableID,
					Detail:  fmt.Sprintf("loot item %q is not in the catalog", entry.ItemID),
				})
			}
		}
	}

	return issues
}
