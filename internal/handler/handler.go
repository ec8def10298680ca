package handler

import (
	"context"

	"itemforge/internal/assets"
	"itemforge/internal/domain"
	"itemforge/internal/itemdb"
	"itemforge/internal/rng"
	"itemforge/internal/session"
)

// Database is the item catalog surface the handlers consume.
type Database interface {
	Loaded() bool
	Len() int
	Get(id string) (*domain.Item, bool)
	Items() []*domain.Item
	ByType(itemType string) []*domain.Item
	ByRarity(rarity string) []*domain.Item
	Search(query string) []*domain.Item
	CraftableItems() []*domain.Item
	Recipes() []*domain.Recipe
	RecipeByID(id string) (*domain.Recipe, bool)
	RecipeForResult(itemID string) (*domain.Recipe, bool)
	LootTable(tableID string) []domain.LootEntry
	LootTableIDs() []string
	CanCraft(recipeID string, available map[string]int) bool
	GenerateLoot(ctx context.Context, tableID string, src rng.Source) []*domain.Item
	Icon(id string) (assets.Handle, error)
	Reload(ctx context.Context) error
	Validate() []itemdb.Issue
}

// Sessions is the per-player state surface the handlers consume.
type Sessions interface {
	WithSession(ctx context.Context, playerID string, fn func(*session.Session) error) error
	Save(ctx context.Context, playerID string) error
	Load(ctx context.Context, playerID string) error
}
