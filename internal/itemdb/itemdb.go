package itemdb

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"itemforge/internal/assets"
	"itemforge/internal/domain"
	"itemforge/internal/event"
	"itemforge/internal/logger"
	"itemforge/internal/tabular"
)

// Paths names the three CSV sources. Items is required; Recipes and
// LootTables are optional and may be empty strings.
type Paths struct {
	Items      string
	Recipes    string
	LootTables string
}

// Database owns the item catalog, recipe list and loot tables loaded from
// CSV. It is read-only after Load from the inventory/crafting perspective;
// Reload is the only writer and is expected between gameplay steps, not
// concurrent with them.
type Database struct {
	cache  *tabular.Cache
	paths  Paths
	bus    event.Bus
	assets assets.Loader

	items          map[string]*domain.Item
	typeIndex      map[string][]*domain.Item
	recipes        []*domain.Recipe
	recipeByID     map[string]*domain.Recipe
	recipeByResult map[string]*domain.Recipe
	lootTables     map[string][]domain.LootEntry
	duplicateIDs   []string
	loaded         bool
}

// Option configures optional database collaborators.
type Option func(*Database)

// WithBus makes the database publish loaded / load_failed events.
func WithBus(bus event.Bus) Option {
	return func(db *Database) { db.bus = bus }
}

// WithAssets enables icon resolution through the given loader.
func WithAssets(loader assets.Loader) Option {
	return func(db *Database) { db.assets = loader }
}

// New creates an unloaded database over the given parse cache and sources.
func New(cache *tabular.Cache, paths Paths, opts ...Option) *Database {
	db := &Database{cache: cache, paths: paths}
	for _, opt := range opts {
		opt(db)
	}
	return db
}

// Loaded reports whether a successful Load has completed.
func (db *Database) Loaded() bool { return db.loaded }

// Len reports the number of catalog items.
func (db *Database) Len() int { return len(db.items) }

// Load reads all three sources and builds the lookup indices. The item source
// must open and contain at least one usable record; recipes and loot tables
// degrade to empty when missing. Publishes database.loaded or
// database.load_failed.
func (db *Database) Load(ctx context.Context) error {
	return db.load(ctx, false)
}

// Reload evicts the parse cache entries for all three sources and loads them
// again atomically: staged state replaces the live state only when every
// source succeeds, so a failed reload leaves the previous catalog intact.
func (db *Database) Reload(ctx context.Context) error {
	return db.load(ctx, true)
}

func (db *Database) load(ctx context.Context, evict bool) error {
	log := logger.FromContext(ctx)

	if evict {
		db.cache.Evict(db.paths.Items)
		db.cache.Evict(db.paths.Recipes)
		db.cache.Evict(db.paths.LootTables)
	}

	staged, err := db.stage(ctx)
	if err != nil {
		log.Error("Item database load failed", "error", err)
		db.publishLoadFailed(ctx, err)
		return err
	}

	db.items = staged.items
	db.typeIndex = staged.typeIndex
	db.recipes = staged.recipes
	db.recipeByID = staged.recipeByID
	db.recipeByResult = staged.recipeByResult
	db.lootTables = staged.lootTables
	db.duplicateIDs = staged.duplicateIDs
	db.loaded = true

	log.Info("Item database loaded",
		"items", len(db.items),
		"recipes", len(db.recipes),
		"loot_tables", len(db.lootTables))
	db.publishLoaded(ctx)
	return nil
}

// staged holds a fully-built catalog before it is swapped in.
type staged struct {
	items          map[string]*domain.Item
	typeIndex      map[string][]*domain.Item
	recipes        []*domain.Recipe
	recipeByID     map[string]*domain.Recipe
	recipeByResult map[string]*domain.Recipe
	lootTables     map[string][]domain.LootEntry
	duplicateIDs   []string
}

func (db *Database) stage(ctx context.Context) (*staged, error) {
	log := logger.FromContext(ctx)

	itemRecords, err := db.cache.Load(db.paths.Items)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMissingSource, err)
	}

	st := &staged{
		items:          make(map[string]*domain.Item, len(itemRecords)),
		typeIndex:      make(map[string][]*domain.Item),
		recipeByID:     make(map[string]*domain.Recipe),
		recipeByResult: make(map[string]*domain.Recipe),
		lootTables:     make(map[string][]domain.LootEntry),
	}

	for _, rec := range itemRecords {
		item, ok := parseItem(rec)
		if !ok {
			log.Warn("Skipping item row without id")
			continue
		}
		// Last row wins on duplicate ids; Validate surfaces them.
		if _, dup := st.items[item.ID]; dup {
			st.duplicateIDs = append(st.duplicateIDs, item.ID)
		}
		st.items[item.ID] = item
	}
	if len(st.items) == 0 {
		return nil, fmt.Errorf("%w: %s has no usable item rows", domain.ErrMissingSource, db.paths.Items)
	}

	for _, item := range st.items {
		key := foldKey(item.Type)
		st.typeIndex[key] = append(st.typeIndex[key], item)
	}

	for _, rec := range db.loadOptional(ctx, db.paths.Recipes) {
		recipe, ok := parseRecipe(rec)
		if !ok {
			log.Warn("Skipping recipe row without id or result")
			continue
		}
		st.recipes = append(st.recipes, recipe)
		st.recipeByID[recipe.ID] = recipe
		st.recipeByResult[recipe.ResultItemID] = recipe
	}

	for _, rec := range db.loadOptional(ctx, db.paths.LootTables) {
		entry, ok := parseLootEntry(rec)
		if !ok {
			log.Warn("Skipping loot row without table_id or item_id")
			continue
		}
		st.lootTables[entry.TableID] = append(st.lootTables[entry.TableID], entry)
	}

	return st, nil
}

// loadOptional reads a non-required source. Absent or unreadable files
// degrade to an empty record set with a warning.
func (db *Database) loadOptional(ctx context.Context, path string) []tabular.Record {
	if path == "" {
		return nil
	}
	records, err := db.cache.Load(path)
	if err != nil {
		logger.FromContext(ctx).Warn("Optional data source unavailable, treating as empty",
			"path", path, "error", err)
		return nil
	}
	return records
}

// Icon resolves an item's icon through the injected asset loader.
func (db *Database) Icon(id string) (assets.Handle, error) {
	item, ok := db.Get(id)
	if !ok {
		return assets.Handle{}, fmt.Errorf("icon for %q: %w", id, domain.ErrItemNotFound)
	}
	if db.assets == nil || item.IconPath == "" {
		return assets.Handle{}, fmt.Errorf("no icon available for %q", id)
	}
	return db.assets.Load(item.IconPath)
}

func (db *Database) publishLoaded(ctx context.Context) {
	if db.bus == nil {
		return
	}
	evt := NewDatabaseLoadedEvent(len(db.items), len(db.recipes), len(db.lootTables))
	if err := db.bus.Publish(ctx, evt); err != nil {
		slog.Default().Warn("Publishing database.loaded failed", "error", err)
	}
}

func (db *Database) publishLoadFailed(ctx context.Context, cause error) {
	if db.bus == nil {
		return
	}
	evt := NewDatabaseLoadFailedEvent(cause.Error())
	if err := db.bus.Publish(ctx, evt); err != nil {
		slog.Default().Warn("Publishing database.load_failed failed", "error", err)
	}
}

// foldKey normalizes index keys for case-insensitive matching.
func foldKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
