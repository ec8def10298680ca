package domain

import "errors"

// Error message string constants - single source of truth for error messages.
// Use these in assert.Contains() checks when testing error messages.
const (
	// Item errors
	ErrMsgItemNotFound = "item not found"

	// Database errors
	ErrMsgMissingSource     = "required data source missing or empty"
	ErrMsgDatabaseNotLoaded = "item database not loaded"

	// Inventory errors
	ErrMsgInventoryFull = "inventory is full"
	ErrMsgInvalidSlot   = "invalid slot index"

	// Recipe/Crafting errors
	ErrMsgRecipeNotFound          = "recipe not found"
	ErrMsgInsufficientIngredients = "insufficient ingredients"
	ErrMsgConsistency             = "inventory consistency failure"
	ErrMsgQueueEmpty              = "crafting queue is empty"

	// Loot errors
	ErrMsgLootTableNotFound = "loot table not found"

	// Persistence errors
	ErrMsgSnapshotNotFound = "inventory snapshot not found"

	// Validation errors
	ErrMsgInvalidQuantity = "quantity must be positive"
	ErrMsgInvalidInput    = "invalid input"
)

// Common domain errors.
// Wrap these with fmt.Errorf("...: %w", domain.ErrXxx) for additional context.
var (
	// Item errors
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)

	// Database errors
	ErrMissingSource     = errors.New(ErrMsgMissingSource)
	ErrDatabaseNotLoaded = errors.New(ErrMsgDatabaseNotLoaded)

	// Inventory errors
	ErrInventoryFull = errors.New(ErrMsgInventoryFull)
	ErrInvalidSlot   = errors.New(ErrMsgInvalidSlot)

	// Recipe/Crafting errors
	ErrRecipeNotFound          = errors.New(ErrMsgRecipeNotFound)
	ErrInsufficientIngredients = errors.New(ErrMsgInsufficientIngredients)
	ErrConsistency             = errors.New(ErrMsgConsistency)
	ErrQueueEmpty              = errors.New(ErrMsgQueueEmpty)

	// Loot errors
	ErrLootTableNotFound = errors.New(ErrMsgLootTableNotFound)

	// Persistence errors
	ErrSnapshotNotFound = errors.New(ErrMsgSnapshotNotFound)

	// Validation errors
	ErrInvalidQuantity = errors.New(ErrMsgInvalidQuantity)
	ErrInvalidInput    = errors.New(ErrMsgInvalidInput)
)
