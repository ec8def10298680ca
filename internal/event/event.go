package event

import (
	"context"
	"fmt"
	"sync"
)

// EventSchemaVersion tags every published event payload shape.
const EventSchemaVersion = "1.0"

// Type represents the type of an event.
type Type string

// Event represents a generic event in the system. Payload structs are defined
// next to their producers (itemdb, crafting, session).
type Event struct {
	Version  string         `json:"version"`
	Type     Type           `json:"type"`
	Payload  interface{}    `json:"payload"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely.
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Handler is a function that handles an event.
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus.
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory, synchronous implementation of Bus. Handlers run
// in publish order on the caller's goroutine, matching the single-logical-step
// mutation model of the game layer.
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus.
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{handlers: make(map[Type][]Handler)}
}

// Publish delivers the event to every subscriber of its type. Handler errors
// are collected; publishing continues past failures.
func (b *MemoryBus) Publish(ctx context.Context, evt Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[evt.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, evt); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%d handler error(s) for %s: %v", len(errs), evt.Type, errs)
	}
	return nil
}

// Subscribe registers a handler for an event type.
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
