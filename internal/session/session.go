package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"itemforge/internal/crafting"
	"itemforge/internal/domain"
	"itemforge/internal/event"
	"itemforge/internal/inventory"
	"itemforge/internal/logger"
	"itemforge/internal/snapshot"
)

// Session holds one player's live state: their inventory and their crafting
// queue. A session is only touched under its player lock.
type Session struct {
	PlayerID  string
	Inventory *inventory.Inventory
	Crafting  crafting.Service
}

// Database combines the lookups sessions need from the item catalog.
type Database interface {
	Get(id string) (*domain.Item, bool)
	RecipeByID(id string) (*domain.Recipe, bool)
}

// Manager owns all player sessions and serializes access per player with
// named locks. The game state itself is single-threaded; the locks only keep
// concurrent HTTP requests for the same player from interleaving.
type Manager struct {
	db    Database
	bus   event.Bus
	store snapshot.Store
	slots int

	mu       sync.Mutex
	sessions map[string]*Session
	locks    sync.Map
}

// NewManager creates a session manager. store may be nil when persistence is
// disabled.
func NewManager(db Database, bus event.Bus, store snapshot.Store, defaultSlots int) *Manager {
	if defaultSlots < 1 {
		defaultSlots = 1
	}
	return &Manager{
		db:       db,
		bus:      bus,
		store:    store,
		slots:    defaultSlots,
		sessions: make(map[string]*Session),
	}
}

// lockFor returns the mutex for a player, creating it on first use.
func (m *Manager) lockFor(playerID string) *sync.Mutex {
	lock, _ := m.locks.LoadOrStore(playerID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// session returns the player's session, creating an empty one on first
// access. Callers hold the player lock.
func (m *Manager) session(playerID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[playerID]; ok {
		return s
	}
	s := &Session{
		PlayerID:  playerID,
		Inventory: m.newInventory(playerID),
		Crafting:  crafting.NewService(m.db, m.bus),
	}
	m.sessions[playerID] = s
	return s
}

// newInventory builds an inventory wired to publish mutation events for the
// player.
func (m *Manager) newInventory(playerID string) *inventory.Inventory {
	inv := inventory.New(m.slots)
	if m.bus != nil {
		inv.AddObserver(&busObserver{playerID: playerID, bus: m.bus})
	}
	return inv
}

// WithSession runs fn with exclusive access to the player's session.
func (m *Manager) WithSession(ctx context.Context, playerID string, fn func(*Session) error) error {
	if playerID == "" {
		return fmt.Errorf("player id: %w", domain.ErrInvalidInput)
	}
	lock := m.lockFor(playerID)
	lock.Lock()
	defer lock.Unlock()

	return fn(m.session(playerID))
}

// Save snapshots the player's inventory to the store.
func (m *Manager) Save(ctx context.Context, playerID string) error {
	if m.store == nil {
		return fmt.Errorf("no snapshot store configured: %w", domain.ErrInvalidInput)
	}
	return m.WithSession(ctx, playerID, func(s *Session) error {
		if err := m.store.Save(ctx, playerID, s.Inventory.Snapshot()); err != nil {
			return fmt.Errorf("failed to save inventory: %w", err)
		}
		logger.FromContext(ctx).Info("Saved inventory", "player_id", playerID)
		return nil
	})
}

// Load replaces the player's inventory with the stored snapshot. The crafting
// queue is untouched.
func (m *Manager) Load(ctx context.Context, playerID string) error {
	if m.store == nil {
		return fmt.Errorf("no snapshot store configured: %w", domain.ErrInvalidInput)
	}
	return m.WithSession(ctx, playerID, func(s *Session) error {
		snap, err := m.store.Load(ctx, playerID)
		if err != nil {
			return fmt.Errorf("failed to load inventory: %w", err)
		}
		inv := inventory.Restore(snap, m.db)
		if m.bus != nil {
			inv.AddObserver(&busObserver{playerID: playerID, bus: m.bus})
		}
		s.Inventory = inv
		logger.FromContext(ctx).Info("Loaded inventory", "player_id", playerID)
		return nil
	})
}

// RunTicker drives every session's crafting queue until the context ends.
// Elapsed time is measured per tick so slow ticks do not stall craft timers.
func (m *Manager) RunTicker(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			elapsed := now.Sub(last).Seconds()
			last = now
			m.tickAll(ctx, elapsed)
		}
	}
}

func (m *Manager) tickAll(ctx context.Context, elapsed float64) {
	m.mu.Lock()
	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	m.mu.Unlock()

	for _, id := range ids {
		_ = m.WithSession(ctx, id, func(s *Session) error {
			s.Crafting.Tick(ctx, s.Inventory, elapsed)
			return nil
		})
	}
}
