package snapshot

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"itemforge/internal/domain"
	"itemforge/internal/inventory"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const (
	defaultMaxConns        = 10
	defaultMinConns        = 2
	defaultMaxConnLifetime = time.Hour
	defaultMaxConnIdleTime = 30 * time.Minute
)

// PostgresStore persists snapshots as JSONB rows, one per player.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects a pool, verifies it with a ping and runs pending
// migrations.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}
	config.MaxConns = defaultMaxConns
	config.MinConns = defaultMinConns
	config.MaxConnLifetime = defaultMaxConnLifetime
	config.MaxConnIdleTime = defaultMaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &PostgresStore{pool: pool}
	if err := store.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	slog.Default().Info("Connected snapshot store to database")
	return store, nil
}

// migrate applies the embedded goose migrations through a stdlib adapter over
// the pool.
func (s *PostgresStore) migrate(ctx context.Context) error {
	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	db := stdlib.OpenDBFromPool(s.pool)
	defer db.Close()

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Save upserts the player's snapshot.
func (s *PostgresStore) Save(ctx context.Context, playerID string, snap inventory.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO inventory_snapshots (player_id, snapshot, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (player_id)
		DO UPDATE SET snapshot = EXCLUDED.snapshot, updated_at = NOW()`,
		playerID, data)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// Load fetches the player's snapshot.
func (s *PostgresStore) Load(ctx context.Context, playerID string) (inventory.Snapshot, error) {
	var data []byte
	err := s.pool.QueryRow(ctx,
		`SELECT snapshot FROM inventory_snapshots WHERE player_id = $1`,
		playerID).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return inventory.Snapshot{}, fmt.Errorf("player %s: %w", playerID, domain.ErrSnapshotNotFound)
		}
		return inventory.Snapshot{}, fmt.Errorf("failed to load snapshot: %w", err)
	}

	var snap inventory.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return inventory.Snapshot{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return snap, nil
}

// Close releases the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}
