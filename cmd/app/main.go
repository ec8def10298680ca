package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"itemforge/internal/assets"
	"itemforge/internal/config"
	"itemforge/internal/event"
	"itemforge/internal/itemdb"
	"itemforge/internal/logger"
	"itemforge/internal/metrics"
	"itemforge/internal/rng"
	"itemforge/internal/server"
	"itemforge/internal/session"
	"itemforge/internal/snapshot"
	"itemforge/internal/tabular"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger.Init(logger.NewConfig(
		cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version, cfg.Environment, false))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bus := event.NewMemoryBus()
	metrics.NewEventMetricsCollector().Register(bus)

	cache := tabular.NewCache(tabular.DefaultCacheSize)
	db := itemdb.New(cache, itemdb.Paths{
		Items:      cfg.ItemsFile,
		Recipes:    cfg.RecipesFile,
		LootTables: cfg.LootTablesFile,
	}, itemdb.WithBus(bus), itemdb.WithAssets(assets.NewFileLoader(cfg.AssetDir)))

	if err := db.Load(ctx); err != nil {
		slog.Error("Failed to load item database", "error", err)
		os.Exit(1)
	}
	for _, issue := range db.Validate() {
		slog.Warn("Item data issue", "issue", issue.String())
	}

	store, cleanup, err := newSnapshotStore(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize snapshot store", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	sessions := session.NewManager(db, bus, store, cfg.DefaultSlots)
	go sessions.RunTicker(ctx, cfg.TickInterval)

	srv := server.NewServer(server.Options{
		Port:        cfg.Port,
		APIKey:      cfg.APIKey,
		ServiceName: cfg.ServiceName,
		Version:     cfg.Version,
	}, db, sessions, rng.New())

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Error("Server forced shutdown", "error", err)
	}
	slog.Info("Server stopped")
}

// newSnapshotStore picks Postgres when DATABASE_URL is set, a local file
// store otherwise.
func newSnapshotStore(ctx context.Context, cfg *config.Config) (snapshot.Store, func(), error) {
	if cfg.DatabaseURL != "" {
		store, err := snapshot.NewPostgresStore(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	}

	store, err := snapshot.NewFileStore(cfg.SnapshotDir)
	if err != nil {
		return nil, nil, err
	}
	return store, func() {}, nil
}
