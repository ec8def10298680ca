package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	Port        int
	APIKey      string // API key for authentication
	LogLevel    string
	LogFormat   string
	ServiceName string
	Version     string
	Environment string

	DataDir        string // directory holding the CSV sources
	ItemsFile      string
	RecipesFile    string
	LootTablesFile string
	AssetDir       string // item icons and other static assets

	DatabaseURL  string // optional Postgres snapshot store; empty selects the file store
	SnapshotDir  string // file snapshot store location
	DefaultSlots int    // inventory size for new player sessions
	TickInterval time.Duration
}

// Load loads the configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	dataDir := getEnv("DATA_DIR", "configs/data")

	cfg := &Config{
		APIKey:      getEnv("API_KEY", ""),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		ServiceName: getEnv("SERVICE_NAME", "itemforge"),
		Version:     getEnv("SERVICE_VERSION", "dev"),
		Environment: getEnv("ENVIRONMENT", "dev"),

		DataDir:        dataDir,
		ItemsFile:      getEnv("ITEMS_FILE", filepath.Join(dataDir, "items.csv")),
		RecipesFile:    getEnv("RECIPES_FILE", filepath.Join(dataDir, "recipes.csv")),
		LootTablesFile: getEnv("LOOT_TABLES_FILE", filepath.Join(dataDir, "loot_tables.csv")),
		AssetDir:       getEnv("ASSET_DIR", "configs/assets"),

		DatabaseURL: getEnv("DATABASE_URL", ""),
		SnapshotDir: getEnv("SNAPSHOT_DIR", "snapshots"),
	}

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	slots, err := strconv.Atoi(getEnv("DEFAULT_SLOTS", "30"))
	if err != nil || slots < 1 {
		return nil, fmt.Errorf("invalid DEFAULT_SLOTS value: %q", getEnv("DEFAULT_SLOTS", "30"))
	}
	cfg.DefaultSlots = slots

	tick, err := time.ParseDuration(getEnv("TICK_INTERVAL", "250ms"))
	if err != nil || tick <= 0 {
		return nil, fmt.Errorf("invalid TICK_INTERVAL value: %q", getEnv("TICK_INTERVAL", "250ms"))
	}
	cfg.TickInterval = tick

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
