package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Config represents logger configuration.
type Config struct {
	Level       string // "debug", "info", "warn", "error"
	Format      string // "json", "text"
	ServiceName string
	Version     string
	Environment string // "dev", "staging", "prod"
	AddSource   bool   // Include source file/line in logs
}

// NewConfig creates a config from explicit values.
func NewConfig(level, format, serviceName, version, environment string, addSource bool) Config {
	return Config{
		Level:       level,
		Format:      format,
		ServiceName: serviceName,
		Version:     version,
		Environment: environment,
		AddSource:   addSource,
	}
}

// DefaultConfig returns development-friendly defaults.
func DefaultConfig() Config {
	return Config{
		Level:       "info",
		Format:      "text",
		ServiceName: "itemforge",
		Version:     "dev",
		Environment: "dev",
		AddSource:   false,
	}
}

// LogLevel converts the string level to slog.Level.
func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsJSON returns true if the format is JSON.
func (c Config) IsJSON() bool {
	return strings.ToLower(c.Format) == "json"
}

// BaseAttributes returns common attributes added to all logs.
func (c Config) BaseAttributes() []slog.Attr {
	return []slog.Attr{
		slog.String("service", c.ServiceName),
		slog.String("version", c.Version),
		slog.String("environment", c.Environment),
	}
}

// Init builds a handler from the config and installs it as the slog default.
func Init(c Config) {
	opts := &slog.HandlerOptions{
		Level:     c.LogLevel(),
		AddSource: c.AddSource,
	}

	var handler slog.Handler
	if c.IsJSON() {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	handler = handler.WithAttrs(c.BaseAttributes())

	slog.SetDefault(slog.New(handler))
}
