// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables. An empty
// variable counts as unset and takes the default.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port string `env:"PORT" envDefault:"8080"`

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	// LogLevel is the minimum level written by the JSON logger:
	// debug, info, warn or error.
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"info"`

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to the Vite dev server. Set CORS_ORIGINS to a
	// comma-separated list to override.
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`

	// MaxBodyBytes caps request bodies; larger requests get 413.
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES" envDefault:"1048576"`

	// MigrateOnStart applies pending goose migrations before serving.
	MigrateOnStart bool `env:"MIGRATE_ON_START" envDefault:"true"`
}

// Load reads configuration from environment variables and returns a Config.
// The error names any required variable that is missing or malformed.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}
	cfg.CORSOrigins = trimAll(cfg.CORSOrigins)
	if cfg.MaxBodyBytes <= 0 {
		return Config{}, fmt.Errorf("config.Load: MAX_BODY_BYTES must be positive, got %d", cfg.MaxBodyBytes)
	}
	return cfg, nil
}

// trimAll trims each entry and drops the empty ones, so "a, b," is [a b].
func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}
