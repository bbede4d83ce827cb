package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime settings, loaded from the environment once at
// startup. ForceHTTPS is read on every request but never written after Load.
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	DBDriver    string `env:"DB_DRIVER" envDefault:"postgres"`
	DatabaseURL string `env:"DATABASE_URL"`
	DuckDBPath  string `env:"DUCKDB_PATH" envDefault:"./data/accounts.db"`
	ForceHTTPS  bool   `env:"FORCE_HTTPS" envDefault:"true"`
	AuthUser    string `env:"AUTH_USER"`
	AuthPass    string `env:"AUTH_PASS"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	switch cfg.DBDriver {
	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, errors.New("DATABASE_URL is required when DB_DRIVER is postgres")
		}
	case "duckdb":
		// Embedded database, no URL needed.
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q: must be postgres or duckdb", cfg.DBDriver)
	}

	return cfg, nil
}
