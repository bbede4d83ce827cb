package db

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "github.com/duckdb/duckdb-go/v2"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/devops-capstone/account-service/config"
)

// Open creates a database connection for the configured driver: "postgres"
// connects to DATABASE_URL through the pgx stdlib driver, "duckdb" opens an
// embedded database file at DUCKDB_PATH.
func Open(cfg *config.Config) (*sql.DB, error) {
	var driverName, dsn string

	switch cfg.DBDriver {
	case "postgres":
		driverName = "pgx"
		dsn = cfg.DatabaseURL
	case "duckdb":
		driverName = "duckdb"
		dsn = cfg.DuckDBPath

		// Ensure the directory exists
		dir := filepath.Dir(cfg.DuckDBPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown db driver %q", cfg.DBDriver)
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Verify connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	slog.Info("database connected", "driver", cfg.DBDriver)
	return db, nil
}
