package db

import (
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Migrate brings the schema up to date. Postgres goes through goose with the
// embedded migration files; duckdb has no goose dialect, so it gets the same
// schema from an idempotent statement list. Safe to call multiple times.
func Migrate(db *sql.DB, driver string) error {
	slog.Info("running database migrations", "driver", driver)

	if driver == "duckdb" {
		for _, stmt := range duckdbSchema {
			if _, err := db.Exec(stmt); err != nil {
				return fmt.Errorf("migration failed: %w\nstatement: %s", err, stmt)
			}
		}
		slog.Info("database migrations complete")
		return nil
	}

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	slog.Info("database migrations complete")
	return nil
}

var duckdbSchema = []string{
	`CREATE SEQUENCE IF NOT EXISTS accounts_id_seq`,

	`CREATE TABLE IF NOT EXISTS accounts (
		id INTEGER PRIMARY KEY DEFAULT nextval('accounts_id_seq'),
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		address TEXT NOT NULL,
		phone_number TEXT NOT NULL,
		date_joined DATE NOT NULL DEFAULT current_date
	)`,
}
