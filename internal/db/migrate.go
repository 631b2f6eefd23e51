package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent so the
// full list re-runs safely on every startup.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		created_at TEXT NOT NULL,
		test_mode  INTEGER NOT NULL DEFAULT 0
	)`,

	// timestamp is stored at epoch-seconds granularity; user_id is NULL
	// for records that predate user stamping.
	`CREATE TABLE IF NOT EXISTS analyses (
		id              TEXT PRIMARY KEY,
		summary         TEXT NOT NULL,
		focus_score     REAL NOT NULL,
		recommendations TEXT NOT NULL,
		timestamp       INTEGER NOT NULL,
		user_id         TEXT
	)`,

	`CREATE INDEX IF NOT EXISTS idx_analyses_user ON analyses(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_analyses_timestamp ON analyses(timestamp)`,
}
