package db

import (
	"database/sql"
	"fmt"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS generation_runs (
		id            TEXT PRIMARY KEY,
		event_name    TEXT NOT NULL,
		event_date    TEXT NOT NULL,
		event_type    TEXT NOT NULL,
		item_count    INTEGER NOT NULL,
		failed_count  INTEGER NOT NULL,
		output_path   TEXT NOT NULL,
		started_at    TEXT NOT NULL,
		finished_at   TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_generation_runs_started
		ON generation_runs(started_at DESC)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
