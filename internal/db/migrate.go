package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is safe to re-run.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS panel_selections (
		report     TEXT PRIMARY KEY
		           CHECK(report IN ('mean-time','start-end','weekday','overtime')),
		entity_id  INTEGER NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	// v2: remember the label so status output works while the API is down.
	`ALTER TABLE panel_selections ADD COLUMN entity_name TEXT NOT NULL DEFAULT ''`,
	`CREATE INDEX IF NOT EXISTS idx_panel_selections_updated ON panel_selections(updated_at)`,
}
