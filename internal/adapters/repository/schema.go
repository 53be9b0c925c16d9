package repository

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// The DDL sticks to TEXT columns and constraints that postgres and sqlite
// interpret identically, so one schema serves both drivers. Dates are stored
// as YYYY-MM-DD strings, which order correctly under plain string comparison.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS habits (
		name        TEXT PRIMARY KEY,
		description TEXT NOT NULL DEFAULT '',
		periodicity TEXT NOT NULL,
		created_at  TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS completions (
		id              TEXT PRIMARY KEY,
		habit_name      TEXT NOT NULL REFERENCES habits(name),
		completion_date TEXT NOT NULL,
		UNIQUE (habit_name, completion_date)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_completions_date ON completions (completion_date)`,
}

// EnsureSchema creates the tables on first start.
func EnsureSchema(db *sqlx.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
