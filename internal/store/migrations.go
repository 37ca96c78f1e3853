package store

import (
	"context"
	"database/sql"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS simulations (
		id         TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		request    TEXT NOT NULL,
		response   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_simulations_created_at ON simulations(created_at)`,
}

func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
