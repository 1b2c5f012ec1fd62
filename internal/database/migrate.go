package database

import (
	"context"
	"fmt"
)

// schema is applied in order; every statement is idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS farms (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		size        DOUBLE PRECISION NOT NULL CHECK (size > 0),
		unit        TEXT NOT NULL DEFAULT 'hectares',
		soil_health INTEGER NOT NULL DEFAULT 0,
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS recommendation_logs (
		id                   TEXT PRIMARY KEY,
		farm_name            TEXT NOT NULL,
		crop_type            TEXT NOT NULL DEFAULT '',
		primary_fertilizer   TEXT NOT NULL,
		secondary_fertilizer TEXT NOT NULL,
		status               TEXT NOT NULL,
		total_inr            BIGINT NOT NULL DEFAULT 0,
		created_at           TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS recommendation_logs_created_at_idx
		ON recommendation_logs (created_at DESC)`,
}

// Migrate creates the tables the service needs if they do not exist.
func (db *Database) Migrate(ctx context.Context) error {
	for i, stmt := range schema {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement %d: %w", i+1, err)
		}
	}
	return nil
}
