package postgres

import (
	"context"
	"fmt"
)

// Migrate creates the vault schema if it does not exist yet.
// Idempotent; run at startup.
func (db *DB) Migrate(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS vaults (
			id                        INT PRIMARY KEY,
			status                    TEXT NOT NULL,
			total_shares              TEXT NOT NULL,
			principal                 TEXT NOT NULL,
			assets                    JSONB NOT NULL,
			checked_out               JSONB NOT NULL,
			valuations                JSONB NOT NULL,
			accounts                  JSONB NOT NULL,
			loss                      JSONB NOT NULL,
			recon                     JSONB,
			staleness_window_seconds  BIGINT NOT NULL,
			updated_at                TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS price_feeds (
			asset_key TEXT PRIMARY KEY,
			doc       JSONB NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS capability_tokens (
			id        UUID PRIMARY KEY,
			role      TEXT NOT NULL,
			issued_at TIMESTAMPTZ NOT NULL,
			revoked   BOOLEAN NOT NULL DEFAULT FALSE,
			frozen    BOOLEAN NOT NULL DEFAULT FALSE
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
