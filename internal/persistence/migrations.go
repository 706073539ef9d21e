package persistence

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// The record store keeps whole collections as JSON blobs, so the postgres
// backend needs exactly one table.
const createRecordBlobs = `
CREATE TABLE IF NOT EXISTS record_blobs (
    collection TEXT PRIMARY KEY,
    data       JSONB NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// RunMigrations creates the record blob table when missing.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	if pool == nil {
		logger.Warn("no postgres pool available; skipping migrations")
		return nil
	}

	if _, err := pool.Exec(ctx, createRecordBlobs); err != nil {
		return err
	}
	logger.Info("migrations applied")
	return nil
}
