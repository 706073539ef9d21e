package persistence

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/pharmacy-booking/internal/config"
	"github.com/spec-kit/pharmacy-booking/internal/store"
)

// NewRecordStore builds the configured record store backend and returns it
// together with a cleanup function releasing any connections.
func NewRecordStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (store.RecordStore, func(), error) {
	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		pg, err := NewPostgres(ctx, cfg.Postgres, logger)
		if err != nil {
			return nil, nil, err
		}
		if cfg.Postgres.RunMigrations {
			if err := RunMigrations(ctx, pg.Pool, logger); err != nil {
				pg.Close()
				return nil, nil, err
			}
		}
		return store.NewPostgresStore(pg.Pool), pg.Close, nil
	case config.BackendRedis:
		rd := NewRedis(cfg.Redis, logger)
		return store.NewRedisStore(rd.Client, cfg.Redis.KeyPrefix), rd.Close, nil
	default:
		logger.Info("using in-memory record store")
		return store.NewMemoryStore(), func() {}, nil
	}
}
