// Command seed populates the configured record store with the demo dataset.
package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/spec-kit/pharmacy-booking/internal/auth"
	"github.com/spec-kit/pharmacy-booking/internal/config"
	"github.com/spec-kit/pharmacy-booking/internal/observability"
	"github.com/spec-kit/pharmacy-booking/internal/persistence"
	"github.com/spec-kit/pharmacy-booking/internal/seed"
	"github.com/spec-kit/pharmacy-booking/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App.Env)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()

	records, closeStore, err := persistence.NewRecordStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to init record store", zap.Error(err))
	}
	defer closeStore()

	if cfg.Storage.Backend == config.BackendMemory {
		logger.Warn("seeding the in-memory backend; data will not outlive this process")
	}

	collections := store.NewCollections(records, logger, nil)
	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	clients, appointments, err := seed.Load(ctx, collections, hasher)
	if err != nil {
		logger.Fatal("seeding failed", zap.Error(err))
	}

	logger.Info("database seeded",
		zap.Int("clients", clients),
		zap.Int("appointments", appointments))
}
