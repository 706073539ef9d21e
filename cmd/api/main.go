package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/pharmacy-booking/internal/api/http"
	"github.com/spec-kit/pharmacy-booking/internal/api/http/handlers"
	"github.com/spec-kit/pharmacy-booking/internal/auth"
	"github.com/spec-kit/pharmacy-booking/internal/config"
	"github.com/spec-kit/pharmacy-booking/internal/events"
	"github.com/spec-kit/pharmacy-booking/internal/ledger"
	"github.com/spec-kit/pharmacy-booking/internal/notify"
	"github.com/spec-kit/pharmacy-booking/internal/observability"
	"github.com/spec-kit/pharmacy-booking/internal/persistence"
	"github.com/spec-kit/pharmacy-booking/internal/registry"
	"github.com/spec-kit/pharmacy-booking/internal/store"
	"github.com/spec-kit/pharmacy-booking/internal/worker"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	records, closeStore, err := persistence.NewRecordStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to init record store", zap.Error(err))
	}
	defer closeStore()

	metrics := observability.NewMetrics()
	collections := store.NewCollections(records, logger, metrics)

	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes)

	reg := registry.New(registry.Dependencies{
		Collections:   collections,
		Hasher:        hasher,
		Logger:        logger,
		AdminEmail:    cfg.Admin.Email,
		AdminPassword: cfg.Admin.Password,
	})

	dispatcher := events.NewInMemoryDispatcher()
	led := ledger.New(ledger.Dependencies{
		Collections: collections,
		Sessions:    reg,
		Dispatcher:  dispatcher,
		Logger:      logger,
	})

	notifier := notify.New(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notifier)

	authMiddleware := auth.NewAuthMiddleware(tokens, reg)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, cfg.Storage.Backend, records),
		Auth:           handlers.NewAuthHandler(reg, tokens),
		Appointments:   handlers.NewAppointmentsHandler(led),
		Admin:          handlers.NewAdminHandler(reg, led),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
