package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pharmacy-booking/internal/store"
)

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	backend     string
	records     store.RecordStore
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version, backend string, records store.RecordStore) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, backend: backend, records: records}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports service readiness by pinging the record store backend when
// it supports connectivity checks.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	storageStatus := "ok"
	ready := true
	if pinger, ok := h.records.(interface{ Ping(context.Context) error }); ok {
		if err := pinger.Ping(ctx); err != nil {
			storageStatus = err.Error()
			ready = false
		}
	}

	body := fiber.Map{
		"status": "ready",
		"dependencies": fiber.Map{
			"storage": fiber.Map{
				"backend": h.backend,
				"status":  storageStatus,
			},
		},
	}
	if ready {
		return c.JSON(body)
	}
	body["status"] = "not_ready"
	return c.Status(fiber.StatusServiceUnavailable).JSON(body)
}
