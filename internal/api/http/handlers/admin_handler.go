package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pharmacy-booking/internal/api/dto"
	"github.com/spec-kit/pharmacy-booking/internal/domain"
	"github.com/spec-kit/pharmacy-booking/internal/ledger"
	"github.com/spec-kit/pharmacy-booking/internal/registry"
	apperrors "github.com/spec-kit/pharmacy-booking/pkg/util/errorutil"
)

// AdminHandler exposes the privileged dashboard endpoints. Admin gating is
// enforced by the route middleware.
type AdminHandler struct {
	registry *registry.Registry
	ledger   *ledger.Ledger
}

// NewAdminHandler constructs handler.
func NewAdminHandler(reg *registry.Registry, l *ledger.Ledger) *AdminHandler {
	return &AdminHandler{registry: reg, ledger: l}
}

// Appointments handles GET /admin/appointments.
func (h *AdminHandler) Appointments(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success":      true,
		"appointments": h.ledger.AllAppointments(c.Context()),
	})
}

// UpdateStatus handles PATCH /admin/appointments/:id/status.
func (h *AdminHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidation("Stato non valido")
	}

	appointment, err := h.ledger.UpdateStatus(c.Context(), c.Params("id"), domain.AppointmentStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success":     true,
		"message":     "Stato aggiornato con successo!",
		"appointment": appointment,
	})
}

// DeleteAppointment handles DELETE /admin/appointments/:id.
func (h *AdminHandler) DeleteAppointment(c *fiber.Ctx) error {
	if err := h.ledger.AdminDelete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Appuntamento eliminato con successo!",
	})
}

// Users handles GET /admin/users.
func (h *AdminHandler) Users(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"users":   h.registry.Accounts(c.Context()),
	})
}

// Stats handles GET /admin/stats.
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"stats":   h.ledger.Stats(c.Context()),
	})
}
