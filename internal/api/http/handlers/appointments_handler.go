package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pharmacy-booking/internal/api/dto"
	"github.com/spec-kit/pharmacy-booking/internal/ledger"
	apperrors "github.com/spec-kit/pharmacy-booking/pkg/util/errorutil"
)

// AppointmentsHandler exposes the self-service booking endpoints.
type AppointmentsHandler struct {
	ledger *ledger.Ledger
}

// NewAppointmentsHandler constructs handler.
func NewAppointmentsHandler(l *ledger.Ledger) *AppointmentsHandler {
	return &AppointmentsHandler{ledger: l}
}

// Slots handles GET /appointments/slots?date=YYYY-MM-DD.
func (h *AppointmentsHandler) Slots(c *fiber.Ctx) error {
	date := c.Query("date")
	if date == "" {
		return apperrors.NewValidation("La data è obbligatoria")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"date":    date,
		"slots":   h.ledger.AvailableSlots(c.Context(), date),
	})
}

// List handles GET /appointments.
func (h *AppointmentsHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success":      true,
		"appointments": h.ledger.AppointmentsFor(c.Context()),
	})
}

// Create handles POST /appointments.
func (h *AppointmentsHandler) Create(c *fiber.Ctx) error {
	var req dto.AppointmentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidation("Tutti i campi sono obbligatori")
	}

	appointment, err := h.ledger.Book(c.Context(), req.Date, req.Time, req.Service)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success":     true,
		"message":     "Appuntamento prenotato con successo!",
		"appointment": appointment,
	})
}

// Delete handles DELETE /appointments/:id. The removal is idempotent and
// scoped to the caller's own appointments.
func (h *AppointmentsHandler) Delete(c *fiber.Ctx) error {
	if err := h.ledger.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Appuntamento eliminato con successo!",
	})
}
