package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pharmacy-booking/internal/api/dto"
	"github.com/spec-kit/pharmacy-booking/internal/auth"
	"github.com/spec-kit/pharmacy-booking/internal/domain"
	"github.com/spec-kit/pharmacy-booking/internal/registry"
	apperrors "github.com/spec-kit/pharmacy-booking/pkg/util/errorutil"
)

// AuthHandler exposes the account registry endpoints.
type AuthHandler struct {
	registry *registry.Registry
	tokens   *auth.TokenManager
}

// NewAuthHandler constructs handler.
func NewAuthHandler(reg *registry.Registry, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{registry: reg, tokens: tokens}
}

func (h *AuthHandler) sessionEnvelope(c *fiber.Ctx, status int, message string, session *domain.Session) error {
	token, expiresAt, err := h.tokens.GenerateToken(session.ID, session.IsAdmin())
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"message": message,
		"session": dto.NewSessionResponse(session),
		"auth":    dto.AuthResponse{Token: token, ExpiresAt: expiresAt},
	})
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidation("Tutti i campi sono obbligatori")
	}

	session, err := h.registry.Register(c.Context(), req.Name, req.Email, req.Phone, req.Password)
	if err != nil {
		return err
	}
	return h.sessionEnvelope(c, http.StatusCreated, "Account creato con successo!", session)
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidation("Email e password sono obbligatori")
	}

	session, err := h.registry.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return h.sessionEnvelope(c, http.StatusOK, "Login effettuato con successo!", session)
}

// AdminLogin handles POST /auth/admin/login.
func (h *AuthHandler) AdminLogin(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidation("Email e password sono obbligatori")
	}

	session, err := h.registry.AdminLogin(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return h.sessionEnvelope(c, http.StatusOK, "Login admin effettuato con successo!", session)
}

// Session handles GET /auth/session.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	session, _ := auth.SessionFromContext(c)
	return c.JSON(fiber.Map{
		"success": true,
		"session": dto.NewSessionResponse(session),
	})
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.registry.Logout(c.Context()); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Logout effettuato con successo!",
	})
}

// UpdateProfile handles PUT /auth/profile.
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	var req dto.ProfileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidation("Tutti i campi sono obbligatori")
	}

	session, err := h.registry.UpdateProfile(c.Context(), req.Name, req.Email, req.Phone)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Profilo aggiornato con successo!",
		"session": dto.NewSessionResponse(session),
	})
}

// ChangePassword handles POST /auth/password/change.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var req dto.PasswordChangeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidation("Tutti i campi sono obbligatori")
	}

	if err := h.registry.ChangePassword(c.Context(), req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Password modificata con successo!",
	})
}
