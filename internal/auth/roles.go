package auth

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/pharmacy-booking/pkg/util/errorutil"
)

// RequireAuthenticated ensures a session was loaded by the auth middleware.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := SessionFromContext(c); !ok {
			return apperrors.NewUnauthenticated("Utente non autenticato")
		}
		return c.Next()
	}
}

// RequireAdmin ensures the caller holds the synthetic admin session.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, ok := SessionFromContext(c)
		if !ok || !session.IsAdmin() {
			return apperrors.NewUnauthenticated("Utente non autenticato")
		}
		return c.Next()
	}
}
