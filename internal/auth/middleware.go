package auth

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pharmacy-booking/internal/domain"
	apperrors "github.com/spec-kit/pharmacy-booking/pkg/util/errorutil"
)

const principalKey = "auth_principal"

// SessionSource resolves the currently active session from the record store.
type SessionSource interface {
	CurrentSession(ctx context.Context) *domain.Session
}

// AuthMiddleware validates bearer tokens and loads the active session. A
// token whose subject no longer matches the stored currentUser slot is
// rejected; the store-held session is authoritative.
type AuthMiddleware struct {
	tokens   *TokenManager
	sessions SessionSource
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, sessions SessionSource) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, sessions: sessions}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthenticated("Utente non autenticato")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthenticated("Utente non autenticato")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthenticated("Utente non autenticato")
	}

	session := m.sessions.CurrentSession(c.Context())
	if session == nil || session.ID != claims.SessionID {
		return apperrors.NewUnauthenticated("Utente non autenticato")
	}

	c.Locals(principalKey, session)
	return c.Next()
}

// SessionFromContext retrieves the authenticated session.
func SessionFromContext(c *fiber.Ctx) (*domain.Session, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	session, ok := val.(*domain.Session)
	return session, ok
}
