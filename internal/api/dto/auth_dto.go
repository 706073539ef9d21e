package dto

import (
	"time"

	"github.com/spec-kit/pharmacy-booking/internal/domain"
)

// RegisterRequest payload for new customers.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// LoginRequest payload for login. AdminLoginRequest shares the same shape.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileUpdateRequest payload for profile edits.
type ProfileUpdateRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// PasswordChangeRequest payload for password changes.
type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionResponse is the session projection returned to callers.
type SessionResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Admin bool   `json:"isAdmin,omitempty"`
}

// NewSessionResponse maps a domain session.
func NewSessionResponse(session *domain.Session) SessionResponse {
	return SessionResponse{
		ID:    session.ID,
		Name:  session.Name,
		Email: session.Email,
		Phone: session.Phone,
		Admin: session.IsAdmin(),
	}
}
