package domain

// AdminSessionID identifies the synthetic admin session. It never appears in
// the users collection.
const AdminSessionID = "admin"

// AdminDisplayName is the display name installed by the admin login.
const AdminDisplayName = "Amministratore"

// Session is the authenticated identity projection held in the single
// currentUser slot of the record store. It carries no credential material.
type Session struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Admin bool   `json:"isAdmin,omitempty"`
}

// NewSession derives a session from an account record.
func NewSession(account *Account) *Session {
	return &Session{
		ID:    account.ID,
		Name:  account.Name,
		Email: account.Email,
		Phone: account.Phone,
	}
}

// IsAdmin reports whether this is the synthetic admin session. Admin
// capability is gated on the session identity, not the email string, so a
// customer who registers with the admin email address gains nothing.
func (s *Session) IsAdmin() bool {
	return s != nil && s.ID == AdminSessionID
}
