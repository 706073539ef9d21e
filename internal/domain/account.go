package domain

import "time"

// Account is the identity record for a registered pharmacy customer.
// JSON tags mirror the persisted layout of the "users" collection; the
// password field holds a bcrypt hash, never cleartext.
type Account struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"password"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AccountSummary is an Account stripped of credential material, used for
// admin listings.
type AccountSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

// Summary projects the account without its password hash.
func (a *Account) Summary() AccountSummary {
	return AccountSummary{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Phone:     a.Phone,
		CreatedAt: a.CreatedAt,
	}
}
