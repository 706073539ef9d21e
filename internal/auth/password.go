package auth

import "golang.org/x/crypto/bcrypt"

// Hasher abstracts password hashing so the verification mechanism can be
// swapped without touching the success/failure contract of the registry.
type Hasher interface {
	Hash(password string) (string, error)
	Compare(hashed, plain string) error
}

// BcryptHasher hashes passwords with bcrypt at a configured cost.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher builds a hasher. Costs below bcrypt's minimum fall back to
// the library default.
func NewBcryptHasher(cost int) *BcryptHasher {
	return &BcryptHasher{cost: cost}
}

// Hash hashes a plaintext password.
func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare verifies a password against its hashed value.
func (h *BcryptHasher) Compare(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}
