// Package registry enforces account identity and session invariants: email
// uniqueness over the normalized form, credential verification, and the
// single currentUser session slot.
package registry

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/pharmacy-booking/internal/auth"
	"github.com/spec-kit/pharmacy-booking/internal/domain"
	"github.com/spec-kit/pharmacy-booking/internal/store"
	"github.com/spec-kit/pharmacy-booking/internal/validate"
	apperrors "github.com/spec-kit/pharmacy-booking/pkg/util/errorutil"
)

// Registry coordinates registration, login and profile flows.
type Registry struct {
	mu            sync.Mutex
	collections   *store.Collections
	hasher        auth.Hasher
	logger        *zap.Logger
	adminEmail    string
	adminPassword string
}

// Dependencies bundles what the registry needs.
type Dependencies struct {
	Collections   *store.Collections
	Hasher        auth.Hasher
	Logger        *zap.Logger
	AdminEmail    string
	AdminPassword string
}

// New builds the registry.
func New(deps Dependencies) *Registry {
	return &Registry{
		collections:   deps.Collections,
		hasher:        deps.Hasher,
		logger:        deps.Logger,
		adminEmail:    deps.AdminEmail,
		adminPassword: deps.AdminPassword,
	}
}

// Register creates a new account and establishes its session.
func (r *Registry) Register(ctx context.Context, name, email, phone, password string) (*domain.Session, error) {
	if !validate.Name(name) {
		return nil, apperrors.NewValidation("Il nome deve contenere almeno 2 caratteri")
	}
	if !validate.Email(email) {
		return nil, apperrors.NewValidation("Formato email non valido")
	}
	if !validate.Phone(phone) {
		return nil, apperrors.NewValidation("Formato telefono non valido (es: 333 123 4567)")
	}
	if !validate.Password(password) {
		return nil, apperrors.NewValidation("La password deve contenere almeno 6 caratteri")
	}

	normalized := validate.Sanitize(validate.NormalizeEmail(email))

	r.mu.Lock()
	defer r.mu.Unlock()

	accounts := r.collections.Accounts(ctx)
	for i := range accounts {
		if accounts[i].Email == normalized {
			return nil, apperrors.NewDuplicateEmail("Email già registrata")
		}
	}

	hash, err := r.hasher.Hash(password)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	account := domain.Account{
		ID:           uuid.NewString(),
		Name:         validate.Sanitize(name),
		Email:        normalized,
		Phone:        validate.Sanitize(phone),
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	accounts = append(accounts, account)

	if err := r.collections.SaveAccounts(ctx, accounts); err != nil {
		return nil, apperrors.NewStorageFailure("Errore durante la registrazione. Riprova.", err)
	}

	session := domain.NewSession(&account)
	if err := r.collections.SaveSession(ctx, session); err != nil {
		return nil, apperrors.NewStorageFailure("Errore durante la registrazione. Riprova.", err)
	}

	r.logger.Info("account registered", zap.String("account_id", account.ID))
	return session, nil
}

// Login authenticates a customer and establishes the session.
func (r *Registry) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	if email == "" || password == "" {
		return nil, apperrors.NewValidation("Email e password sono obbligatori")
	}

	normalized := validate.Sanitize(validate.NormalizeEmail(email))

	r.mu.Lock()
	defer r.mu.Unlock()

	accounts := r.collections.Accounts(ctx)
	for i := range accounts {
		if accounts[i].Email != normalized {
			continue
		}
		if r.hasher.Compare(accounts[i].PasswordHash, password) != nil {
			break
		}
		session := domain.NewSession(&accounts[i])
		if err := r.collections.SaveSession(ctx, session); err != nil {
			return nil, apperrors.NewStorageFailure("Errore durante il login. Riprova.", err)
		}
		return session, nil
	}
	return nil, apperrors.NewInvalidCredentials("Email o password non corretti")
}

// AdminLogin installs the synthetic admin session when the configured
// credentials match. No account record is involved.
func (r *Registry) AdminLogin(ctx context.Context, email, password string) (*domain.Session, error) {
	if email != r.adminEmail || password != r.adminPassword {
		return nil, apperrors.NewInvalidCredentials("Credenziali admin non corrette")
	}

	session := &domain.Session{
		ID:    domain.AdminSessionID,
		Name:  domain.AdminDisplayName,
		Email: r.adminEmail,
		Admin: true,
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.collections.SaveSession(ctx, session); err != nil {
		return nil, apperrors.NewStorageFailure("Errore durante il login. Riprova.", err)
	}
	return session, nil
}

// CurrentSession returns the active session, or nil when none exists.
func (r *Registry) CurrentSession(ctx context.Context) *domain.Session {
	return r.collections.Session(ctx)
}

// IsAdmin reports whether the active session is the synthetic admin session.
func (r *Registry) IsAdmin(ctx context.Context) bool {
	return r.CurrentSession(ctx).IsAdmin()
}

// Logout destroys the active session.
func (r *Registry) Logout(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.collections.ClearSession(ctx); err != nil {
		return apperrors.NewStorageFailure("Errore durante il logout. Riprova.", err)
	}
	return nil
}

// UpdateProfile re-validates and mutates the caller's account record, then
// re-derives the session from the updated record.
func (r *Registry) UpdateProfile(ctx context.Context, name, email, phone string) (*domain.Session, error) {
	session := r.collections.Session(ctx)
	if session == nil {
		return nil, apperrors.NewUnauthenticated("Utente non autenticato")
	}

	if !validate.Name(name) {
		return nil, apperrors.NewValidation("Il nome deve contenere almeno 2 caratteri")
	}
	if !validate.Email(email) {
		return nil, apperrors.NewValidation("Formato email non valido")
	}
	if !validate.Phone(phone) {
		return nil, apperrors.NewValidation("Formato telefono non valido")
	}

	normalized := validate.Sanitize(validate.NormalizeEmail(email))

	r.mu.Lock()
	defer r.mu.Unlock()

	accounts := r.collections.Accounts(ctx)
	index := -1
	for i := range accounts {
		if accounts[i].ID == session.ID {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, apperrors.NewNotFound("Utente non trovato")
	}
	for i := range accounts {
		if i != index && accounts[i].Email == normalized {
			return nil, apperrors.NewDuplicateEmail("Email già utilizzata da un altro account")
		}
	}

	accounts[index].Name = validate.Sanitize(name)
	accounts[index].Email = normalized
	accounts[index].Phone = validate.Sanitize(phone)

	if err := r.collections.SaveAccounts(ctx, accounts); err != nil {
		return nil, apperrors.NewStorageFailure("Errore durante l'aggiornamento. Riprova.", err)
	}

	updated := domain.NewSession(&accounts[index])
	if err := r.collections.SaveSession(ctx, updated); err != nil {
		return nil, apperrors.NewStorageFailure("Errore durante l'aggiornamento. Riprova.", err)
	}
	return updated, nil
}

// ChangePassword verifies the current password before storing the new hash.
// The session is unaffected.
func (r *Registry) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	session := r.collections.Session(ctx)
	if session == nil {
		return apperrors.NewUnauthenticated("Utente non autenticato")
	}

	if !validate.Password(newPassword) {
		return apperrors.NewValidation("La nuova password deve contenere almeno 6 caratteri")
	}
	if currentPassword == newPassword {
		return apperrors.NewSamePassword("La nuova password deve essere diversa da quella attuale")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	accounts := r.collections.Accounts(ctx)
	index := -1
	for i := range accounts {
		if accounts[i].ID == session.ID {
			index = i
			break
		}
	}
	if index == -1 {
		return apperrors.NewNotFound("Utente non trovato")
	}

	if r.hasher.Compare(accounts[index].PasswordHash, currentPassword) != nil {
		return apperrors.NewWrongPassword("Password attuale non corretta")
	}

	hash, err := r.hasher.Hash(newPassword)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	accounts[index].PasswordHash = hash

	if err := r.collections.SaveAccounts(ctx, accounts); err != nil {
		return apperrors.NewStorageFailure("Errore durante la modifica. Riprova.", err)
	}
	return nil
}

// Accounts lists every account without credential material.
func (r *Registry) Accounts(ctx context.Context) []domain.AccountSummary {
	accounts := r.collections.Accounts(ctx)
	summaries := make([]domain.AccountSummary, 0, len(accounts))
	for i := range accounts {
		summaries = append(summaries, accounts[i].Summary())
	}
	return summaries
}
