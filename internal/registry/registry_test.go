package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/pharmacy-booking/internal/auth"
	"github.com/spec-kit/pharmacy-booking/internal/store"
	apperrors "github.com/spec-kit/pharmacy-booking/pkg/util/errorutil"
)

const (
	testAdminEmail    = "admin@farmacia.it"
	testAdminPassword = "admin123"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	collections := store.NewCollections(store.NewMemoryStore(), zap.NewNop(), nil)
	return New(Dependencies{
		Collections:   collections,
		Hasher:        auth.NewBcryptHasher(bcrypt.MinCost),
		Logger:        zap.NewNop(),
		AdminEmail:    testAdminEmail,
		AdminPassword: testAdminPassword,
	})
}

func registerMario(t *testing.T, r *Registry) string {
	t.Helper()
	session, err := r.Register(context.Background(), "Mario Rossi", "mario@x.it", "333 1234567", "secret1")
	require.NoError(t, err)
	return session.ID
}

func TestRegisterThenLoginKeepsSessionID(t *testing.T) {
	r := newTestRegistry(t)
	ctx := context.Background()

	registeredID := registerMario(t, r)
	require.NotEmpty(t, registeredID)

	session, err := r.Login(ctx, "mario@x.it", "secret1")
	require.NoError(t, err)
	assert.Equal(t, registeredID, session.ID)
	assert.Equal(t, "Mario Rossi", session.Name)
}

func TestRegisterValidation(t *testing.T) {
	r := newTestRegistry(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		args     [4]string
		wantCode string
	}{
		{"short name", [4]string{"M", "mario@x.it", "333 1234567", "secret1"}, apperrors.CodeValidationFailed},
		{"bad email", [4]string{"Mario Rossi", "not-an-email", "333 1234567", "secret1"}, apperrors.CodeValidationFailed},
		{"bad phone", [4]string{"Mario Rossi", "mario@x.it", "12", "secret1"}, apperrors.CodeValidationFailed},
		{"short password", [4]string{"Mario Rossi", "mario@x.it", "333 1234567", "12345"}, apperrors.CodeValidationFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Register(ctx, tt.args[0], tt.args[1], tt.args[2], tt.args[3])
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, apperrors.CodeOf(err))
		})
	}
}

func TestRegisterDuplicateNormalizedEmail(t *testing.T) {
	r := newTestRegistry(t)
	ctx := context.Background()

	registerMario(t, r)

	_, err := r.Register(ctx, "Altro Mario", "  MARIO@X.IT  ", "347 234 5678", "secret2")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeDuplicateEmail, apperrors.CodeOf(err))
}

func TestLoginFailures(t *testing.T) {
	r := newTestRegistry(t)
	ctx := context.Background()

	registerMario(t, r)

	_, err := r.Login(ctx, "mario@x.it", "wrongpass")
	assert.Equal(t, apperrors.CodeInvalidCredentials, apperrors.CodeOf(err))

	_, err = r.Login(ctx, "nessuno@x.it", "secret1")
	assert.Equal(t, apperrors.CodeInvalidCredentials, apperrors.CodeOf(err))

	_, err = r.Login(ctx, "", "")
	assert.Equal(t, apperrors.CodeValidationFailed, apperrors.CodeOf(err))
}

func TestAdminLogin(t *testing.T) {
	r := newTestRegistry(t)
	ctx := context.Background()

	session, err := r.AdminLogin(ctx, testAdminEmail, testAdminPassword)
	require.NoError(t, err)
	assert.True(t, session.IsAdmin())
	assert.True(t, r.IsAdmin(ctx))
	// No account record is created by the synthetic login.
	assert.Empty(t, r.Accounts(ctx))

	_, err = r.AdminLogin(ctx, testAdminEmail, "wrong")
	assert.Equal(t, apperrors.CodeInvalidCredentials, apperrors.CodeOf(err))
}

func TestAdminEmailRegistrationGrantsNoAdmin(t *testing.T) {
	r := newTestRegistry(t)
	ctx := context.Background()

	session, err := r.Register(ctx, "Impostore", testAdminEmail, "333 1234567", "secret1")
	require.NoError(t, err)
	assert.False(t, session.IsAdmin())
	assert.False(t, r.IsAdmin(ctx))
}

func TestLogoutDestroysSession(t *testing.T) {
	r := newTestRegistry(t)
	ctx := context.Background()

	registerMario(t, r)
	require.NotNil(t, r.CurrentSession(ctx))

	require.NoError(t, r.Logout(ctx))
	assert.Nil(t, r.CurrentSession(ctx))
}

func TestUpdateProfile(t *testing.T) {
	r := newTestRegistry(t)
	ctx := context.Background()

	id := registerMario(t, r)

	session, err := r.UpdateProfile(ctx, "Mario Bianchi", "mario.b@x.it", "347 234 5678")
	require.NoError(t, err)
	assert.Equal(t, id, session.ID)
	assert.Equal(t, "Mario Bianchi", session.Name)
	assert.Equal(t, "mario.b@x.it", session.Email)

	// Login works with the new email afterwards.
	login, err := r.Login(ctx, "mario.b@x.it", "secret1")
	require.NoError(t, err)
	assert.Equal(t, id, login.ID)
}

func TestUpdateProfileDuplicateEmail(t *testing.T) {
	r := newTestRegistry(t)
	ctx := context.Background()

	registerMario(t, r)
	_, err := r.Register(ctx, "Laura Bianchi", "laura@x.it", "347 234 5678", "secret2")
	require.NoError(t, err)

	// Laura owns the session now; taking Mario's email must fail.
	_, err = r.UpdateProfile(ctx, "Laura Bianchi", "mario@x.it", "347 234 5678")
	assert.Equal(t, apperrors.CodeDuplicateEmail, apperrors.CodeOf(err))
}

func TestUpdateProfileUnauthenticated(t *testing.T) {
	r := newTestRegistry(t)

	_, err := r.UpdateProfile(context.Background(), "Mario Rossi", "mario@x.it", "333 1234567")
	assert.Equal(t, apperrors.CodeUnauthenticated, apperrors.CodeOf(err))
}

func TestChangePassword(t *testing.T) {
	r := newTestRegistry(t)
	ctx := context.Background()

	registerMario(t, r)

	err := r.ChangePassword(ctx, "secret1", "12345")
	assert.Equal(t, apperrors.CodeValidationFailed, apperrors.CodeOf(err))

	err = r.ChangePassword(ctx, "secret1", "secret1")
	assert.Equal(t, apperrors.CodeSamePassword, apperrors.CodeOf(err))

	err = r.ChangePassword(ctx, "wrongpass", "newsecret")
	assert.Equal(t, apperrors.CodeWrongPassword, apperrors.CodeOf(err))

	require.NoError(t, r.ChangePassword(ctx, "secret1", "newsecret"))

	_, err = r.Login(ctx, "mario@x.it", "secret1")
	assert.Equal(t, apperrors.CodeInvalidCredentials, apperrors.CodeOf(err))

	_, err = r.Login(ctx, "mario@x.it", "newsecret")
	assert.NoError(t, err)
}

func TestChangePasswordUnauthenticated(t *testing.T) {
	r := newTestRegistry(t)

	err := r.ChangePassword(context.Background(), "secret1", "newsecret")
	assert.Equal(t, apperrors.CodeUnauthenticated, apperrors.CodeOf(err))
}

func TestAccountsExcludeCredentials(t *testing.T) {
	r := newTestRegistry(t)
	ctx := context.Background()

	registerMario(t, r)

	accounts := r.Accounts(ctx)
	require.Len(t, accounts, 1)
	assert.Equal(t, "mario@x.it", accounts[0].Email)
	assert.Equal(t, "Mario Rossi", accounts[0].Name)
}
