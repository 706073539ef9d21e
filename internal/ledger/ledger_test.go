package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/pharmacy-booking/internal/auth"
	"github.com/spec-kit/pharmacy-booking/internal/domain"
	"github.com/spec-kit/pharmacy-booking/internal/events"
	"github.com/spec-kit/pharmacy-booking/internal/registry"
	"github.com/spec-kit/pharmacy-booking/internal/store"
	apperrors "github.com/spec-kit/pharmacy-booking/pkg/util/errorutil"
)

func newTestLedger(t *testing.T) (*Ledger, *registry.Registry, *store.Collections) {
	t.Helper()
	collections := store.NewCollections(store.NewMemoryStore(), zap.NewNop(), nil)
	reg := registry.New(registry.Dependencies{
		Collections:   collections,
		Hasher:        auth.NewBcryptHasher(bcrypt.MinCost),
		Logger:        zap.NewNop(),
		AdminEmail:    "admin@farmacia.it",
		AdminPassword: "admin123",
	})
	led := New(Dependencies{
		Collections: collections,
		Sessions:    reg,
		Dispatcher:  events.NewInMemoryDispatcher(),
		Logger:      zap.NewNop(),
	})
	return led, reg, collections
}

func registerUser(t *testing.T, reg *registry.Registry, name, email string) *domain.Session {
	t.Helper()
	session, err := reg.Register(context.Background(), name, email, "333 1234567", "secret1")
	require.NoError(t, err)
	return session
}

func TestBookExcludesSlot(t *testing.T) {
	led, reg, _ := newTestLedger(t)
	ctx := context.Background()

	session := registerUser(t, reg, "Mario Rossi", "mario@x.it")

	appointment, err := led.Book(ctx, "2025-12-01", "09:00", "Vaccinazione")
	require.NoError(t, err)
	assert.Equal(t, session.ID, appointment.UserID)
	assert.Equal(t, domain.StatusPending, appointment.Status)
	assert.NotEmpty(t, appointment.ID)

	slots := led.AvailableSlots(ctx, "2025-12-01")
	assert.Equal(t, []string{"10:00", "11:00", "14:00", "15:00", "16:00", "17:00"}, slots)

	// Other dates are unaffected.
	assert.Equal(t, domain.TimeSlots, led.AvailableSlots(ctx, "2025-12-02"))
}

func TestBookSlotTakenAcrossOwners(t *testing.T) {
	led, reg, _ := newTestLedger(t)
	ctx := context.Background()

	registerUser(t, reg, "Mario Rossi", "mario@x.it")
	_, err := led.Book(ctx, "2025-12-01", "09:00", "Vaccinazione")
	require.NoError(t, err)

	// A different account books the same slot.
	registerUser(t, reg, "Laura Bianchi", "laura@x.it")
	_, err = led.Book(ctx, "2025-12-01", "09:00", "Test Rapido")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeSlotTaken, apperrors.CodeOf(err))
}

func TestCancelledAppointmentReleasesSlot(t *testing.T) {
	led, reg, _ := newTestLedger(t)
	ctx := context.Background()

	registerUser(t, reg, "Mario Rossi", "mario@x.it")
	appointment, err := led.Book(ctx, "2025-12-01", "09:00", "Vaccinazione")
	require.NoError(t, err)

	updated, err := led.UpdateStatus(ctx, appointment.ID, domain.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, updated.Status)
	assert.NotNil(t, updated.UpdatedAt)

	assert.Contains(t, led.AvailableSlots(ctx, "2025-12-01"), "09:00")

	// Rebooking the released slot succeeds.
	_, err = led.Book(ctx, "2025-12-01", "09:00", "Consulenza Farmaceutica")
	assert.NoError(t, err)
}

func TestBookValidation(t *testing.T) {
	led, reg, _ := newTestLedger(t)
	ctx := context.Background()

	registerUser(t, reg, "Mario Rossi", "mario@x.it")

	for _, args := range [][3]string{
		{"", "09:00", "Vaccinazione"},
		{"2025-12-01", "", "Vaccinazione"},
		{"2025-12-01", "09:00", ""},
	} {
		_, err := led.Book(ctx, args[0], args[1], args[2])
		assert.Equal(t, apperrors.CodeValidationFailed, apperrors.CodeOf(err))
	}
}

func TestBookUnauthenticated(t *testing.T) {
	led, _, _ := newTestLedger(t)

	_, err := led.Book(context.Background(), "2025-12-01", "09:00", "Vaccinazione")
	assert.Equal(t, apperrors.CodeUnauthenticated, apperrors.CodeOf(err))
}

func TestDeleteScopedToOwner(t *testing.T) {
	led, reg, _ := newTestLedger(t)
	ctx := context.Background()

	registerUser(t, reg, "Mario Rossi", "mario@x.it")
	appointment, err := led.Book(ctx, "2025-12-01", "09:00", "Vaccinazione")
	require.NoError(t, err)

	// A different account cannot remove Mario's booking; the call still
	// reports success.
	registerUser(t, reg, "Laura Bianchi", "laura@x.it")
	require.NoError(t, led.Delete(ctx, appointment.ID))

	all := led.AllAppointments(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, appointment.ID, all[0].ID)
}

func TestDeleteIdempotent(t *testing.T) {
	led, reg, _ := newTestLedger(t)
	ctx := context.Background()

	registerUser(t, reg, "Mario Rossi", "mario@x.it")
	appointment, err := led.Book(ctx, "2025-12-01", "09:00", "Vaccinazione")
	require.NoError(t, err)

	require.NoError(t, led.Delete(ctx, appointment.ID))
	require.NoError(t, led.Delete(ctx, appointment.ID))
	assert.Empty(t, led.AppointmentsFor(ctx))
}

func TestAppointmentsForListsAllStatuses(t *testing.T) {
	led, reg, _ := newTestLedger(t)
	ctx := context.Background()

	registerUser(t, reg, "Mario Rossi", "mario@x.it")
	first, err := led.Book(ctx, "2025-12-01", "09:00", "Vaccinazione")
	require.NoError(t, err)
	_, err = led.Book(ctx, "2025-12-01", "10:00", "Test Rapido")
	require.NoError(t, err)

	_, err = led.UpdateStatus(ctx, first.ID, domain.StatusCancelled)
	require.NoError(t, err)

	owned := led.AppointmentsFor(ctx)
	require.Len(t, owned, 2)
	assert.Equal(t, first.ID, owned[0].ID)
}

func TestUpdateStatusFailures(t *testing.T) {
	led, reg, _ := newTestLedger(t)
	ctx := context.Background()

	registerUser(t, reg, "Mario Rossi", "mario@x.it")
	appointment, err := led.Book(ctx, "2025-12-01", "09:00", "Vaccinazione")
	require.NoError(t, err)

	_, err = led.UpdateStatus(ctx, "missing-id", domain.StatusConfirmed)
	assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))

	_, err = led.UpdateStatus(ctx, appointment.ID, domain.AppointmentStatus("sospeso"))
	assert.Equal(t, apperrors.CodeValidationFailed, apperrors.CodeOf(err))
}

func TestAdminDeleteIgnoresOwnership(t *testing.T) {
	led, reg, _ := newTestLedger(t)
	ctx := context.Background()

	registerUser(t, reg, "Mario Rossi", "mario@x.it")
	appointment, err := led.Book(ctx, "2025-12-01", "09:00", "Vaccinazione")
	require.NoError(t, err)

	require.NoError(t, led.AdminDelete(ctx, appointment.ID))
	require.NoError(t, led.AdminDelete(ctx, appointment.ID))
	assert.Empty(t, led.AllAppointments(ctx))
}

func TestAllAppointmentsEnrichment(t *testing.T) {
	led, reg, collections := newTestLedger(t)
	ctx := context.Background()

	registerUser(t, reg, "Mario Rossi", "mario@x.it")
	booked, err := led.Book(ctx, "2025-12-01", "09:00", "Vaccinazione")
	require.NoError(t, err)

	// An orphaned appointment whose owner was never registered.
	appointments := collections.Appointments(ctx)
	appointments = append(appointments, domain.Appointment{
		ID:        "orphan",
		UserID:    "gone",
		Date:      "2025-12-02",
		Time:      "10:00",
		Service:   "Test Rapido",
		Status:    domain.StatusPending,
		CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, collections.SaveAppointments(ctx, appointments))

	all := led.AllAppointments(ctx)
	require.Len(t, all, 2)

	assert.Equal(t, booked.ID, all[0].ID)
	assert.Equal(t, "Mario Rossi", all[0].UserName)
	assert.Equal(t, "mario@x.it", all[0].UserEmail)

	assert.Equal(t, "orphan", all[1].ID)
	assert.Equal(t, "Utente sconosciuto", all[1].UserName)
	assert.Empty(t, all[1].UserEmail)
	assert.Empty(t, all[1].UserPhone)
}

func TestStats(t *testing.T) {
	led, reg, collections := newTestLedger(t)
	ctx := context.Background()

	registerUser(t, reg, "Mario Rossi", "mario@x.it")
	registerUser(t, reg, "Laura Bianchi", "laura@x.it")

	today := time.Now().UTC().Format("2006-01-02")
	_, err := led.Book(ctx, today, "09:00", "Vaccinazione")
	require.NoError(t, err)
	confirmed, err := led.Book(ctx, "2030-01-01", "10:00", "Test Rapido")
	require.NoError(t, err)
	_, err = led.UpdateStatus(ctx, confirmed.ID, domain.StatusConfirmed)
	require.NoError(t, err)

	// A legacy record without a status counts as pending.
	appointments := collections.Appointments(ctx)
	appointments = append(appointments, domain.Appointment{
		ID:        "legacy",
		UserID:    "gone",
		Date:      "2030-01-02",
		Time:      "11:00",
		Service:   "Consulenza Farmaceutica",
		CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, collections.SaveAppointments(ctx, appointments))

	stats := led.Stats(ctx)
	assert.Equal(t, 2, stats.TotalUsers)
	assert.Equal(t, 3, stats.TotalAppointments)
	assert.Equal(t, 1, stats.AppointmentsToday)
	assert.Equal(t, 2, stats.PendingAppointments)
}
