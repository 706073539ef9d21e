// Package ledger enforces the slot-booking invariant: for a given date no two
// non-cancelled appointments may share a time slot. It also carries the
// privileged status/listing operations of the admin dashboard.
package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/pharmacy-booking/internal/domain"
	"github.com/spec-kit/pharmacy-booking/internal/events"
	"github.com/spec-kit/pharmacy-booking/internal/store"
	"github.com/spec-kit/pharmacy-booking/internal/validate"
	apperrors "github.com/spec-kit/pharmacy-booking/pkg/util/errorutil"
)

// SessionSource resolves the currently active session.
type SessionSource interface {
	CurrentSession(ctx context.Context) *domain.Session
}

// Ledger coordinates appointment booking and bookkeeping.
type Ledger struct {
	mu          sync.Mutex
	collections *store.Collections
	sessions    SessionSource
	dispatcher  events.Dispatcher
	logger      *zap.Logger
}

// Dependencies bundles what the ledger needs.
type Dependencies struct {
	Collections *store.Collections
	Sessions    SessionSource
	Dispatcher  events.Dispatcher
	Logger      *zap.Logger
}

// New builds the ledger.
func New(deps Dependencies) *Ledger {
	return &Ledger{
		collections: deps.Collections,
		sessions:    deps.Sessions,
		dispatcher:  deps.Dispatcher,
		logger:      deps.Logger,
	}
}

// Book creates a pending appointment for the active session, refusing slots
// already claimed by any non-cancelled appointment on the same date.
func (l *Ledger) Book(ctx context.Context, date, timeSlot, service string) (*domain.Appointment, error) {
	session := l.sessions.CurrentSession(ctx)
	if session == nil {
		return nil, apperrors.NewUnauthenticated("Utente non autenticato")
	}
	if date == "" || timeSlot == "" || service == "" {
		return nil, apperrors.NewValidation("Tutti i campi sono obbligatori")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	appointments := l.collections.Appointments(ctx)
	for i := range appointments {
		if appointments[i].Date == date && appointments[i].Time == timeSlot && appointments[i].ClaimsSlot() {
			return nil, apperrors.NewSlotTaken("Questa ora non è disponibile. Scegli un'altra ora o un altro giorno.")
		}
	}

	appointment := domain.Appointment{
		ID:        uuid.NewString(),
		UserID:    session.ID,
		Date:      date,
		Time:      timeSlot,
		Service:   validate.Sanitize(service),
		Status:    domain.StatusPending,
		CreatedAt: time.Now().UTC(),
	}
	appointments = append(appointments, appointment)

	if err := l.collections.SaveAppointments(ctx, appointments); err != nil {
		return nil, apperrors.NewStorageFailure("Errore durante la prenotazione. Riprova.", err)
	}

	l.publish(ctx, events.Event{
		Type:          events.EventAppointmentBooked,
		AppointmentID: appointment.ID,
		OwnerID:       appointment.UserID,
		Payload: events.AppointmentBookedPayload{
			Date:    appointment.Date,
			Time:    appointment.Time,
			Service: appointment.Service,
		},
	})
	return &appointment, nil
}

// AvailableSlots returns the fixed slot enumeration minus the times claimed
// by non-cancelled appointments on the given date, in enumeration order.
func (l *Ledger) AvailableSlots(ctx context.Context, date string) []string {
	taken := make(map[string]struct{})
	appointments := l.collections.Appointments(ctx)
	for i := range appointments {
		if appointments[i].Date == date && appointments[i].ClaimsSlot() {
			taken[appointments[i].Time] = struct{}{}
		}
	}

	available := make([]string, 0, len(domain.TimeSlots))
	for _, slot := range domain.TimeSlots {
		if _, ok := taken[slot]; !ok {
			available = append(available, slot)
		}
	}
	return available
}

// AppointmentsFor returns the active session's appointments in store order,
// all statuses included. Without a session the listing is empty.
func (l *Ledger) AppointmentsFor(ctx context.Context) []domain.Appointment {
	session := l.sessions.CurrentSession(ctx)
	if session == nil {
		return []domain.Appointment{}
	}

	appointments := l.collections.Appointments(ctx)
	owned := make([]domain.Appointment, 0)
	for i := range appointments {
		if appointments[i].UserID == session.ID {
			owned = append(owned, appointments[i])
		}
	}
	return owned
}

// Delete removes the appointment only when both id and owner match the
// active session. Removing an id that does not exist, or that belongs to
// someone else, is a successful no-op.
func (l *Ledger) Delete(ctx context.Context, id string) error {
	session := l.sessions.CurrentSession(ctx)
	if session == nil {
		return apperrors.NewUnauthenticated("Utente non autenticato")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	appointments := l.collections.Appointments(ctx)
	kept := make([]domain.Appointment, 0, len(appointments))
	removed := false
	for i := range appointments {
		if appointments[i].ID == id && appointments[i].UserID == session.ID {
			removed = true
			continue
		}
		kept = append(kept, appointments[i])
	}

	if err := l.collections.SaveAppointments(ctx, kept); err != nil {
		return apperrors.NewStorageFailure("Errore durante l'eliminazione. Riprova.", err)
	}
	if removed {
		l.publish(ctx, events.Event{
			Type:          events.EventAppointmentCancelled,
			AppointmentID: id,
			OwnerID:       session.ID,
		})
	}
	return nil
}

// UpdateStatus overwrites the status of any appointment. Transitions are
// unconstrained; the status is a label, not a workflow.
func (l *Ledger) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error) {
	if !status.Valid() {
		return nil, apperrors.NewValidation("Stato non valido")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	appointments := l.collections.Appointments(ctx)
	index := -1
	for i := range appointments {
		if appointments[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, apperrors.NewNotFound("Appuntamento non trovato")
	}

	oldStatus := appointments[index].Status
	now := time.Now().UTC()
	appointments[index].Status = status
	appointments[index].UpdatedAt = &now

	if err := l.collections.SaveAppointments(ctx, appointments); err != nil {
		return nil, apperrors.NewStorageFailure("Errore durante l'aggiornamento. Riprova.", err)
	}

	l.publish(ctx, events.Event{
		Type:          events.EventAppointmentStatusChanged,
		AppointmentID: id,
		OwnerID:       appointments[index].UserID,
		Payload:       events.StatusChangedPayload{OldStatus: oldStatus, NewStatus: status},
	})
	updated := appointments[index]
	return &updated, nil
}

// AdminDelete removes any appointment regardless of owner. Idempotent.
func (l *Ledger) AdminDelete(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	appointments := l.collections.Appointments(ctx)
	kept := make([]domain.Appointment, 0, len(appointments))
	for i := range appointments {
		if appointments[i].ID == id {
			continue
		}
		kept = append(kept, appointments[i])
	}

	if err := l.collections.SaveAppointments(ctx, kept); err != nil {
		return apperrors.NewStorageFailure("Errore durante l'eliminazione. Riprova.", err)
	}
	return nil
}

// AllAppointments lists every appointment enriched with its owner's contact
// data. Appointments whose owner no longer exists fall back to a placeholder
// name and empty contact fields.
func (l *Ledger) AllAppointments(ctx context.Context) []domain.AppointmentDetail {
	appointments := l.collections.Appointments(ctx)
	accounts := l.collections.Accounts(ctx)

	byID := make(map[string]*domain.Account, len(accounts))
	for i := range accounts {
		byID[accounts[i].ID] = &accounts[i]
	}

	details := make([]domain.AppointmentDetail, 0, len(appointments))
	for i := range appointments {
		detail := domain.AppointmentDetail{
			Appointment: appointments[i],
			UserName:    "Utente sconosciuto",
		}
		if owner, ok := byID[appointments[i].UserID]; ok {
			detail.UserName = owner.Name
			detail.UserEmail = owner.Email
			detail.UserPhone = owner.Phone
		}
		details = append(details, detail)
	}
	return details
}

// Stats computes the admin dashboard counters with full-collection scans.
// "Today" is the UTC date of the host clock.
func (l *Ledger) Stats(ctx context.Context) domain.Stats {
	accounts := l.collections.Accounts(ctx)
	appointments := l.collections.Appointments(ctx)

	today := time.Now().UTC().Format("2006-01-02")
	stats := domain.Stats{
		TotalUsers:        len(accounts),
		TotalAppointments: len(appointments),
	}
	for i := range appointments {
		if appointments[i].Date == today {
			stats.AppointmentsToday++
		}
		if appointments[i].Pending() {
			stats.PendingAppointments++
		}
	}
	return stats
}

func (l *Ledger) publish(ctx context.Context, event events.Event) {
	if l.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now().UTC()
	if err := l.dispatcher.Publish(ctx, event); err != nil {
		l.logger.Warn("event publish failed", zap.String("type", string(event.Type)), zap.Error(err))
	}
}
