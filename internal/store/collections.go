package store

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/spec-kit/pharmacy-booking/internal/domain"
	"github.com/spec-kit/pharmacy-booking/internal/observability"
)

// Collections is the typed codec over a RecordStore. Reads never fail: an
// absent, unreadable, or corrupt collection degrades to the empty value and
// is only logged. Write failures propagate to the caller.
type Collections struct {
	records RecordStore
	logger  *zap.Logger
	metrics *observability.Metrics
}

// NewCollections wraps a RecordStore. Metrics may be nil.
func NewCollections(records RecordStore, logger *zap.Logger, metrics *observability.Metrics) *Collections {
	return &Collections{records: records, logger: logger, metrics: metrics}
}

// Accounts loads the users collection.
func (c *Collections) Accounts(ctx context.Context) []domain.Account {
	var accounts []domain.Account
	if !c.load(ctx, CollectionUsers, &accounts) {
		return []domain.Account{}
	}
	return accounts
}

// SaveAccounts overwrites the users collection.
func (c *Collections) SaveAccounts(ctx context.Context, accounts []domain.Account) error {
	return c.save(ctx, CollectionUsers, accounts)
}

// Appointments loads the appointments collection.
func (c *Collections) Appointments(ctx context.Context) []domain.Appointment {
	var appointments []domain.Appointment
	if !c.load(ctx, CollectionAppointments, &appointments) {
		return []domain.Appointment{}
	}
	return appointments
}

// SaveAppointments overwrites the appointments collection.
func (c *Collections) SaveAppointments(ctx context.Context, appointments []domain.Appointment) error {
	return c.save(ctx, CollectionAppointments, appointments)
}

// Session loads the currentUser slot, or nil when no session is active.
func (c *Collections) Session(ctx context.Context) *domain.Session {
	var session domain.Session
	if !c.load(ctx, CollectionSession, &session) {
		return nil
	}
	if session.ID == "" {
		return nil
	}
	return &session
}

// SaveSession overwrites the currentUser slot.
func (c *Collections) SaveSession(ctx context.Context, session *domain.Session) error {
	return c.save(ctx, CollectionSession, session)
}

// ClearSession removes the currentUser slot.
func (c *Collections) ClearSession(ctx context.Context) error {
	return c.records.Delete(ctx, CollectionSession)
}

func (c *Collections) load(ctx context.Context, collection string, out any) bool {
	data, err := c.records.Load(ctx, collection)
	if err != nil {
		c.logger.Warn("record store read failed, treating collection as empty",
			zap.String("collection", collection), zap.Error(err))
		c.metrics.RecordCorruption(collection)
		return false
	}
	if len(data) == 0 {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		c.logger.Warn("corrupt collection, treating as empty",
			zap.String("collection", collection), zap.Error(err))
		c.metrics.RecordCorruption(collection)
		return false
	}
	return true
}

func (c *Collections) save(ctx context.Context, collection string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.records.Save(ctx, collection, data)
}
