package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/pharmacy-booking/internal/domain"
)

func newTestCollections(t *testing.T) (*Collections, *MemoryStore) {
	t.Helper()
	records := NewMemoryStore()
	return NewCollections(records, zap.NewNop(), nil), records
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	records := NewMemoryStore()

	data, err := records.Load(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, data)

	require.NoError(t, records.Save(ctx, "users", []byte(`[]`)))
	data, err = records.Load(ctx, "users")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), data)

	require.NoError(t, records.Delete(ctx, "users"))
	data, err = records.Load(ctx, "users")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestAccountsRoundTrip(t *testing.T) {
	ctx := context.Background()
	collections, _ := newTestCollections(t)

	assert.Empty(t, collections.Accounts(ctx))

	accounts := []domain.Account{{
		ID:        "a1",
		Name:      "Mario Rossi",
		Email:     "mario@x.it",
		Phone:     "333 123 4567",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}}
	require.NoError(t, collections.SaveAccounts(ctx, accounts))

	loaded := collections.Accounts(ctx)
	require.Len(t, loaded, 1)
	assert.Equal(t, "mario@x.it", loaded[0].Email)
}

func TestCorruptCollectionDegradesToEmpty(t *testing.T) {
	ctx := context.Background()
	collections, records := newTestCollections(t)

	require.NoError(t, records.Save(ctx, CollectionUsers, []byte(`{not json`)))
	assert.Empty(t, collections.Accounts(ctx))

	require.NoError(t, records.Save(ctx, CollectionAppointments, []byte(`"wrong shape"`)))
	assert.Empty(t, collections.Appointments(ctx))

	require.NoError(t, records.Save(ctx, CollectionSession, []byte(`corrupt`)))
	assert.Nil(t, collections.Session(ctx))
}

func TestSessionSlot(t *testing.T) {
	ctx := context.Background()
	collections, _ := newTestCollections(t)

	assert.Nil(t, collections.Session(ctx))

	session := &domain.Session{ID: "a1", Name: "Mario Rossi", Email: "mario@x.it"}
	require.NoError(t, collections.SaveSession(ctx, session))

	loaded := collections.Session(ctx)
	require.NotNil(t, loaded)
	assert.Equal(t, "a1", loaded.ID)
	assert.Equal(t, "Mario Rossi", loaded.Name)

	require.NoError(t, collections.ClearSession(ctx))
	assert.Nil(t, collections.Session(ctx))
}
