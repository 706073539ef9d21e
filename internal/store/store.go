// Package store implements the record store: named collections persisted as
// whole JSON blobs, with lossy recovery on read and full overwrite on write.
package store

import "context"

// Collection keys of the persisted state layout.
const (
	CollectionUsers        = "users"
	CollectionAppointments = "appointments"
	CollectionSession      = "currentUser"
)

// RecordStore provides raw blob access to named collections. Load returns
// (nil, nil) when the collection key is absent.
type RecordStore interface {
	Load(ctx context.Context, collection string) ([]byte, error)
	Save(ctx context.Context, collection string, data []byte) error
	Delete(ctx context.Context, collection string) error
}
