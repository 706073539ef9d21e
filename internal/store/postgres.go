package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persists collection blobs in a single key-value table.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore wraps an existing pgx pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (p *PostgresStore) Load(ctx context.Context, collection string) ([]byte, error) {
	const query = `SELECT data FROM record_blobs WHERE collection=$1`

	var data []byte
	if err := p.pool.QueryRow(ctx, query, collection).Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

func (p *PostgresStore) Save(ctx context.Context, collection string, data []byte) error {
	const query = `
        INSERT INTO record_blobs (collection, data, updated_at)
        VALUES ($1, $2, NOW())
        ON CONFLICT (collection) DO UPDATE SET data=EXCLUDED.data, updated_at=NOW()`

	_, err := p.pool.Exec(ctx, query, collection, data)
	return err
}

func (p *PostgresStore) Delete(ctx context.Context, collection string) error {
	const query = `DELETE FROM record_blobs WHERE collection=$1`

	_, err := p.pool.Exec(ctx, query, collection)
	return err
}

// Ping verifies backend connectivity for readiness checks.
func (p *PostgresStore) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}
