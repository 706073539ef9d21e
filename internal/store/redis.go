package store

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists each collection blob under a prefixed Redis key.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore wraps an existing Redis client.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (r *RedisStore) key(collection string) string {
	return r.prefix + collection
}

func (r *RedisStore) Load(ctx context.Context, collection string) ([]byte, error) {
	data, err := r.client.Get(ctx, r.key(collection)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (r *RedisStore) Save(ctx context.Context, collection string, data []byte) error {
	return r.client.Set(ctx, r.key(collection), data, 0).Err()
}

func (r *RedisStore) Delete(ctx context.Context, collection string) error {
	return r.client.Del(ctx, r.key(collection)).Err()
}

// Ping verifies backend connectivity for readiness checks.
func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
