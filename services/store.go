package services

import (
	"context"
	"time"
)

// KVStore is the slice of the key-value store the domain services depend
// on. RedisService implements it; tests substitute an in-memory store.
// Get returns "" with a nil error when the key is absent.
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Incr(ctx context.Context, key string) (int64, error)
	Expire(ctx context.Context, key string, expiration time.Duration) error
	Keys(ctx context.Context, pattern string) ([]string, error)
}
