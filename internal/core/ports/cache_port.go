package ports

import (
	"context"
	"time"
)

type CachePort interface {
	// Get returns a nil value and no error when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Incr bumps a counter, starting its expiry window on first use.
	Incr(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}
