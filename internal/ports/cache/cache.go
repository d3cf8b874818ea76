package cache

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound marks a cache miss, as opposed to a cache outage.
var ErrNotFound = errors.New("cache key not found")

// Cache is the string cache the chart loader runs its cache-or-calculate
// path against.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Close() error
}
