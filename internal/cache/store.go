// Package cache is the read-through query layer between the page handlers
// and the platform client. Reads are keyed by resource name plus optional id;
// mutations invalidate the key so the next read refetches.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned by Store.Get when the key has no live entry.
var ErrMiss = errors.New("cache miss")

// Store is the backing key-value storage for cached query results.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
