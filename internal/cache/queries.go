package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"
)

// Queries coordinates keyed read-through fetches. Store failures are treated
// as misses and logged, never surfaced: a broken cache degrades to direct
// upstream reads.
type Queries struct {
	store  Store
	ttl    time.Duration
	logger *slog.Logger
}

// NewQueries builds the query layer with the given default TTL.
func NewQueries(store Store, ttl time.Duration, logger *slog.Logger) *Queries {
	return &Queries{store: store, ttl: ttl, logger: logger}
}

// Fetch returns the cached value under key, or calls fn, stores its result
// and returns it. fn errors pass through untouched and leave the cache as is.
func Fetch[T any](ctx context.Context, q *Queries, key string, fn func(context.Context) (T, error)) (T, error) {
	raw, err := q.store.Get(ctx, key)
	if err == nil {
		var cached T
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		// Undecodable entry: drop it and refetch.
		_ = q.store.Delete(ctx, key)
	} else if !errors.Is(err, ErrMiss) {
		q.logger.Warn("cache read failed", "key", key, "error", err)
	}

	value, err := fn(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	if payload, err := json.Marshal(value); err == nil {
		if err := q.store.Set(ctx, key, payload, q.ttl); err != nil {
			q.logger.Warn("cache write failed", "key", key, "error", err)
		}
	}
	return value, nil
}

// Invalidate drops the given keys so the next fetch refetches upstream.
// Backend failures are logged and swallowed.
func (q *Queries) Invalidate(ctx context.Context, keys ...string) {
	if err := q.store.Delete(ctx, keys...); err != nil {
		q.logger.Warn("cache invalidation failed", "keys", keys, "error", err)
	}
}

// Key joins parts into a colon-separated cache key, e.g. Key("admin",
// "users") -> "admin:users".
func Key(parts ...string) string {
	return strings.Join(parts, ":")
}

// Cache keys for each console resource.
func KeyStats() string           { return Key("admin", "stats") }
func KeyRecentShipments() string { return Key("admin", "recent-shipments") }
func KeyUsers() string           { return Key("admin", "users") }
func KeyTransporters() string    { return Key("admin", "transporters") }
func KeyAdmins() string          { return Key("admin", "admins") }
func KeyShipments() string       { return Key("admin", "shipments") }
func KeyRequests() string        { return Key("admin", "withdrawal-requests") }

func KeyShipmentDetails(id string) string { return Key("admin", "shipments", id) }
func KeyUserPayments(id string) string    { return Key("admin", "users", id, "payments") }
func KeyTransporterWithdrawals(id string) string {
	return Key("admin", "transporters", id, "withdrawals")
}
