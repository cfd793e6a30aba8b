package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "session:v1:"

// Repository persists sessions.
type Repository interface {
	Save(ctx context.Context, s Session) error
	Find(ctx context.Context, id string) (Session, error)
	Delete(ctx context.Context, id string) error
}

// RedisRepository implements Repository on Redis, letting sessions survive
// console restarts and expire server-side via key TTLs.
type RedisRepository struct {
	client *redis.Client
}

// NewRedisRepository builds a Redis-backed session repository.
func NewRedisRepository(client *redis.Client) *RedisRepository {
	return &RedisRepository{client: client}
}

// Save stores the session under its ID with a TTL matching its expiry.
func (r *RedisRepository) Save(ctx context.Context, s Session) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session already expired")
	}

	if err := r.client.Set(ctx, redisKeyPrefix+s.ID, payload, ttl).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

// Find resolves a session ID.
func (r *RedisRepository) Find(ctx context.Context, id string) (Session, error) {
	raw, err := r.client.Get(ctx, redisKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return Session{}, ErrNotFound
	}
	if err != nil {
		return Session{}, fmt.Errorf("load session: %w", err)
	}

	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return Session{}, fmt.Errorf("decode session: %w", err)
	}
	if s.Expired(time.Now()) {
		return Session{}, ErrNotFound
	}
	return s, nil
}

// Delete removes a session. Deleting an unknown ID is not an error.
func (r *RedisRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, redisKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
