// Package auth exchanges staff credentials for an upstream bearer token and
// manages the console session that wraps it.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/haulbid/admin-console/internal/platform"
	"github.com/haulbid/admin-console/internal/session"
)

// Service is the authentication gateway between the console and the platform
// API.
type Service struct {
	client   *platform.Client
	sessions session.Repository
	ttl      time.Duration
}

// NewService builds the gateway. ttl bounds the lifetime of the sessions it
// creates.
func NewService(client *platform.Client, sessions session.Repository, ttl time.Duration) *Service {
	return &Service{client: client, sessions: sessions, ttl: ttl}
}

// Login exchanges credentials for a bearer token and wraps it in a stored
// session. On upstream failure no session is created and the upstream error,
// carrying the backend message, is returned unchanged.
func (s *Service) Login(ctx context.Context, identifier, password string) (session.Session, error) {
	result, err := s.client.Login(ctx, identifier, password)
	if err != nil {
		return session.Session{}, err
	}

	now := time.Now()
	sess := session.Session{
		ID:         uuid.NewString(),
		Token:      result.Token,
		Role:       result.Role,
		UserID:     result.UserID,
		Identifier: identifier,
		CreatedAt:  now,
		ExpiresAt:  now.Add(s.ttl),
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return session.Session{}, fmt.Errorf("persist session: %w", err)
	}
	return sess, nil
}

// Logout discards the session. No upstream call is made; the bearer token is
// simply forgotten.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

// IsAuthenticated reports whether the session ID resolves to a live session.
func (s *Service) IsAuthenticated(ctx context.Context, sessionID string) bool {
	if sessionID == "" {
		return false
	}
	_, err := s.sessions.Find(ctx, sessionID)
	return err == nil
}

// SessionTTL exposes the configured session lifetime for cookie expiry.
func (s *Service) SessionTTL() time.Duration {
	return s.ttl
}
