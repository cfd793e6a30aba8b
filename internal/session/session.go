// Package session stores authenticated console sessions. The upstream bearer
// token never leaves the server: browsers hold only a signed cookie carrying
// the session ID, and every page handler resolves it back to a Session here.
package session

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a session ID does not resolve, either because
// it never existed or because it expired.
var ErrNotFound = errors.New("session not found")

// Session binds a console login to the upstream bearer token it obtained.
type Session struct {
	ID         string    `json:"id"`
	Token      string    `json:"token"`
	Role       string    `json:"role,omitempty"`
	UserID     string    `json:"user_id,omitempty"`
	Identifier string    `json:"identifier,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its lifetime.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
