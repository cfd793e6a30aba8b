package session

import (
	"context"
	"sync"
	"time"
)

type memoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewMemoryRepository builds an in-memory session store, used in development
// and tests when no Redis is configured.
func NewMemoryRepository() Repository {
	return &memoryRepository{sessions: make(map[string]Session)}
}

func (r *memoryRepository) Save(_ context.Context, s Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = s
	return nil
}

func (r *memoryRepository) Find(_ context.Context, id string) (Session, error) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return Session{}, ErrNotFound
	}
	if s.Expired(time.Now()) {
		r.mu.Lock()
		delete(r.sessions, id)
		r.mu.Unlock()
		return Session{}, ErrNotFound
	}
	return s, nil
}

func (r *memoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}
