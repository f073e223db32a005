package memory

import (
	"context"
	"sync"
	"time"

	"github.com/ameerhamza-malik/ItemManagement/internal/domain/shared"
)

// SessionStore keeps identity bindings in memory. Unlike Redis there is no
// TTL machinery, so expiry is enforced on read.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]shared.Session
}

// NewSessionStore creates a new in-memory session store
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]shared.Session)}
}

// Save persists a session until its absolute expiry
func (s *SessionStore) Save(_ context.Context, session *shared.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = *session
	return nil
}

// Get retrieves a session by ID, dropping it when past its expiry
func (s *SessionStore) Get(_ context.Context, id string) (*shared.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, shared.ErrSessionNotFound
	}
	if session.Expired(time.Now()) {
		delete(s.sessions, id)
		return nil, shared.ErrSessionNotFound
	}
	return &session, nil
}

// Delete invalidates a session immediately
func (s *SessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
