package memory

import (
	"context"
	"sync"
	"time"

	"totem-quiz/internal/app"
	"totem-quiz/internal/domain"
)

// SessionStore is an in-memory implementation of app.SessionRepository with
// TTL expiry. Saving a session refreshes its deadline; expired sessions are
// dropped lazily when touched. A non-positive TTL disables expiry.
type SessionStore struct {
	ttl   time.Duration
	clock func() time.Time

	mu       sync.RWMutex
	sessions map[string]sessionEntry
}

type sessionEntry struct {
	session   *app.Session
	expiresAt time.Time
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		ttl:      ttl,
		clock:    time.Now,
		sessions: make(map[string]sessionEntry),
	}
}

func (s *SessionStore) Create(_ context.Context, session *app.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID()] = sessionEntry{
		session:   session,
		expiresAt: s.deadline(),
	}
	return nil
}

func (s *SessionStore) Get(_ context.Context, id string) (*app.Session, error) {
	now := s.clock()

	s.mu.RLock()
	entry, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if s.expired(entry, now) {
		s.mu.Lock()
		if entry, ok := s.sessions[id]; ok && s.expired(entry, now) {
			delete(s.sessions, id)
		}
		s.mu.Unlock()
		return nil, domain.ErrSessionNotFound
	}
	return entry.session, nil
}

func (s *SessionStore) Save(_ context.Context, session *app.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID()] = sessionEntry{
		session:   session,
		expiresAt: s.deadline(),
	}
	return nil
}

func (s *SessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func (s *SessionStore) deadline() time.Time {
	if s.ttl <= 0 {
		return time.Time{}
	}
	return s.clock().Add(s.ttl)
}

func (s *SessionStore) expired(entry sessionEntry, now time.Time) bool {
	return !entry.expiresAt.IsZero() && !entry.expiresAt.After(now)
}
