package session

import (
	"sync"
	"time"

	"github.com/talentahq/talenta/core"
)

// InMemoryStore is a process-local core.SessionStore. It is safe for
// concurrent access; returned sessions are clones so callers cannot mutate
// internal state without going through Update.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*core.Session
}

// NewInMemoryStore constructs an empty in-memory session store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{sessions: make(map[string]*core.Session)}
}

// Create stores a fresh session under the given id, overwriting any existing
// one. An empty id is rejected.
func (s *InMemoryStore) Create(id string) (*core.Session, error) {
	if id == "" {
		return nil, core.ErrEmptySessionID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := core.NewSession(id)
	s.sessions[id] = sess
	return sess.Clone(), nil
}

// Get returns a clone of the session or core.ErrSessionNotFound.
func (s *InMemoryStore) Get(id string) (*core.Session, error) {
	if id == "" {
		return nil, core.ErrEmptySessionID
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, core.ErrSessionNotFound
	}
	return sess.Clone(), nil
}

// Update replaces the stored session with the given snapshot.
func (s *InMemoryStore) Update(session *core.Session) error {
	if session == nil || session.ID == "" {
		return core.ErrEmptySessionID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[session.ID]; !ok {
		return core.ErrSessionNotFound
	}
	s.sessions[session.ID] = session.Clone()
	return nil
}

// Touch bumps the session's last-activity timestamp.
func (s *InMemoryStore) Touch(id string) error {
	if id == "" {
		return core.ErrEmptySessionID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return core.ErrSessionNotFound
	}
	sess.LastActivity = time.Now().UTC()
	return nil
}
