package core

import "time"

// Session is one recruitment project: a bounded conversation context with its
// own artifact set and turn log. Lifecycle (expiry, listing per recruiter) is
// owned by the embedding application; the engine only requires that a session
// exists before operations run against it.
type Session struct {
	ID           string    `json:"id"`
	PositionName string    `json:"position_name"`
	Language     Language  `json:"language"`
	CreatedAt    time.Time `json:"created_at"`
	LastActivity time.Time `json:"last_activity"`
}

// NewSession creates a session with the given id, defaulting to English output.
func NewSession(id string) *Session {
	now := time.Now().UTC()
	return &Session{ID: id, Language: LanguageEnglish, CreatedAt: now, LastActivity: now}
}

// Clone returns a copy safe for independent mutation.
func (s *Session) Clone() *Session {
	cp := *s
	return &cp
}

// SessionStore persists sessions. Implementations must be safe for concurrent
// use. Get returns ErrSessionNotFound for unknown ids.
type SessionStore interface {
	Create(id string) (*Session, error)
	Get(id string) (*Session, error)
	Update(session *Session) error
	Touch(id string) error
}
