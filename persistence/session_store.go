package persistence

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/talentahq/talenta/core"
)

// SessionStore is the libsql-backed core.SessionStore.
type SessionStore struct {
	db *sql.DB
}

var _ core.SessionStore = (*SessionStore)(nil)

// NewSessionStore creates a session store over an open database.
func NewSessionStore(db *sql.DB) *SessionStore {
	return &SessionStore{db: db}
}

// Create implements core.SessionStore. An existing session with the same id
// is replaced.
func (s *SessionStore) Create(id string) (*core.Session, error) {
	if id == "" {
		return nil, core.ErrEmptySessionID
	}
	sess := core.NewSession(id)
	_, err := s.db.Exec(`
		INSERT INTO sessions (id, position_name, language, created_at, last_activity)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			position_name = excluded.position_name,
			language = excluded.language,
			created_at = excluded.created_at,
			last_activity = excluded.last_activity`,
		sess.ID, sess.PositionName, string(sess.Language), sess.CreatedAt.UTC(), sess.LastActivity.UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("persistence: create session: %w", err)
	}
	return sess, nil
}

// Get implements core.SessionStore.
func (s *SessionStore) Get(id string) (*core.Session, error) {
	if id == "" {
		return nil, core.ErrEmptySessionID
	}
	sess := &core.Session{}
	var language string
	err := s.db.QueryRow(
		`SELECT id, position_name, language, created_at, last_activity FROM sessions WHERE id = ?`, id,
	).Scan(&sess.ID, &sess.PositionName, &language, &sess.CreatedAt, &sess.LastActivity)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("persistence: get session: %w", err)
	}
	sess.Language = core.Language(language)
	return sess, nil
}

// Update implements core.SessionStore. The session must already exist.
func (s *SessionStore) Update(sess *core.Session) error {
	if sess == nil || sess.ID == "" {
		return core.ErrEmptySessionID
	}
	res, err := s.db.Exec(`
		UPDATE sessions
		SET position_name = ?, language = ?, last_activity = ?
		WHERE id = ?`,
		sess.PositionName, string(sess.Language), time.Now().UTC(), sess.ID,
	)
	if err != nil {
		return fmt.Errorf("persistence: update session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("persistence: update session: %w", err)
	}
	if n == 0 {
		return core.ErrSessionNotFound
	}
	return nil
}

// Touch implements core.SessionStore.
func (s *SessionStore) Touch(id string) error {
	if id == "" {
		return core.ErrEmptySessionID
	}
	res, err := s.db.Exec(
		`UPDATE sessions SET last_activity = ? WHERE id = ?`, time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("persistence: touch session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("persistence: touch session: %w", err)
	}
	if n == 0 {
		return core.ErrSessionNotFound
	}
	return nil
}
