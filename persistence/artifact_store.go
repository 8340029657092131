package persistence

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/talentahq/talenta/artifact"
	"github.com/talentahq/talenta/core"
)

// ArtifactStore is the libsql-backed core.ArtifactStore. Each (session, kind)
// pair holds at most one row; storing again overwrites the payload.
type ArtifactStore struct {
	db    *sql.DB
	codec *artifact.Codec
}

var _ core.ArtifactStore = (*ArtifactStore)(nil)

// NewArtifactStore creates an artifact store over an open database. The codec
// must cover every artifact kind that will be stored.
func NewArtifactStore(db *sql.DB, codec *artifact.Codec) *ArtifactStore {
	return &ArtifactStore{db: db, codec: codec}
}

// Store implements core.ArtifactStore.
func (s *ArtifactStore) Store(sessionID string, a core.Artifact) error {
	if sessionID == "" {
		return core.ErrEmptySessionID
	}
	if a == nil {
		return fmt.Errorf("persistence: nil artifact")
	}
	data, err := s.codec.Encode(a)
	if err != nil {
		return fmt.Errorf("persistence: encode %s: %w", a.Kind(), err)
	}
	_, err = s.db.Exec(`
		INSERT INTO artifacts (session_id, kind, payload, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (session_id, kind) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at`,
		sessionID, string(a.Kind()), string(data), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("persistence: store %s: %w", a.Kind(), err)
	}
	return nil
}

// Retrieve implements core.ArtifactStore.
func (s *ArtifactStore) Retrieve(sessionID string, kind core.ArtifactKind) (core.Artifact, error) {
	if sessionID == "" {
		return nil, core.ErrEmptySessionID
	}
	var payload string
	err := s.db.QueryRow(
		`SELECT payload FROM artifacts WHERE session_id = ? AND kind = ?`,
		sessionID, string(kind),
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.ErrArtifactNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("persistence: retrieve %s: %w", kind, err)
	}
	a, err := s.codec.Decode(kind, []byte(payload))
	if err != nil {
		return nil, fmt.Errorf("persistence: decode %s: %w", kind, err)
	}
	return a, nil
}

// Has implements core.ArtifactStore.
func (s *ArtifactStore) Has(sessionID string, kind core.ArtifactKind) bool {
	if sessionID == "" {
		return false
	}
	var one int
	err := s.db.QueryRow(
		`SELECT 1 FROM artifacts WHERE session_id = ? AND kind = ?`,
		sessionID, string(kind),
	).Scan(&one)
	return err == nil
}

// All implements core.ArtifactStore.
func (s *ArtifactStore) All(sessionID string) (map[core.ArtifactKind]core.Artifact, error) {
	if sessionID == "" {
		return nil, core.ErrEmptySessionID
	}
	rows, err := s.db.Query(
		`SELECT kind, payload FROM artifacts WHERE session_id = ?`, sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("persistence: list artifacts: %w", err)
	}
	defer rows.Close()

	out := make(map[core.ArtifactKind]core.Artifact)
	for rows.Next() {
		var kind, payload string
		if err := rows.Scan(&kind, &payload); err != nil {
			return nil, fmt.Errorf("persistence: scan artifact: %w", err)
		}
		a, err := s.codec.Decode(core.ArtifactKind(kind), []byte(payload))
		if err != nil {
			return nil, fmt.Errorf("persistence: decode %s: %w", kind, err)
		}
		out[core.ArtifactKind(kind)] = a
	}
	return out, rows.Err()
}
