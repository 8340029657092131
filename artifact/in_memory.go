package artifact

import (
	"sync"

	"github.com/talentahq/talenta/core"
)

// InMemoryStore is an in-process core.ArtifactStore keeping artifacts in a
// nested map guarded by an RWMutex. Storing a kind that already exists for
// the session overwrites it; there is never more than one current artifact
// per (session, kind).
//
// Layout: sessionID -> kind -> artifact
type InMemoryStore struct {
	mu        sync.RWMutex
	artifacts map[string]map[core.ArtifactKind]core.Artifact
}

// NewInMemoryStore returns an empty in-memory artifact store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{artifacts: make(map[string]map[core.ArtifactKind]core.Artifact)}
}

// Store saves (or overwrites) the artifact under its declared kind.
func (s *InMemoryStore) Store(sessionID string, artifact core.Artifact) error {
	if sessionID == "" {
		return core.ErrEmptySessionID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.artifacts[sessionID]
	if !ok {
		m = make(map[core.ArtifactKind]core.Artifact)
		s.artifacts[sessionID] = m
	}
	m[artifact.Kind()] = artifact
	return nil
}

// Retrieve returns the current artifact of the kind or core.ErrArtifactNotFound.
func (s *InMemoryStore) Retrieve(sessionID string, kind core.ArtifactKind) (core.Artifact, error) {
	if sessionID == "" {
		return nil, core.ErrEmptySessionID
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.artifacts[sessionID][kind]
	if !ok {
		return nil, core.ErrArtifactNotFound
	}
	return a, nil
}

// Has reports whether an artifact of the kind exists for the session.
func (s *InMemoryStore) Has(sessionID string, kind core.ArtifactKind) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.artifacts[sessionID][kind]
	return ok
}

// All returns a snapshot map of every artifact stored for the session.
func (s *InMemoryStore) All(sessionID string) (map[core.ArtifactKind]core.Artifact, error) {
	if sessionID == "" {
		return nil, core.ErrEmptySessionID
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[core.ArtifactKind]core.Artifact, len(s.artifacts[sessionID]))
	for k, a := range s.artifacts[sessionID] {
		out[k] = a
	}
	return out, nil
}
