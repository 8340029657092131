package core

import "errors"

var (
	// ErrArtifactNotFound is returned when no artifact of the requested kind
	// exists for the session.
	ErrArtifactNotFound = errors.New("artifact not found")

	// ErrSessionNotFound is returned for unknown session identifiers.
	ErrSessionNotFound = errors.New("session not found")

	// ErrEmptySessionID is returned when a store operation is attempted with
	// an empty session identifier.
	ErrEmptySessionID = errors.New("session id cannot be empty")
)
