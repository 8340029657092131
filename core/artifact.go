package core

// Artifact is an immutable, typed, JSON-serializable result produced by
// exactly one operation kind. Implementations are plain structs with JSON
// tags; decoding back from bytes goes through an explicit per-kind table
// (see the artifact package), never runtime type inspection.
type Artifact interface {
	Kind() ArtifactKind
}

// ArtifactStore is a session-scoped keyed store of artifacts. Implementations
// must be safe for concurrent use and must isolate sessions from each other:
// operations on one session never block on or observe another session's data.
//
// Store overwrites any prior artifact of the same kind for the session.
// Retrieve returns ErrArtifactNotFound when the kind is absent.
type ArtifactStore interface {
	Store(sessionID string, artifact Artifact) error
	Retrieve(sessionID string, kind ArtifactKind) (Artifact, error)
	Has(sessionID string, kind ArtifactKind) bool
	All(sessionID string) (map[ArtifactKind]Artifact, error)
}

// ToolDefinition is the machine-readable schema of one catalog operation as
// handed to the LLM gateway. Name, description and parameter shape must
// round-trip losslessly from the registered descriptor: this is the literal
// contract the external model reasons over.
type ToolDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}
