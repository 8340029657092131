package artifact

import (
	"encoding/json"
	"fmt"

	"github.com/talentahq/talenta/core"
)

// DecodeFunc turns serialized bytes back into a concrete artifact of one kind.
type DecodeFunc func(data []byte) (core.Artifact, error)

// Codec maps artifact kinds to decoders. It is a closed registry constructed
// once at startup and passed by reference wherever artifacts cross a
// serialization boundary; there is no ambient global table.
type Codec struct {
	decoders map[core.ArtifactKind]DecodeFunc
}

// NewCodec returns an empty codec.
func NewCodec() *Codec {
	return &Codec{decoders: make(map[core.ArtifactKind]DecodeFunc)}
}

// Register adds a decoder for a kind. Registering the same kind twice is a
// configuration error and fails fast.
func (c *Codec) Register(kind core.ArtifactKind, fn DecodeFunc) error {
	if _, exists := c.decoders[kind]; exists {
		return fmt.Errorf("artifact codec: kind %q already registered", kind)
	}
	c.decoders[kind] = fn
	return nil
}

// RegisterJSON adds a decoder that unmarshals into a fresh value produced by
// newFn. The typical newFn is func() core.Artifact { return &jobad.JobAd{} }.
func (c *Codec) RegisterJSON(kind core.ArtifactKind, newFn func() core.Artifact) error {
	return c.Register(kind, func(data []byte) (core.Artifact, error) {
		a := newFn()
		if err := json.Unmarshal(data, a); err != nil {
			return nil, fmt.Errorf("decode artifact %q: %w", kind, err)
		}
		return a, nil
	})
}

// Encode serializes an artifact to its deterministic JSON form.
func (c *Codec) Encode(a core.Artifact) ([]byte, error) {
	data, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("encode artifact %q: %w", a.Kind(), err)
	}
	return data, nil
}

// Decode deserializes bytes of a known kind.
func (c *Codec) Decode(kind core.ArtifactKind, data []byte) (core.Artifact, error) {
	fn, ok := c.decoders[kind]
	if !ok {
		return nil, fmt.Errorf("artifact codec: no decoder for kind %q", kind)
	}
	return fn(data)
}

// Supports reports whether the codec can decode the kind.
func (c *Codec) Supports(kind core.ArtifactKind) bool {
	_, ok := c.decoders[kind]
	return ok
}
