// Package catalog holds the closed registry of invocable operations. The
// catalog is populated once at startup and read-only afterwards; duplicate
// names are a fatal configuration error, never a silent overwrite.
package catalog

import (
	"fmt"

	"github.com/talentahq/talenta/core"
)

// Descriptor declares one callable operation: its unique name, the operation
// kind it implements, the artifact kinds it requires (and optionally uses),
// the artifact kind it produces, and the JSON-schema parameter shape exposed
// to the model. Immutable once registered.
type Descriptor struct {
	Name        string
	Description string
	Kind        core.OperationKind
	Requires    []core.ArtifactKind
	Optional    []core.ArtifactKind
	Produces    core.ArtifactKind
	Parameters  map[string]any
}

// Catalog is the operation registry. Not safe for concurrent registration;
// register everything during startup, then treat as read-only.
type Catalog struct {
	byName map[string]Descriptor
	order  []string
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{byName: make(map[string]Descriptor)}
}

// Register adds a descriptor. Empty or duplicate names fail fast.
func (c *Catalog) Register(d Descriptor) error {
	if d.Name == "" {
		return fmt.Errorf("catalog: operation name cannot be empty")
	}
	if _, exists := c.byName[d.Name]; exists {
		return fmt.Errorf("catalog: operation %q already registered", d.Name)
	}
	if d.Kind == "" {
		return fmt.Errorf("catalog: operation %q has no kind", d.Name)
	}
	c.byName[d.Name] = d
	c.order = append(c.order, d.Name)
	return nil
}

// Get returns the descriptor for a name.
func (c *Catalog) Get(name string) (Descriptor, bool) {
	d, ok := c.byName[name]
	return d, ok
}

// All returns every descriptor in stable registration order.
func (c *Catalog) All() []Descriptor {
	out := make([]Descriptor, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.byName[name])
	}
	return out
}

// ToolDefinitions exports the catalog in the machine-readable form handed to
// the LLM gateway. Name, description and parameter shape are passed through
// unmodified; schema drift here is a correctness bug, not cosmetic.
func (c *Catalog) ToolDefinitions() []core.ToolDefinition {
	out := make([]core.ToolDefinition, 0, len(c.order))
	for _, name := range c.order {
		d := c.byName[name]
		out = append(out, core.ToolDefinition{
			Name:        d.Name,
			Description: d.Description,
			Parameters:  d.Parameters,
		})
	}
	return out
}

// Len returns the number of registered operations.
func (c *Catalog) Len() int { return len(c.order) }
