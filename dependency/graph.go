// Package dependency enforces prerequisite-artifact ordering between
// operations. The graph is a static mapping from operation kind to the
// artifact kinds it requires; the check is a pure function over the artifact
// store's presence set for one session.
package dependency

import (
	"strings"

	"github.com/talentahq/talenta/core"
)

// Check is the result of a dependency check. Missing lists every absent
// required kind, in declared order, so failure messages can name the complete
// remediation list rather than just the first gap.
type Check struct {
	CanProceed bool
	Missing    []core.ArtifactKind
}

// Graph is the static operation-kind to required-artifact-kinds mapping.
// Declared once at startup, read-only afterwards.
type Graph struct {
	requires map[core.OperationKind][]core.ArtifactKind
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{requires: make(map[core.OperationKind][]core.ArtifactKind)}
}

// Declare records the ordered prerequisite list for an operation kind. An
// empty list marks the operation standalone. A second Declare for the same
// kind replaces the first.
func (g *Graph) Declare(op core.OperationKind, kinds ...core.ArtifactKind) {
	cp := make([]core.ArtifactKind, len(kinds))
	copy(cp, kinds)
	g.requires[op] = cp
}

// Requires returns the declared prerequisite kinds for an operation, in
// declaration order. Unknown kinds have no prerequisites.
func (g *Graph) Requires(op core.OperationKind) []core.ArtifactKind {
	reqs := g.requires[op]
	cp := make([]core.ArtifactKind, len(reqs))
	copy(cp, reqs)
	return cp
}

// IsStandalone reports whether the operation has no prerequisites.
func (g *Graph) IsStandalone(op core.OperationKind) bool {
	return len(g.requires[op]) == 0
}

// MayExecute checks every required kind against the store for the session,
// collecting all absent kinds in declared order. Standalone operations pass
// through the same path with an empty missing list.
func (g *Graph) MayExecute(store core.ArtifactStore, sessionID string, op core.OperationKind) Check {
	var missing []core.ArtifactKind
	for _, kind := range g.requires[op] {
		if !store.Has(sessionID, kind) {
			missing = append(missing, kind)
		}
	}
	return Check{CanProceed: len(missing) == 0, Missing: missing}
}

// MissingNames renders missing kinds as human-readable names joined for a
// user-facing message: "requirement profile and ta screening template".
func MissingNames(missing []core.ArtifactKind) string {
	names := make([]string, len(missing))
	for i, k := range missing {
		names[i] = strings.ReplaceAll(string(k), "_", " ")
	}
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}
