// Package talenta provides a high-level façade over the orchestration engine
// and its services (catalog, dependency graph, artifact and session stores).
// Most applications interact with this package by:
//  1. Creating an Assistant via New() with a gateway (optionally overriding
//     the default in-memory stores)
//  2. Creating or resuming a session
//  3. Calling Chat() per user turn
//
// The façade wires the default operation set and delegates the turn cycle to
// orchestrator.Orchestrator. All defaults are safe for local development;
// production deployments typically supply the libsql-backed stores and a
// structured logger.
package talenta

import (
	"context"

	"github.com/talentahq/talenta/artifact"
	"github.com/talentahq/talenta/catalog"
	"github.com/talentahq/talenta/core"
	"github.com/talentahq/talenta/dependency"
	"github.com/talentahq/talenta/dispatch"
	"github.com/talentahq/talenta/gateway"
	"github.com/talentahq/talenta/logging"
	"github.com/talentahq/talenta/modules"
	"github.com/talentahq/talenta/orchestrator"
	"github.com/talentahq/talenta/session"
)

// Options configures an Assistant.
type Options struct {
	// Artifacts overrides the default in-memory artifact store.
	Artifacts core.ArtifactStore
	// Sessions overrides the default in-memory session store.
	Sessions core.SessionStore
	// MaxIterations bounds gateway round-trips per user turn.
	MaxIterations int
	// MaxTurns bounds the per-session conversation log.
	MaxTurns int
	// Logger receives structured diagnostics from every layer.
	Logger logging.Logger
}

// Assistant bundles the fully wired engine behind a minimal API.
type Assistant struct {
	orch     *orchestrator.Orchestrator
	sessions core.SessionStore
	catalog  *catalog.Catalog
}

// New creates an Assistant over the given gateway with the default operation
// set registered.
func New(gw gateway.Gateway, optFns ...func(o *Options)) (*Assistant, error) {
	opts := Options{
		Artifacts:     artifact.NewInMemoryStore(),
		Sessions:      session.NewInMemoryStore(),
		MaxIterations: orchestrator.DefaultMaxIterations,
		Logger:        logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	cat := catalog.New()
	graph := dependency.NewGraph()
	dispatcher := dispatch.New(cat, graph, opts.Artifacts, func(o *dispatch.Options) {
		o.Logger = opts.Logger
	})
	if err := modules.Wire(cat, graph, dispatcher); err != nil {
		return nil, err
	}

	orch := orchestrator.New(gw, cat, dispatcher, opts.Sessions, func(o *orchestrator.Options) {
		o.MaxIterations = opts.MaxIterations
		if opts.MaxTurns > 0 {
			o.MaxTurns = opts.MaxTurns
		}
		o.Logger = opts.Logger
	})

	return &Assistant{orch: orch, sessions: opts.Sessions, catalog: cat}, nil
}

// StartSession creates (or replaces) a session with the given id. An empty id
// gets a generated one.
func (a *Assistant) StartSession(id string) (*core.Session, error) {
	if id == "" {
		id = core.NewID()
	}
	return a.sessions.Create(id)
}

// Chat resolves one user turn for the session.
func (a *Assistant) Chat(ctx context.Context, sessionID, message string) (string, error) {
	return a.orch.Chat(ctx, sessionID, message)
}

// Reset clears a session's conversation while keeping its artifacts.
func (a *Assistant) Reset(sessionID string) {
	a.orch.Reset(sessionID)
}

// Operations lists the registered operation descriptors in catalog order.
func (a *Assistant) Operations() []catalog.Descriptor {
	return a.catalog.All()
}
