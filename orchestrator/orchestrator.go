// Package orchestrator drives the conversation cycle for each session:
// append the user turn, call the gateway with the turn snapshot and the
// catalog schema, dispatch any requested operations in model order, feed the
// results back, and repeat until the model answers with free text. A
// configured iteration bound guarantees termination even under a misbehaving
// model; gateway failures collapse to one stable apology.
package orchestrator

import (
	"context"
	"errors"
	"sync"

	"github.com/talentahq/talenta/catalog"
	"github.com/talentahq/talenta/conversation"
	"github.com/talentahq/talenta/core"
	"github.com/talentahq/talenta/dispatch"
	"github.com/talentahq/talenta/gateway"
	"github.com/talentahq/talenta/logging"
)

// Apology is the one stable user-visible message for any gateway failure,
// regardless of underlying cause. Technical detail goes to the log only.
const Apology = "I'm having trouble connecting to my language service right now. Please try again in a moment."

// LoopApology is the user-visible message when a turn exceeds the iteration
// bound.
const LoopApology = "I couldn't finish that request in a reasonable number of steps. Please try again, perhaps one task at a time."

// fallbackReply covers the rare case of a well-formed model response that
// carries neither text nor operation requests.
const fallbackReply = "I apologize, but I couldn't generate a response. Please try again."

// ErrLoopLimit reports that one user turn exhausted the configured maximum
// number of gateway round-trips.
var ErrLoopLimit = errors.New("orchestrator: loop iteration limit exceeded")

// DefaultMaxIterations bounds gateway round-trips within one user turn.
const DefaultMaxIterations = 10

// Options configure an Orchestrator.
type Options struct {
	// MaxIterations bounds gateway calls per user turn.
	MaxIterations int
	// MaxTurns bounds the conversation log, excluding the preamble.
	MaxTurns int
	// Preamble is the system turn installed at index 0 of every session log.
	Preamble string
	// Logger receives structured diagnostics.
	Logger logging.Logger
}

// Orchestrator owns the per-session conversation logs and the turn cycle.
// Turns are strictly sequential within a session; different sessions proceed
// independently.
type Orchestrator struct {
	gateway    gateway.Gateway
	catalog    *catalog.Catalog
	dispatcher *dispatch.Dispatcher
	sessions   core.SessionStore

	maxIterations int
	maxTurns      int
	preamble      string
	logger        logging.Logger

	mu    sync.Mutex
	convs map[string]*sessionConv
}

// sessionConv pairs a session's log with the mutex that serializes its turns.
type sessionConv struct {
	mu  sync.Mutex
	log *conversation.Log
}

// New constructs an Orchestrator.
func New(
	gw gateway.Gateway,
	cat *catalog.Catalog,
	d *dispatch.Dispatcher,
	sessions core.SessionStore,
	optFns ...func(o *Options),
) *Orchestrator {
	opts := Options{
		MaxIterations: DefaultMaxIterations,
		MaxTurns:      conversation.DefaultMaxTurns,
		Preamble:      DefaultPreamble,
		Logger:        logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.MaxIterations < 1 {
		opts.MaxIterations = DefaultMaxIterations
	}
	return &Orchestrator{
		gateway:       gw,
		catalog:       cat,
		dispatcher:    d,
		sessions:      sessions,
		maxIterations: opts.MaxIterations,
		maxTurns:      opts.MaxTurns,
		preamble:      opts.Preamble,
		logger:        opts.Logger,
		convs:         make(map[string]*sessionConv),
	}
}

// Chat resolves one user turn for the session and returns the assistant's
// final text. The returned error is nil for a normal reply, a gateway error
// when the apology text is returned, and ErrLoopLimit when the iteration
// bound was hit; in both failure cases the returned text is safe to show the
// user as-is.
func (o *Orchestrator) Chat(ctx context.Context, sessionID, message string) (string, error) {
	if _, err := o.sessions.Get(sessionID); err != nil {
		return "", err
	}

	conv := o.conv(sessionID)
	conv.mu.Lock()
	defer conv.mu.Unlock()

	conv.log.AppendUser(message)
	defer func() {
		if err := o.sessions.Touch(sessionID); err != nil {
			o.logger.Warn("orchestrator.touch_failed", "session_id", sessionID, "error", err.Error())
		}
	}()

	tools := o.catalog.ToolDefinitions()

	for i := 0; i < o.maxIterations; i++ {
		completion, err := o.gateway.Complete(ctx, conv.log.Snapshot(), tools)
		if err != nil {
			o.logger.Error("orchestrator.gateway_failed",
				"session_id", sessionID, "iteration", i, "error", err.Error())
			return Apology, err
		}

		if len(completion.ToolCalls) == 0 {
			text := completion.Text
			if text == "" {
				text = fallbackReply
			}
			conv.log.AppendAssistantText(text)
			return text, nil
		}

		// Dispatch in model order: later requests in the batch may depend on
		// artifacts stored by earlier ones.
		conv.log.AppendToolCalls(completion.ToolCalls)
		for _, call := range completion.ToolCalls {
			result := o.dispatcher.Execute(ctx, sessionID, call)
			conv.log.AppendToolResult(call.ID, call.Name, result.Payload())
		}
	}

	o.logger.Error("orchestrator.loop_limit",
		"session_id", sessionID, "max_iterations", o.maxIterations)
	return LoopApology, ErrLoopLimit
}

// Reset clears the session's conversation log down to the preamble. Stored
// artifacts are unaffected.
func (o *Orchestrator) Reset(sessionID string) {
	o.conv(sessionID).log.Reset()
}

// History returns the session's current turn snapshot, preamble first.
func (o *Orchestrator) History(sessionID string) []core.Turn {
	return o.conv(sessionID).log.Snapshot()
}

// conv returns (lazily creating) the conversation state for a session.
func (o *Orchestrator) conv(sessionID string) *sessionConv {
	o.mu.Lock()
	defer o.mu.Unlock()
	c, ok := o.convs[sessionID]
	if !ok {
		c = &sessionConv{log: conversation.NewLog(o.preamble, o.maxTurns)}
		o.convs[sessionID] = c
	}
	return c
}
