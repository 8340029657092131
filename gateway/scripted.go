package gateway

import (
	"context"
	"sync"

	"github.com/talentahq/talenta/core"
)

// Scripted is a deterministic in-memory Gateway for tests and examples. It
// replays enqueued completions (or errors) in order; once the script is
// exhausted it returns Default, or an empty text completion if Default is nil.
type Scripted struct {
	mu      sync.Mutex
	queue   []scriptStep
	Default *Completion

	// Calls records every invocation's turn snapshot for assertions.
	Calls [][]core.Turn
}

type scriptStep struct {
	completion *Completion
	err        error
}

// NewScripted returns an empty scripted gateway.
func NewScripted() *Scripted {
	return &Scripted{}
}

// Enqueue appends a completion to the script.
func (s *Scripted) Enqueue(c *Completion) *Scripted {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = append(s.queue, scriptStep{completion: c})
	return s
}

// EnqueueText appends a free-text completion.
func (s *Scripted) EnqueueText(text string) *Scripted {
	return s.Enqueue(&Completion{Text: text, FinishReason: "stop"})
}

// EnqueueToolCalls appends a completion requesting the given operations.
func (s *Scripted) EnqueueToolCalls(calls ...core.ToolCall) *Scripted {
	return s.Enqueue(&Completion{ToolCalls: calls, FinishReason: "tool_calls"})
}

// EnqueueError appends a failing step.
func (s *Scripted) EnqueueError(err error) *Scripted {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = append(s.queue, scriptStep{err: err})
	return s
}

// Complete implements Gateway.
func (s *Scripted) Complete(ctx context.Context, turns []core.Turn, _ []core.ToolDefinition) (*Completion, error) {
	if err := ctx.Err(); err != nil {
		return nil, NewTransportError(err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make([]core.Turn, len(turns))
	copy(snapshot, turns)
	s.Calls = append(s.Calls, snapshot)

	if len(s.queue) == 0 {
		if s.Default != nil {
			return s.Default, nil
		}
		return &Completion{Text: "", FinishReason: "stop"}, nil
	}
	step := s.queue[0]
	s.queue = s.queue[1:]
	if step.err != nil {
		return nil, step.err
	}
	return step.completion, nil
}

// CallCount returns how many times Complete has been invoked.
func (s *Scripted) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Calls)
}
