// Package conversation implements the bounded per-session turn log. The log
// always begins with a preamble (system) turn that is never evicted; when the
// number of subsequent turns exceeds the configured bound, the oldest
// non-preamble turns are dropped first. The preamble is stored outside the
// ring of evictable turns so the invariant holds structurally rather than by
// eviction-order bookkeeping.
package conversation

import (
	"sync"

	"github.com/talentahq/talenta/core"
)

// DefaultMaxTurns is the default bound on non-preamble turns.
const DefaultMaxTurns = 50

// Log is an append-only conversation history for one session. Safe for
// concurrent use; appended turns are never mutated afterwards.
type Log struct {
	mu       sync.Mutex
	preamble core.Turn
	turns    []core.Turn
	maxTurns int
}

// NewLog creates a log seeded with the preamble text. maxTurns bounds the
// number of turns excluding the preamble; values below one fall back to
// DefaultMaxTurns.
func NewLog(preamble string, maxTurns int) *Log {
	if maxTurns < 1 {
		maxTurns = DefaultMaxTurns
	}
	return &Log{
		preamble: core.NewSystemTurn(preamble),
		maxTurns: maxTurns,
	}
}

// AppendUser appends a user text turn.
func (l *Log) AppendUser(text string) {
	l.append(core.NewUserTurn(text))
}

// AppendAssistantText appends an assistant free-text turn.
func (l *Log) AppendAssistantText(text string) {
	l.append(core.NewAssistantTurn(text))
}

// AppendToolCalls appends one assistant turn carrying a batch of operation
// requests in model order.
func (l *Log) AppendToolCalls(calls []core.ToolCall) {
	l.append(core.NewToolCallTurn(calls))
}

// AppendToolResult appends an operation result turn tagged with the
// originating call identifier.
func (l *Log) AppendToolResult(callID, name, content string) {
	l.append(core.NewToolResultTurn(callID, name, content))
}

func (l *Log) append(t core.Turn) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.turns = append(l.turns, t)
	for len(l.turns) > l.maxTurns {
		l.turns = l.turns[1:]
	}
}

// Snapshot returns the ordered turn list, preamble first. The slice is a
// copy and safe for caller use while the log keeps growing.
func (l *Log) Snapshot() []core.Turn {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]core.Turn, 0, len(l.turns)+1)
	out = append(out, l.preamble)
	out = append(out, l.turns...)
	return out
}

// Len returns the turn count including the preamble.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.turns) + 1
}

// Reset clears everything except the preamble.
func (l *Log) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.turns = nil
}
