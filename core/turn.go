package core

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Role classifies who authored a conversation turn.
type Role string

// Conversation roles in the provider-neutral message format.
const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// ToolCall is an operation request surfaced by the model. Arguments is an
// opaque JSON payload; it is validated against the operation's parameter
// schema at the dispatcher boundary, never earlier.
type ToolCall struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// Turn is one entry of the conversation log. It is a tagged union over
// user text, assistant text, assistant operation requests and operation
// results; the populated fields depend on Role:
//
//	system/user  -> Content
//	assistant    -> Content (free text) or ToolCalls (operation requests)
//	tool         -> Content + ToolCallID + Name (result of a prior request)
//
// Turns are immutable once appended to a conversation log.
type Turn struct {
	Role       Role       `json:"role"`
	Content    string     `json:"content,omitempty"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
	Name       string     `json:"name,omitempty"`
	Timestamp  time.Time  `json:"timestamp"`
}

// NewSystemTurn creates the preamble turn.
func NewSystemTurn(text string) Turn {
	return Turn{Role: RoleSystem, Content: text, Timestamp: time.Now().UTC()}
}

// NewUserTurn creates a user text turn.
func NewUserTurn(text string) Turn {
	return Turn{Role: RoleUser, Content: text, Timestamp: time.Now().UTC()}
}

// NewAssistantTurn creates an assistant free-text turn.
func NewAssistantTurn(text string) Turn {
	return Turn{Role: RoleAssistant, Content: text, Timestamp: time.Now().UTC()}
}

// NewToolCallTurn creates an assistant turn carrying one batch of operation
// requests in the order the model returned them.
func NewToolCallTurn(calls []ToolCall) Turn {
	cp := make([]ToolCall, len(calls))
	copy(cp, calls)
	return Turn{Role: RoleAssistant, ToolCalls: cp, Timestamp: time.Now().UTC()}
}

// NewToolResultTurn creates a tool result turn referencing the originating
// call by its identifier.
func NewToolResultTurn(callID, name, content string) Turn {
	return Turn{
		Role:       RoleTool,
		Content:    content,
		ToolCallID: callID,
		Name:       name,
		Timestamp:  time.Now().UTC(),
	}
}

// IsToolRequest reports whether the turn is an assistant operation-request turn.
func (t Turn) IsToolRequest() bool {
	return t.Role == RoleAssistant && len(t.ToolCalls) > 0
}

// NewID returns a new unique identifier for sessions and tool calls.
func NewID() string { return uuid.NewString() }
