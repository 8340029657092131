// Package gateway abstracts the single external call of the engine: handing
// the conversation log and the catalog schema to a language-model endpoint
// and getting back either free text or an ordered list of operation requests.
// This boundary is the only place non-deterministic behavior enters the
// engine; everything downstream is deterministic given its output.
package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/talentahq/talenta/core"
)

// Completion is the normalized result of one model call. Exactly one of Text
// or ToolCalls is meaningful: a non-empty ToolCalls list takes precedence and
// preserves the order the model returned the requests in.
type Completion struct {
	Text         string
	ToolCalls    []core.ToolCall
	FinishReason string
}

// Gateway is the boundary abstraction over the external language-model call.
// Implementations must honor ctx cancellation and deadlines; a timeout is
// reported through the same error channel as a transport failure.
type Gateway interface {
	Complete(ctx context.Context, turns []core.Turn, tools []core.ToolDefinition) (*Completion, error)
}

// ErrorKind classifies gateway failures. Both kinds are unrecoverable within
// one orchestrator turn and are surfaced to the user as the same apology.
type ErrorKind int

const (
	// KindTransport covers network errors, timeouts and provider rejections.
	KindTransport ErrorKind = iota
	// KindMalformed covers responses that cannot be parsed into either free
	// text or well-formed operation requests.
	KindMalformed
)

// Error is a classified gateway failure wrapping the underlying cause.
type Error struct {
	Kind  ErrorKind
	Cause error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindMalformed:
		return fmt.Sprintf("gateway: malformed model response: %v", e.Cause)
	default:
		return fmt.Sprintf("gateway: transport failure: %v", e.Cause)
	}
}

// Unwrap exposes the cause for errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.Cause }

// NewTransportError wraps a network / timeout / provider failure.
func NewTransportError(cause error) error {
	return &Error{Kind: KindTransport, Cause: cause}
}

// NewMalformedError wraps an unparsable-response failure.
func NewMalformedError(cause error) error {
	return &Error{Kind: KindMalformed, Cause: cause}
}

// IsGatewayError reports whether err is a classified gateway failure.
func IsGatewayError(err error) bool {
	var ge *Error
	return errors.As(err, &ge)
}
