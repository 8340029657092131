package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentahq/talenta/artifact"
	"github.com/talentahq/talenta/catalog"
	"github.com/talentahq/talenta/core"
	"github.com/talentahq/talenta/dependency"
	"github.com/talentahq/talenta/dispatch"
	"github.com/talentahq/talenta/gateway"
	"github.com/talentahq/talenta/session"
)

type noteArtifact struct {
	Text string `json:"text"`
}

func (noteArtifact) Kind() core.ArtifactKind { return core.ArtifactFunnelReport }

// fixture builds an orchestrator with one standalone operation and a
// scripted gateway.
func fixture(t *testing.T, gw gateway.Gateway, optFns ...func(o *Options)) (*Orchestrator, *artifact.InMemoryStore) {
	t.Helper()

	cat := catalog.New()
	require.NoError(t, cat.Register(catalog.Descriptor{
		Name: "record_note",
		Kind: core.OpFunnelReport,
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"text": map[string]any{"type": "string"},
			},
		},
	}))
	graph := dependency.NewGraph()
	graph.Declare(core.OpFunnelReport)

	store := artifact.NewInMemoryStore()
	d := dispatch.New(cat, graph, store)
	require.NoError(t, d.RegisterProcessor(core.OpFunnelReport, dispatch.ProcessorFunc(
		func(ctx context.Context, args map[string]any, prereqs map[core.ArtifactKind]core.Artifact) (core.Artifact, error) {
			text, _ := args["text"].(string)
			return &noteArtifact{Text: text}, nil
		})))

	sessions := session.NewInMemoryStore()
	_, err := sessions.Create("s1")
	require.NoError(t, err)

	return New(gw, cat, d, sessions, optFns...), store
}

func TestChat_FreeTextReply(t *testing.T) {
	gw := gateway.NewScripted().EnqueueText("Hello, how can I help?")
	orch, _ := fixture(t, gw)

	reply, err := orch.Chat(context.Background(), "s1", "hi")
	require.NoError(t, err)
	assert.Equal(t, "Hello, how can I help?", reply)
	assert.Equal(t, 1, gw.CallCount())

	history := orch.History("s1")
	require.Len(t, history, 3)
	assert.Equal(t, core.RoleSystem, history[0].Role)
	assert.Equal(t, "hi", history[1].Content)
	assert.Equal(t, "Hello, how can I help?", history[2].Content)
}

func TestChat_ToolCallCycle(t *testing.T) {
	gw := gateway.NewScripted().
		EnqueueToolCalls(core.ToolCall{ID: "c1", Name: "record_note", Arguments: json.RawMessage(`{"text":"remember this"}`)}).
		EnqueueText("Noted.")
	orch, store := fixture(t, gw)

	reply, err := orch.Chat(context.Background(), "s1", "take a note")
	require.NoError(t, err)
	assert.Equal(t, "Noted.", reply)
	assert.Equal(t, 2, gw.CallCount())
	assert.True(t, store.Has("s1", core.ArtifactFunnelReport))

	// The second gateway call must see user, tool call and tool result turns.
	second := gw.Calls[1]
	require.Len(t, second, 4)
	assert.True(t, second[2].IsToolRequest())
	assert.Equal(t, core.RoleTool, second[3].Role)
	assert.Equal(t, "c1", second[3].ToolCallID)
	assert.JSONEq(t, `{"text":"remember this"}`, second[3].Content)
}

func TestChat_BatchResultsKeepModelOrder(t *testing.T) {
	gw := gateway.NewScripted().
		EnqueueToolCalls(
			core.ToolCall{ID: "c1", Name: "record_note", Arguments: json.RawMessage(`{"text":"first"}`)},
			core.ToolCall{ID: "c2", Name: "unknown_op", Arguments: json.RawMessage(`{}`)},
		).
		EnqueueText("done")
	orch, _ := fixture(t, gw)

	_, err := orch.Chat(context.Background(), "s1", "go")
	require.NoError(t, err)

	second := gw.Calls[1]
	require.Len(t, second, 5)
	assert.Equal(t, "c1", second[3].ToolCallID)
	assert.Equal(t, "c2", second[4].ToolCallID)
	assert.Contains(t, second[4].Content, "unknown_op")
}

func TestChat_GatewayFailureReturnsApology(t *testing.T) {
	cause := gateway.NewTransportError(errors.New("connection refused"))
	gw := gateway.NewScripted().EnqueueError(cause)
	orch, _ := fixture(t, gw)

	reply, err := orch.Chat(context.Background(), "s1", "hi")
	assert.Equal(t, Apology, reply)
	assert.ErrorIs(t, err, cause)
}

func TestChat_LoopLimit(t *testing.T) {
	gw := gateway.NewScripted()
	gw.Default = &gateway.Completion{
		ToolCalls:    []core.ToolCall{{ID: "c", Name: "record_note", Arguments: json.RawMessage(`{"text":"again"}`)}},
		FinishReason: "tool_calls",
	}
	orch, _ := fixture(t, gw, func(o *Options) { o.MaxIterations = 3 })

	reply, err := orch.Chat(context.Background(), "s1", "loop forever")
	assert.Equal(t, LoopApology, reply)
	assert.ErrorIs(t, err, ErrLoopLimit)
	assert.Equal(t, 3, gw.CallCount())
}

func TestChat_UnknownSession(t *testing.T) {
	gw := gateway.NewScripted().EnqueueText("hi")
	orch, _ := fixture(t, gw)

	_, err := orch.Chat(context.Background(), "missing", "hello")
	assert.ErrorIs(t, err, core.ErrSessionNotFound)
	assert.Equal(t, 0, gw.CallCount())
}

func TestChat_EmptyCompletionGetsFallback(t *testing.T) {
	gw := gateway.NewScripted().EnqueueText("")
	orch, _ := fixture(t, gw)

	reply, err := orch.Chat(context.Background(), "s1", "hi")
	require.NoError(t, err)
	assert.Equal(t, fallbackReply, reply)
}

func TestReset_KeepsPreambleAndArtifacts(t *testing.T) {
	gw := gateway.NewScripted().
		EnqueueToolCalls(core.ToolCall{ID: "c1", Name: "record_note", Arguments: json.RawMessage(`{"text":"keep"}`)}).
		EnqueueText("ok")
	orch, store := fixture(t, gw)

	_, err := orch.Chat(context.Background(), "s1", "note it")
	require.NoError(t, err)

	orch.Reset("s1")
	history := orch.History("s1")
	require.Len(t, history, 1)
	assert.Equal(t, core.RoleSystem, history[0].Role)
	assert.True(t, store.Has("s1", core.ArtifactFunnelReport))
}
