// Package openai implements gateway.Gateway on the OpenAI Chat Completions
// API with function/tool calling. It adapts the engine's provider-neutral
// turn log into the SDK's message format and back.
package openai

import (
	"context"
	"fmt"
	"time"

	"github.com/openai/openai-go"

	"github.com/talentahq/talenta/core"
	"github.com/talentahq/talenta/gateway"
)

// Options configure the OpenAI gateway. Fields mirror a minimal subset of
// Chat Completion parameters; extend via functional options.
type Options struct {
	Model               string
	Temperature         float64
	MaxCompletionTokens int64
	RequestTimeout      time.Duration
}

// Gateway wraps the OpenAI Chat Completions API behind gateway.Gateway.
type Gateway struct {
	client *openai.Client
	opts   Options
}

var _ gateway.Gateway = (*Gateway)(nil)

// New creates an OpenAI gateway using the official client (API key from the
// environment).
func New(optFns ...func(o *Options)) *Gateway {
	client := openai.NewClient()
	return NewFromClient(&client, optFns...)
}

// NewFromClient creates an OpenAI gateway from an existing client.
func NewFromClient(client *openai.Client, optFns ...func(o *Options)) *Gateway {
	opts := Options{
		Model:               openai.ChatModelGPT4o,
		Temperature:         0.7,
		MaxCompletionTokens: 4096,
		RequestTimeout:      30 * time.Second,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Gateway{client: client, opts: opts}
}

// Complete implements gateway.Gateway. Transport and provider errors come
// back as transport failures; responses with no usable choice come back as
// malformed failures.
func (g *Gateway) Complete(ctx context.Context, turns []core.Turn, tools []core.ToolDefinition) (*gateway.Completion, error) {
	if g.opts.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.opts.RequestTimeout)
		defer cancel()
	}

	params := openai.ChatCompletionNewParams{
		Messages:            buildMessages(turns),
		Model:               g.opts.Model,
		Temperature:         openai.Float(g.opts.Temperature),
		MaxCompletionTokens: openai.Int(g.opts.MaxCompletionTokens),
	}
	if len(tools) > 0 {
		params.Tools = buildTools(tools)
	}

	resp, err := g.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, gateway.NewTransportError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, gateway.NewMalformedError(fmt.Errorf("no choices returned"))
	}

	choice := resp.Choices[0]
	completion := &gateway.Completion{
		Text:         choice.Message.Content,
		FinishReason: string(choice.FinishReason),
	}
	for _, tc := range choice.Message.ToolCalls {
		if tc.Function.Name == "" {
			return nil, gateway.NewMalformedError(fmt.Errorf("tool call %q has no function name", tc.ID))
		}
		completion.ToolCalls = append(completion.ToolCalls, core.ToolCall{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: []byte(tc.Function.Arguments),
		})
	}
	return completion, nil
}

// buildMessages converts the turn log into OpenAI chat messages. Tool result
// turns become tool messages referencing the originating call id.
func buildMessages(turns []core.Turn) []openai.ChatCompletionMessageParamUnion {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(turns))
	for _, t := range turns {
		switch t.Role {
		case core.RoleSystem:
			messages = append(messages, openai.SystemMessage(t.Content))
		case core.RoleUser:
			messages = append(messages, openai.UserMessage(t.Content))
		case core.RoleAssistant:
			if len(t.ToolCalls) == 0 {
				messages = append(messages, openai.AssistantMessage(t.Content))
				continue
			}
			toolCalls := make([]openai.ChatCompletionMessageToolCallParam, len(t.ToolCalls))
			for i, tc := range t.ToolCalls {
				toolCalls[i] = openai.ChatCompletionMessageToolCallParam{
					ID:   tc.ID,
					Type: "function",
					Function: openai.ChatCompletionMessageToolCallFunctionParam{
						Name:      tc.Name,
						Arguments: string(tc.Arguments),
					},
				}
			}
			messages = append(messages, openai.ChatCompletionMessageParamUnion{
				OfAssistant: &openai.ChatCompletionAssistantMessageParam{
					Role:      "assistant",
					ToolCalls: toolCalls,
				},
			})
		case core.RoleTool:
			messages = append(messages, openai.ToolMessage(t.Content, t.ToolCallID))
		}
	}
	return messages
}

// buildTools converts catalog tool definitions into the SDK tool format.
func buildTools(tools []core.ToolDefinition) []openai.ChatCompletionToolParam {
	out := make([]openai.ChatCompletionToolParam, len(tools))
	for i, tdef := range tools {
		out[i] = openai.ChatCompletionToolParam{
			Type: "function",
			Function: openai.FunctionDefinitionParam{
				Name:        tdef.Name,
				Description: openai.String(tdef.Description),
				Parameters:  tdef.Parameters,
			},
		}
	}
	return out
}
