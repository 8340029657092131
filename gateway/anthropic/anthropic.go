// Package anthropic implements gateway.Gateway on the Anthropic Messages API
// with tool use. System turns map to the dedicated system field; tool result
// turns are folded into the user message following the assistant tool-use
// turn, as the Messages API requires.
package anthropic

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/shared/constant"

	"github.com/talentahq/talenta/core"
	"github.com/talentahq/talenta/gateway"
)

// Options configure the Anthropic gateway.
type Options struct {
	Model          anthropic.Model
	Temperature    float64
	MaxTokens      int64
	APIKey         string
	RequestTimeout time.Duration
}

// Gateway wraps the Anthropic Messages API behind gateway.Gateway.
type Gateway struct {
	client *anthropic.Client
	opts   Options
}

var _ gateway.Gateway = (*Gateway)(nil)

// New creates an Anthropic gateway using the official client.
func New(optFns ...func(o *Options)) *Gateway {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	var clientOpts []option.RequestOption
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}
	client := anthropic.NewClient(clientOpts...)
	return &Gateway{client: &client, opts: opts}
}

// NewFromClient creates an Anthropic gateway from an existing client.
func NewFromClient(client *anthropic.Client, optFns ...func(o *Options)) *Gateway {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Gateway{client: client, opts: opts}
}

func defaultOptions() Options {
	return Options{
		Model:          anthropic.ModelClaude3_5Sonnet20241022,
		Temperature:    0.7,
		MaxTokens:      4096,
		RequestTimeout: 30 * time.Second,
	}
}

// Complete implements gateway.Gateway.
func (g *Gateway) Complete(ctx context.Context, turns []core.Turn, tools []core.ToolDefinition) (*gateway.Completion, error) {
	if g.opts.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.opts.RequestTimeout)
		defer cancel()
	}

	params := anthropic.MessageNewParams{
		Model:       g.opts.Model,
		Messages:    buildMessages(turns),
		MaxTokens:   g.opts.MaxTokens,
		Temperature: anthropic.Float(g.opts.Temperature),
	}
	if system := extractSystem(turns); len(system) > 0 {
		params.System = system
	}
	if len(tools) > 0 {
		params.Tools = buildTools(tools)
	}

	resp, err := g.client.Messages.New(ctx, params)
	if err != nil {
		return nil, gateway.NewTransportError(err)
	}

	completion := &gateway.Completion{FinishReason: string(resp.StopReason)}
	for _, block := range resp.Content {
		switch block.Type {
		case "text":
			completion.Text += block.AsText().Text
		case "tool_use":
			toolBlock := block.AsToolUse()
			args, err := json.Marshal(toolBlock.Input)
			if err != nil {
				return nil, gateway.NewMalformedError(fmt.Errorf("tool input for %q: %w", toolBlock.Name, err))
			}
			completion.ToolCalls = append(completion.ToolCalls, core.ToolCall{
				ID:        toolBlock.ID,
				Name:      toolBlock.Name,
				Arguments: args,
			})
		}
	}
	if completion.Text == "" && len(completion.ToolCalls) == 0 {
		return nil, gateway.NewMalformedError(fmt.Errorf("response contained no text and no tool use"))
	}
	return completion, nil
}

// extractSystem collects system turns into Anthropic system blocks.
func extractSystem(turns []core.Turn) []anthropic.TextBlockParam {
	var blocks []anthropic.TextBlockParam
	for _, t := range turns {
		if t.Role == core.RoleSystem && t.Content != "" {
			blocks = append(blocks, anthropic.TextBlockParam{Text: t.Content})
		}
	}
	return blocks
}

// buildMessages converts the turn log into Anthropic messages. Tool results
// are indexed by call id first so they can be attached right after the
// assistant turn that requested them.
func buildMessages(turns []core.Turn) []anthropic.MessageParam {
	toolResults := make(map[string]string)
	for _, t := range turns {
		if t.Role == core.RoleTool && t.ToolCallID != "" {
			toolResults[t.ToolCallID] = t.Content
		}
	}

	var messages []anthropic.MessageParam
	for _, t := range turns {
		switch t.Role {
		case core.RoleUser:
			if t.Content != "" {
				messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(t.Content)))
			}
		case core.RoleAssistant:
			var content []anthropic.ContentBlockParamUnion
			if t.Content != "" {
				content = append(content, anthropic.NewTextBlock(t.Content))
			}
			var callIDs []string
			for _, tc := range t.ToolCalls {
				var input any
				if len(tc.Arguments) > 0 {
					if err := json.Unmarshal(tc.Arguments, &input); err != nil {
						input = string(tc.Arguments)
					}
				}
				content = append(content, anthropic.NewToolUseBlock(tc.ID, input, tc.Name))
				callIDs = append(callIDs, tc.ID)
			}
			if len(content) > 0 {
				messages = append(messages, anthropic.NewAssistantMessage(content...))
			}
			var results []anthropic.ContentBlockParamUnion
			for _, id := range callIDs {
				if res, ok := toolResults[id]; ok {
					results = append(results, anthropic.NewToolResultBlock(id, res, false))
					delete(toolResults, id)
				}
			}
			if len(results) > 0 {
				messages = append(messages, anthropic.NewUserMessage(results...))
			}
		}
	}
	return messages
}

// buildTools converts catalog tool definitions into Anthropic tool params.
func buildTools(tools []core.ToolDefinition) []anthropic.ToolUnionParam {
	out := make([]anthropic.ToolUnionParam, len(tools))
	for i, tdef := range tools {
		inputSchema := anthropic.ToolInputSchemaParam{
			Type: constant.Object("object"),
		}
		if tdef.Parameters != nil {
			if properties, exists := tdef.Parameters["properties"]; exists {
				inputSchema.Properties = properties
			}
			if required, exists := tdef.Parameters["required"]; exists {
				switch req := required.(type) {
				case []string:
					inputSchema.Required = req
				case []any:
					for _, r := range req {
						if s, ok := r.(string); ok {
							inputSchema.Required = append(inputSchema.Required, s)
						}
					}
				}
			}
		}
		out[i] = anthropic.ToolUnionParamOfTool(inputSchema, tdef.Name)
	}
	return out
}
