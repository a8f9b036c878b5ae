// Package anthropic implements the key-authenticated completion provider.
// Each user query starts a fresh conversation; tool results are batched into
// a single follow-up request that carries no tool definitions, so the model
// must answer in text.
package anthropic

import (
	"context"
	"sync"

	anthropic "github.com/liushuangls/go-anthropic/v2"

	"github.com/MahdadGhasemian/mcp/internal/provider"
	"github.com/MahdadGhasemian/mcp/internal/tool"
)

// AnthropicProvider implements the Provider interface for the Anthropic API.
type AnthropicProvider struct {
	client    AnthropicClient
	modelName string
	maxTokens int

	mu       sync.Mutex
	tools    []anthropic.ToolDefinition
	messages []anthropic.Message
}

// New creates a new AnthropicProvider with the specified client and model.
func New(client AnthropicClient, modelName string, maxTokens int) *AnthropicProvider {
	return &AnthropicProvider{
		client:    client,
		modelName: modelName,
		maxTokens: maxTokens,
	}
}

// Name identifies the provider in logs and errors.
func (p *AnthropicProvider) Name() string {
	return "anthropic"
}

// DefineTools registers the tool manifest for inclusion in initial requests.
func (p *AnthropicProvider) DefineTools(entries []tool.ManifestEntry) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tools = toAnthropicTools(entries)
}

// Respond starts a fresh conversation with the user query and the full tool
// manifest attached.
func (p *AnthropicProvider) Respond(ctx context.Context, query string) (*provider.Response, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.messages = []anthropic.Message{
		anthropic.NewUserTextMessage(query),
	}

	req := anthropic.MessagesRequest{
		Model:     anthropic.Model(p.modelName),
		Messages:  p.messages,
		MaxTokens: p.maxTokens,
		Tools:     p.tools,
	}

	resp, err := p.client.CreateMessages(ctx, req)
	if err != nil {
		return nil, mapAnthropicError(err)
	}

	// Echo the assistant turn verbatim so a continuation can reference the
	// tool use blocks by ID.
	p.messages = append(p.messages, anthropic.Message{
		Role:    anthropic.RoleAssistant,
		Content: resp.Content,
	})

	calls, err := toolCallsFrom(resp.Content)
	if err != nil {
		return nil, err
	}
	if len(calls) > 0 {
		return &provider.Response{ToolCalls: calls}, nil
	}
	return &provider.Response{Text: allText(resp.Content)}, nil
}

// Continue feeds the batched tool results back as a single user turn and
// issues one follow-up request. The follow-up carries no tool definitions,
// forcing a text answer.
func (p *AnthropicProvider) Continue(ctx context.Context, outcomes []provider.ToolOutcome) (*provider.Response, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	results := make([]anthropic.MessageContent, 0, len(outcomes))
	for _, outcome := range outcomes {
		results = append(results, anthropic.NewToolResultMessageContent(outcome.Call.ID, outcome.Content, false))
	}
	p.messages = append(p.messages, anthropic.Message{
		Role:    anthropic.RoleUser,
		Content: results,
	})

	req := anthropic.MessagesRequest{
		Model:     anthropic.Model(p.modelName),
		Messages:  p.messages,
		MaxTokens: p.maxTokens,
	}

	resp, err := p.client.CreateMessages(ctx, req)
	if err != nil {
		return nil, mapAnthropicError(err)
	}

	p.messages = append(p.messages, anthropic.Message{
		Role:    anthropic.RoleAssistant,
		Content: resp.Content,
	})

	return &provider.Response{Text: firstText(resp.Content)}, nil
}
