// Package ollama implements the local daemon provider, speaking the daemon's
// OpenAI-compatible chat endpoint. Each user query starts a fresh
// conversation. Tool results are folded back as plain user turns, one
// follow-up request per result, with no tool declarations attached to the
// follow-up round. A transport failure on a follow-up is downgraded to a
// fixed apology rather than propagated.
package ollama

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/openai/openai-go"

	"github.com/MahdadGhasemian/mcp/internal/provider"
	"github.com/MahdadGhasemian/mcp/internal/tool"
)

// ApologyText replaces the follow-up answer when the daemon fails mid
// continuation. Surfacing this instead of an error keeps the query's output
// well formed for the user.
const ApologyText = "I apologize, I couldn't process the tool result."

// OllamaProvider implements the Provider interface for a local Ollama daemon.
type OllamaProvider struct {
	client    OllamaClient
	modelName string

	mu       sync.Mutex
	tools    []openai.ChatCompletionToolParam
	messages []openai.ChatCompletionMessageParamUnion
}

// New creates a new OllamaProvider with the specified client and model.
func New(client OllamaClient, modelName string) *OllamaProvider {
	return &OllamaProvider{
		client:    client,
		modelName: modelName,
	}
}

// Name identifies the provider in logs and errors.
func (p *OllamaProvider) Name() string {
	return "ollama"
}

// DefineTools registers the tool manifest for inclusion in initial requests.
func (p *OllamaProvider) DefineTools(entries []tool.ManifestEntry) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tools = toOllamaTools(entries)
}

// Respond starts a fresh conversation with the user query and the full tool
// manifest attached.
func (p *OllamaProvider) Respond(ctx context.Context, query string) (*provider.Response, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.messages = []openai.ChatCompletionMessageParamUnion{
		openai.UserMessage(query),
	}

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(p.modelName),
		Messages: p.messages,
		Tools:    p.tools,
	}

	resp, err := p.client.CreateChatCompletion(ctx, params)
	if err != nil {
		return nil, mapOllamaError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, &provider.Error{
			Code:    provider.ErrorCodeInvalidRequest,
			Message: "no choices in response",
		}
	}

	msg := resp.Choices[0].Message
	if len(msg.ToolCalls) > 0 {
		calls, err := toolCallsFrom(msg.ToolCalls)
		if err != nil {
			return nil, err
		}
		return &provider.Response{ToolCalls: calls}, nil
	}

	p.messages = append(p.messages, openai.AssistantMessage(msg.Content))
	return &provider.Response{Text: msg.Content}, nil
}

// Continue folds each tool result into history as a user turn and issues one
// follow-up request per result, with no tools attached. A failed follow-up
// contributes the apology text instead of aborting the query.
func (p *OllamaProvider) Continue(ctx context.Context, outcomes []provider.ToolOutcome) (*provider.Response, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var texts []string
	for _, outcome := range outcomes {
		p.messages = append(p.messages, openai.UserMessage(
			fmt.Sprintf("Tool %s returned: %s", outcome.Call.Name, outcome.Content),
		))

		params := openai.ChatCompletionNewParams{
			Model:    openai.ChatModel(p.modelName),
			Messages: p.messages,
		}

		resp, err := p.client.CreateChatCompletion(ctx, params)
		if err != nil || len(resp.Choices) == 0 {
			slog.Warn("follow-up request failed", "tool", outcome.Call.Name, "error", err)
			texts = append(texts, ApologyText)
			continue
		}

		text := resp.Choices[0].Message.Content
		p.messages = append(p.messages, openai.AssistantMessage(text))
		texts = append(texts, text)
	}

	return &provider.Response{Text: strings.Join(texts, "\n")}, nil
}
