// Package gemini implements the generative-chat provider. Unlike the other
// variants it holds one persistent chat session across user queries: the
// session object owns cross-turn context, and tool results are sent back
// into the same session as new messages rather than replayed history.
package gemini

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/genai"

	"github.com/MahdadGhasemian/mcp/internal/provider"
	"github.com/MahdadGhasemian/mcp/internal/tool"
)

// Priming turns seeded exactly once, when the session is first created.
const (
	primingInstruction = "You are a helpful assistant. You have access to external tools; call them whenever they help answer a question accurately, and answer in plain text otherwise."
	primingAck         = "Understood. I will call the available tools when they are useful and answer in plain text."
)

// GeminiProvider implements the Provider interface for Google Gemini.
type GeminiProvider struct {
	client    GeminiClient
	modelName string

	mu      sync.Mutex
	tools   []*genai.Tool
	session ChatSession
}

// New creates a new GeminiProvider with the specified client and model.
func New(client GeminiClient, modelName string) *GeminiProvider {
	return &GeminiProvider{
		client:    client,
		modelName: modelName,
	}
}

// Name identifies the provider in logs and errors.
func (p *GeminiProvider) Name() string {
	return "gemini"
}

// DefineTools registers the tool manifest. Must be called before the first
// Respond; the declarations are fixed into the session at creation time.
func (p *GeminiProvider) DefineTools(entries []tool.ManifestEntry) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tools = toGeminiTools(entries)
}

// ensureSession creates the chat session on first use, seeding the priming
// turns. Later calls reuse the same session.
func (p *GeminiProvider) ensureSession(ctx context.Context) error {
	if p.session != nil {
		return nil
	}

	config := &genai.GenerateContentConfig{
		SafetySettings: defaultSafetySettings(),
	}
	if len(p.tools) > 0 {
		config.Tools = p.tools
	}

	history := []*genai.Content{
		{Role: "user", Parts: []*genai.Part{genai.NewPartFromText(primingInstruction)}},
		{Role: "model", Parts: []*genai.Part{genai.NewPartFromText(primingAck)}},
	}

	session, err := p.client.CreateChat(ctx, p.modelName, config, history)
	if err != nil {
		return fmt.Errorf("create chat session: %w", mapGeminiError(err))
	}
	p.session = session
	return nil
}

// Respond sends the user query into the persistent session.
func (p *GeminiProvider) Respond(ctx context.Context, query string) (*provider.Response, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ensureSession(ctx); err != nil {
		return nil, err
	}

	resp, err := p.session.SendMessage(ctx, genai.Part{Text: query})
	if err != nil {
		return nil, mapGeminiError(err)
	}
	return fromGeminiResponse(resp)
}

// Continue sends each tool result back into the same session as a new
// message. The final exchange's reply is returned; it may contain further
// function calls, which the caller feeds back through another round.
func (p *GeminiProvider) Continue(ctx context.Context, outcomes []provider.ToolOutcome) (*provider.Response, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.session == nil {
		return nil, &provider.Error{
			Code:    provider.ErrorCodeInvalidRequest,
			Message: "no active chat session",
		}
	}

	var last *genai.GenerateContentResponse
	for _, outcome := range outcomes {
		resp, err := p.session.SendMessage(ctx, genai.Part{
			FunctionResponse: &genai.FunctionResponse{
				ID:   outcome.Call.ID,
				Name: outcome.Call.Name,
				Response: map[string]any{
					"content": outcome.Content,
				},
			},
		})
		if err != nil {
			return nil, mapGeminiError(err)
		}
		last = resp
	}

	if last == nil {
		return &provider.Response{}, nil
	}
	return fromGeminiResponse(last)
}
