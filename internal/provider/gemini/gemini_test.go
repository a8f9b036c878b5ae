package gemini

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/MahdadGhasemian/mcp/internal/provider"
	"github.com/MahdadGhasemian/mcp/internal/tool"
)

// MockChatSession implements ChatSession for testing.
type MockChatSession struct {
	SendMessageFunc func(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)

	Sent [][]genai.Part
}

func (m *MockChatSession) SendMessage(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	m.Sent = append(m.Sent, parts)
	if m.SendMessageFunc != nil {
		return m.SendMessageFunc(ctx, parts...)
	}
	return textResponse("ok"), nil
}

// MockGeminiClient implements GeminiClient for testing.
type MockGeminiClient struct {
	CreateChatFunc func(ctx context.Context, model string, config *genai.GenerateContentConfig, history []*genai.Content) (ChatSession, error)

	CreateCalls int
	LastConfig  *genai.GenerateContentConfig
	LastHistory []*genai.Content
}

func (m *MockGeminiClient) CreateChat(ctx context.Context, model string, config *genai.GenerateContentConfig, history []*genai.Content) (ChatSession, error) {
	m.CreateCalls++
	m.LastConfig = config
	m.LastHistory = history
	if m.CreateChatFunc != nil {
		return m.CreateChatFunc(ctx, model, config, history)
	}
	return &MockChatSession{}, nil
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Role: "model", Parts: []*genai.Part{{Text: text}}}},
		},
	}
}

func functionCallResponse(id, name string, args map[string]any) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Role: "model", Parts: []*genai.Part{
				{FunctionCall: &genai.FunctionCall{ID: id, Name: name, Args: args}},
			}}},
		},
	}
}

func manifest() []tool.ManifestEntry {
	return []tool.ManifestEntry{
		{
			Name:        "calculate_sum",
			Description: "Adds numbers",
			InputSchema: tool.InputSchema{
				Type: "object",
				Properties: map[string]any{
					"numbers": map[string]any{"type": "array", "items": map[string]any{"type": "number"}},
				},
				Required: []string{"numbers"},
			},
		},
	}
}

func TestSessionCreatedOnceWithPrimingTurns(t *testing.T) {
	session := &MockChatSession{}
	mock := &MockGeminiClient{
		CreateChatFunc: func(ctx context.Context, model string, config *genai.GenerateContentConfig, history []*genai.Content) (ChatSession, error) {
			return session, nil
		},
	}
	p := New(mock, "gemini-2.0-flash")
	p.DefineTools(manifest())

	_, err := p.Respond(context.Background(), "first query")
	require.NoError(t, err)
	_, err = p.Respond(context.Background(), "second query")
	require.NoError(t, err)

	assert.Equal(t, 1, mock.CreateCalls)
	require.Len(t, mock.LastHistory, 2)
	assert.Equal(t, "user", mock.LastHistory[0].Role)
	assert.Equal(t, "model", mock.LastHistory[1].Role)

	// Both queries went into the same session.
	assert.Len(t, session.Sent, 2)
}

func TestSessionSurvivesToolExchange(t *testing.T) {
	responses := []*genai.GenerateContentResponse{
		functionCallResponse("fc_1", "calculate_sum", map[string]any{"numbers": []any{2.0, 2.0}}),
		textResponse("the sum is 4"),
		textResponse("hello again"),
	}
	session := &MockChatSession{}
	session.SendMessageFunc = func(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
		resp := responses[0]
		responses = responses[1:]
		return resp, nil
	}
	mock := &MockGeminiClient{
		CreateChatFunc: func(ctx context.Context, model string, config *genai.GenerateContentConfig, history []*genai.Content) (ChatSession, error) {
			return session, nil
		},
	}
	p := New(mock, "gemini-2.0-flash")
	p.DefineTools(manifest())

	resp, err := p.Respond(context.Background(), "add 2 and 2")
	require.NoError(t, err)
	require.Len(t, resp.ToolCalls, 1)

	resp, err = p.Continue(context.Background(), []provider.ToolOutcome{
		{Call: resp.ToolCalls[0], Content: "4"},
	})
	require.NoError(t, err)
	assert.Equal(t, "the sum is 4", resp.Text)

	_, err = p.Respond(context.Background(), "say hello")
	require.NoError(t, err)

	assert.Equal(t, 1, mock.CreateCalls)
	assert.Len(t, session.Sent, 3)
}

func TestSessionCarriesToolDeclarations(t *testing.T) {
	mock := &MockGeminiClient{}
	p := New(mock, "gemini-2.0-flash")
	p.DefineTools(manifest())

	_, err := p.Respond(context.Background(), "hello")
	require.NoError(t, err)

	require.NotNil(t, mock.LastConfig)
	require.Len(t, mock.LastConfig.Tools, 1)
	decls := mock.LastConfig.Tools[0].FunctionDeclarations
	require.Len(t, decls, 1)
	assert.Equal(t, "calculate_sum", decls[0].Name)
	assert.Equal(t, genai.TypeObject, decls[0].Parameters.Type)
	assert.Equal(t, []string{"numbers"}, decls[0].Parameters.Required)
	assert.Equal(t, genai.TypeArray, decls[0].Parameters.Properties["numbers"].Type)
}

func TestRespondReturnsFirstPartText(t *testing.T) {
	session := &MockChatSession{
		SendMessageFunc: func(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
			return &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{
					{Content: &genai.Content{Role: "model", Parts: []*genai.Part{
						{Text: "first"},
						{Text: "second"},
					}}},
				},
			}, nil
		},
	}
	mock := &MockGeminiClient{
		CreateChatFunc: func(ctx context.Context, model string, config *genai.GenerateContentConfig, history []*genai.Content) (ChatSession, error) {
			return session, nil
		},
	}
	p := New(mock, "gemini-2.0-flash")

	resp, err := p.Respond(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "first", resp.Text)
}

func TestRespondExtractsFunctionCalls(t *testing.T) {
	session := &MockChatSession{
		SendMessageFunc: func(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
			return functionCallResponse("fc_1", "calculate_sum", map[string]any{"numbers": []any{1.0, 2.0}}), nil
		},
	}
	mock := &MockGeminiClient{
		CreateChatFunc: func(ctx context.Context, model string, config *genai.GenerateContentConfig, history []*genai.Content) (ChatSession, error) {
			return session, nil
		},
	}
	p := New(mock, "gemini-2.0-flash")
	p.DefineTools(manifest())

	resp, err := p.Respond(context.Background(), "add 1 and 2")
	require.NoError(t, err)
	require.Len(t, resp.ToolCalls, 1)
	assert.Equal(t, "calculate_sum", resp.ToolCalls[0].Name)
	assert.Equal(t, map[string]any{"numbers": []any{1.0, 2.0}}, resp.ToolCalls[0].Args)
}

func TestContinueSendsFunctionResponseIntoSameSession(t *testing.T) {
	session := &MockChatSession{}
	session.SendMessageFunc = func(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
		if len(session.Sent) == 1 {
			return functionCallResponse("fc_1", "calculate_sum", map[string]any{"numbers": []any{2.0, 2.0}}), nil
		}
		return textResponse("the sum is 4"), nil
	}
	mock := &MockGeminiClient{
		CreateChatFunc: func(ctx context.Context, model string, config *genai.GenerateContentConfig, history []*genai.Content) (ChatSession, error) {
			return session, nil
		},
	}
	p := New(mock, "gemini-2.0-flash")
	p.DefineTools(manifest())

	resp, err := p.Respond(context.Background(), "add 2 and 2")
	require.NoError(t, err)
	require.Len(t, resp.ToolCalls, 1)

	final, err := p.Continue(context.Background(), []provider.ToolOutcome{
		{Call: resp.ToolCalls[0], Content: "4"},
	})
	require.NoError(t, err)
	assert.Equal(t, "the sum is 4", final.Text)

	require.Len(t, session.Sent, 2)
	sent := session.Sent[1]
	require.Len(t, sent, 1)
	require.NotNil(t, sent[0].FunctionResponse)
	assert.Equal(t, "calculate_sum", sent[0].FunctionResponse.Name)
	assert.Equal(t, map[string]any{"content": "4"}, sent[0].FunctionResponse.Response)
}

func TestContinueMayReturnFurtherFunctionCalls(t *testing.T) {
	session := &MockChatSession{
		SendMessageFunc: func(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
			return functionCallResponse("fc_2", "calculate_sum", map[string]any{"numbers": []any{3.0}}), nil
		},
	}
	mock := &MockGeminiClient{
		CreateChatFunc: func(ctx context.Context, model string, config *genai.GenerateContentConfig, history []*genai.Content) (ChatSession, error) {
			return session, nil
		},
	}
	p := New(mock, "gemini-2.0-flash")

	_, err := p.Respond(context.Background(), "chain some math")
	require.NoError(t, err)

	resp, err := p.Continue(context.Background(), []provider.ToolOutcome{
		{Call: provider.ToolCall{ID: "fc_1", Name: "calculate_sum"}, Content: "4"},
	})
	require.NoError(t, err)
	require.Len(t, resp.ToolCalls, 1)
	assert.Equal(t, "fc_2", resp.ToolCalls[0].ID)
}

func TestContinueWithoutSessionFails(t *testing.T) {
	p := New(&MockGeminiClient{}, "gemini-2.0-flash")

	_, err := p.Continue(context.Background(), []provider.ToolOutcome{
		{Call: provider.ToolCall{Name: "calculate_sum"}, Content: "4"},
	})
	require.Error(t, err)
	assert.Equal(t, provider.ErrorCodeInvalidRequest, provider.CodeOf(err))
}

func TestRespondMapsSafetyBlock(t *testing.T) {
	session := &MockChatSession{
		SendMessageFunc: func(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
			return &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{
					{FinishReason: genai.FinishReasonSafety},
				},
			}, nil
		},
	}
	mock := &MockGeminiClient{
		CreateChatFunc: func(ctx context.Context, model string, config *genai.GenerateContentConfig, history []*genai.Content) (ChatSession, error) {
			return session, nil
		},
	}
	p := New(mock, "gemini-2.0-flash")

	_, err := p.Respond(context.Background(), "hello")
	require.Error(t, err)
	assert.Equal(t, provider.ErrorCodeContentBlocked, provider.CodeOf(err))
}
