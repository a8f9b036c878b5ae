package gemini

import (
	"context"

	"google.golang.org/genai"
)

// ChatSession defines the interface for a persistent Gemini chat. The
// session object owns cross-turn context; callers never replay history.
type ChatSession interface {
	// SendMessage sends parts as one user turn and returns the model's reply.
	SendMessage(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// GeminiClient defines the interface for interacting with the Gemini API.
// This abstraction allows for easier testing and potential future implementations.
type GeminiClient interface {
	// CreateChat opens a new chat session seeded with the given history.
	CreateChat(ctx context.Context, model string, config *genai.GenerateContentConfig, history []*genai.Content) (ChatSession, error)
}

// RealGeminiClient wraps the official SDK client to satisfy GeminiClient.
type RealGeminiClient struct {
	client *genai.Client
}

// NewRealGeminiClient creates a new RealGeminiClient from an SDK client.
func NewRealGeminiClient(client *genai.Client) *RealGeminiClient {
	return &RealGeminiClient{client: client}
}

// CreateChat calls the SDK's Chats.Create method.
func (c *RealGeminiClient) CreateChat(ctx context.Context, model string, config *genai.GenerateContentConfig, history []*genai.Content) (ChatSession, error) {
	return c.client.Chats.Create(ctx, model, config, history)
}
