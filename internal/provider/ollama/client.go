package ollama

import (
	"context"

	"github.com/openai/openai-go"
)

// OllamaClient defines the interface for the daemon's OpenAI-compatible chat
// endpoint. This abstraction allows for easier testing and potential future
// implementations.
type OllamaClient interface {
	// CreateChatCompletion sends a chat completion request and returns the response.
	CreateChatCompletion(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error)
}

// RealOllamaClient wraps the official SDK client to satisfy OllamaClient.
// The SDK client is expected to be constructed with the daemon's base URL.
type RealOllamaClient struct {
	client *openai.Client
}

// NewRealOllamaClient creates a new RealOllamaClient from an SDK client.
func NewRealOllamaClient(client *openai.Client) *RealOllamaClient {
	return &RealOllamaClient{client: client}
}

// CreateChatCompletion calls the SDK's Chat.Completions.New method.
func (c *RealOllamaClient) CreateChatCompletion(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error) {
	return c.client.Chat.Completions.New(ctx, params)
}
