package anthropic

import (
	"context"

	anthropic "github.com/liushuangls/go-anthropic/v2"
)

// AnthropicClient defines the interface for interacting with the Anthropic API.
// This abstraction allows for easier testing and potential future implementations.
type AnthropicClient interface {
	// CreateMessages sends a messages request and returns the full response.
	CreateMessages(ctx context.Context, req anthropic.MessagesRequest) (anthropic.MessagesResponse, error)
}

// RealAnthropicClient wraps the official SDK client to satisfy AnthropicClient.
type RealAnthropicClient struct {
	client *anthropic.Client
}

// NewRealAnthropicClient creates a new RealAnthropicClient from an SDK client.
func NewRealAnthropicClient(client *anthropic.Client) *RealAnthropicClient {
	return &RealAnthropicClient{client: client}
}

// CreateMessages calls the SDK's CreateMessages method.
func (c *RealAnthropicClient) CreateMessages(ctx context.Context, req anthropic.MessagesRequest) (anthropic.MessagesResponse, error) {
	return c.client.CreateMessages(ctx, req)
}
