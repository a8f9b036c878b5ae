package orchestrator

import (
	"context"

	"github.com/MahdadGhasemian/mcp/internal/provider"
)

// strategy is the provider-facing contract. Each variant owns its own
// continuation sub-protocol behind these two calls.
type strategy interface {
	// Name identifies the provider in logs and errors.
	Name() string

	// Respond sends a fresh user query and returns text or tool calls.
	Respond(ctx context.Context, query string) (*provider.Response, error)

	// Continue feeds resolved tool outcomes back and returns the next reply.
	Continue(ctx context.Context, outcomes []provider.ToolOutcome) (*provider.Response, error)
}

// toolInvoker executes one tool invocation in the external tool process.
type toolInvoker interface {
	Invoke(ctx context.Context, name string, args map[string]any) (string, error)
}
