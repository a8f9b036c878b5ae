// Package provider defines the capability contract shared by the three LLM
// backend variants. Each variant owns its native conversation shape and its
// own tool-result continuation protocol; the orchestrator only sees the
// normalized Response.
package provider

import (
	"context"

	"github.com/MahdadGhasemian/mcp/internal/tool"
)

// ToolCall is one tool invocation requested by the model. It exists only for
// the duration of a single orchestration pass.
type ToolCall struct {
	ID   string // empty for backends that do not issue call IDs
	Name string
	Args map[string]any
}

// ToolOutcome pairs a requested tool call with its resolved result content.
type ToolOutcome struct {
	Call    ToolCall
	Content string
}

// Response is the normalized outcome of one model exchange. Exactly one of
// Text or ToolCalls is populated: a backend that returns both in one reply
// surfaces only the tool calls and defers any text until after resolution.
type Response struct {
	Text      string
	ToolCalls []ToolCall
}

// Provider is implemented once per backend variant, selected at session
// construction and fixed for the session lifetime.
type Provider interface {
	// Name identifies the variant for logging and display.
	Name() string

	// DefineTools adapts the manifest into the backend's native tool
	// declarations. Called once per session, before the first Respond. An
	// empty manifest leaves the backend without tool-calling capability.
	DefineTools(entries []tool.ManifestEntry)

	// Respond starts a new user query. Flat-history variants reset their
	// conversation here; the chat-session variant sends the query into its
	// persistent session.
	Respond(ctx context.Context, query string) (*Response, error)

	// Continue folds resolved tool invocations back into the exchange and
	// returns the model's follow-up, which may contain further tool calls.
	Continue(ctx context.Context, outcomes []ToolOutcome) (*Response, error)
}
