// Package mocks provides shared test doubles with configurable behaviour.
package mocks

import (
	"context"

	"github.com/MahdadGhasemian/mcp/internal/provider"
	"github.com/MahdadGhasemian/mcp/internal/tool"
)

// MockProvider implements the provider contract with configurable behaviour
type MockProvider struct {
	NameVal      string
	RespondFunc  func(ctx context.Context, query string) (*provider.Response, error)
	ContinueFunc func(ctx context.Context, outcomes []provider.ToolOutcome) (*provider.Response, error)

	DefinedTools []tool.ManifestEntry
}

// NewMockProvider creates a new mock provider
func NewMockProvider() *MockProvider {
	return &MockProvider{NameVal: "mock"}
}

func (m *MockProvider) Name() string {
	return m.NameVal
}

func (m *MockProvider) DefineTools(entries []tool.ManifestEntry) {
	m.DefinedTools = entries
}

func (m *MockProvider) Respond(ctx context.Context, query string) (*provider.Response, error) {
	if m.RespondFunc != nil {
		return m.RespondFunc(ctx, query)
	}
	return &provider.Response{Text: "ok"}, nil
}

func (m *MockProvider) Continue(ctx context.Context, outcomes []provider.ToolOutcome) (*provider.Response, error) {
	if m.ContinueFunc != nil {
		return m.ContinueFunc(ctx, outcomes)
	}
	return &provider.Response{Text: "done"}, nil
}
