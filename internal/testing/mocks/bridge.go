package mocks

import (
	"context"

	"github.com/MahdadGhasemian/mcp/internal/tool"
)

// MockBridge implements the tool invoker contract with configurable behaviour
type MockBridge struct {
	ToolsVal   []tool.ManifestEntry
	InvokeFunc func(ctx context.Context, name string, args map[string]any) (string, error)
	CloseFunc  func() error

	Invoked []string
	Closed  bool
}

// NewMockBridge creates a new mock bridge
func NewMockBridge() *MockBridge {
	return &MockBridge{}
}

func (m *MockBridge) Tools() []tool.ManifestEntry {
	return m.ToolsVal
}

func (m *MockBridge) Invoke(ctx context.Context, name string, args map[string]any) (string, error) {
	m.Invoked = append(m.Invoked, name)
	if m.InvokeFunc != nil {
		return m.InvokeFunc(ctx, name, args)
	}
	return "", nil
}

func (m *MockBridge) Close() error {
	m.Closed = true
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}
