package mcpbridge

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockMCPClient struct {
	InitializeFunc func(ctx context.Context, req mcp.InitializeRequest) (*mcp.InitializeResult, error)
	ListToolsFunc  func(ctx context.Context, req mcp.ListToolsRequest) (*mcp.ListToolsResult, error)
	CallToolFunc   func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
	CloseFunc      func() error

	Closed bool
}

func (m *MockMCPClient) Initialize(ctx context.Context, req mcp.InitializeRequest) (*mcp.InitializeResult, error) {
	if m.InitializeFunc != nil {
		return m.InitializeFunc(ctx, req)
	}
	return &mcp.InitializeResult{}, nil
}

func (m *MockMCPClient) ListTools(ctx context.Context, req mcp.ListToolsRequest) (*mcp.ListToolsResult, error) {
	if m.ListToolsFunc != nil {
		return m.ListToolsFunc(ctx, req)
	}
	return &mcp.ListToolsResult{}, nil
}

func (m *MockMCPClient) CallTool(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if m.CallToolFunc != nil {
		return m.CallToolFunc(ctx, req)
	}
	return &mcp.CallToolResult{}, nil
}

func (m *MockMCPClient) Close() error {
	m.Closed = true
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

func twoToolsClient() *MockMCPClient {
	return &MockMCPClient{
		ListToolsFunc: func(ctx context.Context, req mcp.ListToolsRequest) (*mcp.ListToolsResult, error) {
			return &mcp.ListToolsResult{Tools: []mcp.Tool{
				{
					Name:        "calculate_sum",
					Description: "Adds numbers",
					InputSchema: mcp.ToolInputSchema{
						Type: "object",
						Properties: map[string]any{
							"numbers": map[string]any{"type": "array"},
						},
						Required: []string{"numbers"},
					},
				},
				{
					Name:        "current_time",
					Description: "Reports the time",
					InputSchema: mcp.ToolInputSchema{Type: "object"},
				},
			}}, nil
		},
	}
}

func TestNewBridgeListsManifestInServerOrder(t *testing.T) {
	mock := twoToolsClient()

	bridge, err := NewBridge(context.Background(), mock)
	require.NoError(t, err)

	entries := bridge.Tools()
	require.Len(t, entries, 2)
	assert.Equal(t, "calculate_sum", entries[0].Name)
	assert.Equal(t, "Adds numbers", entries[0].Description)
	assert.Equal(t, "object", entries[0].InputSchema.Type)
	assert.Equal(t, []string{"numbers"}, entries[0].InputSchema.Required)
	assert.Equal(t, "current_time", entries[1].Name)
}

func TestNewBridgeInitializeFailureClosesClient(t *testing.T) {
	mock := &MockMCPClient{
		InitializeFunc: func(ctx context.Context, req mcp.InitializeRequest) (*mcp.InitializeResult, error) {
			return nil, errors.New("handshake refused")
		},
	}

	_, err := NewBridge(context.Background(), mock)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "initialize MCP session")
	assert.True(t, mock.Closed)
}

func TestNewBridgeListToolsFailureClosesClient(t *testing.T) {
	mock := &MockMCPClient{
		ListToolsFunc: func(ctx context.Context, req mcp.ListToolsRequest) (*mcp.ListToolsResult, error) {
			return nil, errors.New("broken pipe")
		},
	}

	_, err := NewBridge(context.Background(), mock)
	require.Error(t, err)
	assert.True(t, mock.Closed)
}

func TestInvokePassesNameAndArgumentsThrough(t *testing.T) {
	var gotName string
	var gotArgs map[string]any
	mock := twoToolsClient()
	mock.CallToolFunc = func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		gotName = req.Params.Name
		gotArgs, _ = req.Params.Arguments.(map[string]any)
		return &mcp.CallToolResult{Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: "6"},
		}}, nil
	}

	bridge, err := NewBridge(context.Background(), mock)
	require.NoError(t, err)

	out, err := bridge.Invoke(context.Background(), "calculate_sum", map[string]any{"numbers": []any{1.0, 2.0, 3.0}})
	require.NoError(t, err)
	assert.Equal(t, "6", out)
	assert.Equal(t, "calculate_sum", gotName)
	assert.Equal(t, map[string]any{"numbers": []any{1.0, 2.0, 3.0}}, gotArgs)
}

func TestInvokeRejectsEmptyName(t *testing.T) {
	called := false
	mock := twoToolsClient()
	mock.CallToolFunc = func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		called = true
		return &mcp.CallToolResult{}, nil
	}

	bridge, err := NewBridge(context.Background(), mock)
	require.NoError(t, err)

	_, err = bridge.Invoke(context.Background(), "", nil)
	require.Error(t, err)
	assert.False(t, called)
}

func TestInvokeFlattensMultipleTextBlocks(t *testing.T) {
	mock := twoToolsClient()
	mock.CallToolFunc = func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return &mcp.CallToolResult{Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: "first"},
			mcp.TextContent{Type: "text", Text: "second"},
		}}, nil
	}

	bridge, err := NewBridge(context.Background(), mock)
	require.NoError(t, err)

	out, err := bridge.Invoke(context.Background(), "current_time", nil)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond", out)
}

func TestInvokeReportsToolError(t *testing.T) {
	mock := twoToolsClient()
	mock.CallToolFunc = func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{mcp.TextContent{Type: "text", Text: "division by zero"}},
		}, nil
	}

	bridge, err := NewBridge(context.Background(), mock)
	require.NoError(t, err)

	_, err = bridge.Invoke(context.Background(), "calculate_sum", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "division by zero")
}

func TestInvokeWrapsTransportError(t *testing.T) {
	mock := twoToolsClient()
	mock.CallToolFunc = func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return nil, errors.New("connection reset")
	}

	bridge, err := NewBridge(context.Background(), mock)
	require.NoError(t, err)

	_, err = bridge.Invoke(context.Background(), "calculate_sum", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `call tool "calculate_sum"`)
}

func TestCloseDelegates(t *testing.T) {
	mock := twoToolsClient()
	bridge, err := NewBridge(context.Background(), mock)
	require.NoError(t, err)

	require.NoError(t, bridge.Close())
	assert.True(t, mock.Closed)
}
