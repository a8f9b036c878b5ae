// Package mcpbridge wraps the MCP client library behind the two operations
// the session needs: the tool manifest, listed once at connection time, and
// tool invocation. All wire framing and the stdio transport belong to the
// library; the bridge adds no retries, timeouts, or result validation.
package mcpbridge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	mcpclient "github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/MahdadGhasemian/mcp/internal/tool"
)

const clientName = "mcphost"

// MCPClient is the slice of the MCP client surface the bridge depends on.
// *client.Client satisfies it.
type MCPClient interface {
	Initialize(ctx context.Context, req mcp.InitializeRequest) (*mcp.InitializeResult, error)
	ListTools(ctx context.Context, req mcp.ListToolsRequest) (*mcp.ListToolsResult, error)
	CallTool(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
	Close() error
}

// Bridge is the session's single long-lived handle to the tool process.
type Bridge struct {
	client  MCPClient
	entries []tool.ManifestEntry
}

// Connect launches the tool server subprocess over stdio and performs the
// session handshake and initial tool listing.
func Connect(ctx context.Context, command string, args ...string) (*Bridge, error) {
	c, err := mcpclient.NewStdioMCPClient(command, nil, args...)
	if err != nil {
		return nil, fmt.Errorf("start MCP server %q: %w", command, err)
	}
	return NewBridge(ctx, c)
}

// NewBridge initializes the MCP session on an existing client and lists the
// tool manifest. The manifest is immutable for the bridge's lifetime.
func NewBridge(ctx context.Context, c MCPClient) (*Bridge, error) {
	initReq := mcp.InitializeRequest{}
	initReq.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initReq.Params.ClientInfo = mcp.Implementation{Name: clientName, Version: "1.0.0"}

	if _, err := c.Initialize(ctx, initReq); err != nil {
		c.Close()
		return nil, fmt.Errorf("initialize MCP session: %w", err)
	}

	listed, err := c.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("list tools: %w", err)
	}

	entries := make([]tool.ManifestEntry, 0, len(listed.Tools))
	for _, t := range listed.Tools {
		entries = append(entries, tool.ManifestEntry{
			Name:        t.Name,
			Description: t.Description,
			InputSchema: tool.InputSchema{
				Type:       t.InputSchema.Type,
				Properties: t.InputSchema.Properties,
				Required:   t.InputSchema.Required,
			},
		})
	}

	slog.Info("connected to MCP server", "tools", tool.Names(entries))

	return &Bridge{client: c, entries: entries}, nil
}

// Tools returns the manifest listed at connection time, in server order.
// Callers must not mutate the returned slice.
func (b *Bridge) Tools() []tool.ManifestEntry {
	return b.entries
}

// Invoke forwards one tool invocation to the tool process and returns the
// flattened text content of its result. Arguments may be nil. Errors from
// the tool process propagate unchanged apart from wrapping.
func (b *Bridge) Invoke(ctx context.Context, name string, args map[string]any) (string, error) {
	if name == "" {
		return "", errors.New("tool name must not be empty")
	}

	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args

	slog.Debug("invoking tool", "name", name)

	res, err := b.client.CallTool(ctx, req)
	if err != nil {
		return "", fmt.Errorf("call tool %q: %w", name, err)
	}

	content := flattenContent(res.Content)
	if res.IsError {
		return "", fmt.Errorf("tool %q failed: %s", name, content)
	}
	return content, nil
}

// Close releases the connection and the tool server subprocess.
func (b *Bridge) Close() error {
	return b.client.Close()
}

// flattenContent joins the text blocks of a tool result. Non-text blocks
// (images, resources) are skipped; this client only feeds text back to the
// model.
func flattenContent(blocks []mcp.Content) string {
	var parts []string
	for _, block := range blocks {
		if tc, ok := block.(mcp.TextContent); ok && tc.Text != "" {
			parts = append(parts, tc.Text)
		}
	}
	return strings.Join(parts, "\n")
}
