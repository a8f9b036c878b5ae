package anthropic

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	anthropic "github.com/liushuangls/go-anthropic/v2"

	"github.com/MahdadGhasemian/mcp/internal/provider"
	"github.com/MahdadGhasemian/mcp/internal/tool"
)

// toAnthropicTools converts the tool manifest to Anthropic tool definitions.
// Order, names, descriptions, and schemas carry over unchanged.
func toAnthropicTools(entries []tool.ManifestEntry) []anthropic.ToolDefinition {
	if len(entries) == 0 {
		return nil
	}

	defs := make([]anthropic.ToolDefinition, 0, len(entries))
	for _, entry := range entries {
		defs = append(defs, anthropic.ToolDefinition{
			Name:        entry.Name,
			Description: entry.Description,
			InputSchema: entry.InputSchema,
		})
	}
	return defs
}

// toolCallsFrom extracts tool use blocks from a response, preserving block order.
func toolCallsFrom(content []anthropic.MessageContent) ([]provider.ToolCall, error) {
	var calls []provider.ToolCall
	for _, c := range content {
		if c.Type != anthropic.MessagesContentTypeToolUse || c.MessageContentToolUse == nil {
			continue
		}
		use := c.MessageContentToolUse

		args := map[string]any{}
		if len(use.Input) > 0 {
			if err := json.Unmarshal([]byte(use.Input), &args); err != nil {
				return nil, &provider.Error{
					Code:       provider.ErrorCodeInvalidRequest,
					Message:    fmt.Sprintf("malformed tool input for %q", use.Name),
					Underlying: err,
				}
			}
		}

		calls = append(calls, provider.ToolCall{
			ID:   use.ID,
			Name: use.Name,
			Args: args,
		})
	}
	return calls, nil
}

// firstText returns the text of the first text block, or empty when none exists.
func firstText(content []anthropic.MessageContent) string {
	for _, c := range content {
		if c.Type == anthropic.MessagesContentTypeText && c.Text != nil {
			return *c.Text
		}
	}
	return ""
}

// allText joins every text block in block order. A reply can interleave
// several text blocks around tool use blocks and all of them belong in the
// output.
func allText(content []anthropic.MessageContent) string {
	var texts []string
	for _, c := range content {
		if c.Type == anthropic.MessagesContentTypeText && c.Text != nil {
			texts = append(texts, *c.Text)
		}
	}
	return strings.Join(texts, "\n")
}

// mapAnthropicError maps Anthropic API errors to provider errors.
func mapAnthropicError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *anthropic.APIError
	if errors.As(err, &apiErr) {
		switch string(apiErr.Type) {
		case "authentication_error", "permission_error":
			return &provider.Error{
				Code:       provider.ErrorCodeAuth,
				Message:    "authentication failed",
				Underlying: err,
			}
		case "rate_limit_error":
			return &provider.Error{
				Code:       provider.ErrorCodeRateLimit,
				Message:    "rate limit exceeded",
				Underlying: err,
			}
		case "invalid_request_error", "not_found_error":
			return &provider.Error{
				Code:       provider.ErrorCodeInvalidRequest,
				Message:    fmt.Sprintf("invalid request: %s", apiErr.Message),
				Underlying: err,
			}
		case "overloaded_error", "api_error":
			return &provider.Error{
				Code:       provider.ErrorCodeUnavailable,
				Message:    "service unavailable",
				Underlying: err,
			}
		default:
			return &provider.Error{
				Code:       provider.ErrorCodeNetwork,
				Message:    fmt.Sprintf("API error: %s", apiErr.Message),
				Underlying: err,
			}
		}
	}

	return &provider.Error{
		Code:       provider.ErrorCodeNetwork,
		Message:    "network error",
		Underlying: err,
	}
}
