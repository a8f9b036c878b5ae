package ollama

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/openai/openai-go"

	"github.com/MahdadGhasemian/mcp/internal/provider"
	"github.com/MahdadGhasemian/mcp/internal/tool"
)

// toOllamaTools converts the tool manifest to OpenAI-style tool declarations.
// Order, names, descriptions, and schemas carry over unchanged.
func toOllamaTools(entries []tool.ManifestEntry) []openai.ChatCompletionToolParam {
	if len(entries) == 0 {
		return nil
	}

	tools := make([]openai.ChatCompletionToolParam, 0, len(entries))
	for _, entry := range entries {
		tools = append(tools, openai.ChatCompletionToolParam{
			Function: openai.FunctionDefinitionParam{
				Name:        entry.Name,
				Description: openai.String(entry.Description),
				Parameters: openai.FunctionParameters{
					"type":       entry.InputSchema.Type,
					"required":   entry.InputSchema.Required,
					"properties": entry.InputSchema.Properties,
				},
			},
		})
	}
	return tools
}

// toolCallsFrom extracts tool calls from a completion message, preserving order.
func toolCallsFrom(toolCalls []openai.ChatCompletionMessageToolCall) ([]provider.ToolCall, error) {
	var calls []provider.ToolCall
	for _, tc := range toolCalls {
		args := map[string]any{}
		if tc.Function.Arguments != "" {
			if err := json.Unmarshal([]byte(tc.Function.Arguments), &args); err != nil {
				return nil, &provider.Error{
					Code:       provider.ErrorCodeInvalidRequest,
					Message:    fmt.Sprintf("malformed tool arguments for %q", tc.Function.Name),
					Underlying: err,
				}
			}
		}
		calls = append(calls, provider.ToolCall{
			ID:   tc.ID,
			Name: tc.Function.Name,
			Args: args,
		})
	}
	return calls, nil
}

// mapOllamaError maps daemon API errors to provider errors.
func mapOllamaError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == 401 || apiErr.StatusCode == 403:
			return &provider.Error{
				Code:       provider.ErrorCodeAuth,
				Message:    "authentication failed",
				Underlying: err,
			}
		case apiErr.StatusCode == 429:
			return &provider.Error{
				Code:       provider.ErrorCodeRateLimit,
				Message:    "rate limit exceeded",
				Underlying: err,
			}
		case apiErr.StatusCode == 400 || apiErr.StatusCode == 404:
			return &provider.Error{
				Code:       provider.ErrorCodeInvalidRequest,
				Message:    fmt.Sprintf("invalid request: %s", apiErr.Message),
				Underlying: err,
			}
		case apiErr.StatusCode >= 500:
			return &provider.Error{
				Code:       provider.ErrorCodeUnavailable,
				Message:    "daemon unavailable",
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
