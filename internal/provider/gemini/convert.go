package gemini

import (
	"fmt"

	"google.golang.org/genai"

	"github.com/MahdadGhasemian/mcp/internal/provider"
	"github.com/MahdadGhasemian/mcp/internal/tool"
)

// toGeminiTools converts the tool manifest to Gemini tool declarations.
// Order, names, and descriptions carry over unchanged.
func toGeminiTools(entries []tool.ManifestEntry) []*genai.Tool {
	if len(entries) == 0 {
		return nil
	}

	declarations := make([]*genai.FunctionDeclaration, 0, len(entries))
	for _, entry := range entries {
		declarations = append(declarations, &genai.FunctionDeclaration{
			Name:        entry.Name,
			Description: entry.Description,
			Parameters:  toGeminiSchema(entry.InputSchema),
		})
	}

	return []*genai.Tool{
		{FunctionDeclarations: declarations},
	}
}

// toGeminiSchema converts a manifest input schema to a Gemini Schema.
func toGeminiSchema(schema tool.InputSchema) *genai.Schema {
	out := &genai.Schema{
		Type: genai.TypeObject,
	}

	if schema.Properties != nil {
		out.Properties = make(map[string]*genai.Schema)
		for name, raw := range schema.Properties {
			out.Properties[name] = propertySchema(raw)
		}
	}

	if len(schema.Required) > 0 {
		out.Required = schema.Required
	}

	return out
}

// propertySchema converts one JSON-Schema property into a Gemini Schema.
// Unknown or missing types fall back to string.
func propertySchema(raw any) *genai.Schema {
	prop, ok := raw.(map[string]any)
	if !ok {
		return &genai.Schema{Type: genai.TypeString}
	}

	out := &genai.Schema{Type: genai.TypeString}
	if typeStr, ok := prop["type"].(string); ok {
		out.Type = toGeminiType(typeStr)
	}
	if desc, ok := prop["description"].(string); ok {
		out.Description = desc
	}
	if enum, ok := prop["enum"].([]any); ok {
		for _, v := range enum {
			if s, ok := v.(string); ok {
				out.Enum = append(out.Enum, s)
			}
		}
	}
	if items, ok := prop["items"].(map[string]any); ok {
		out.Items = propertySchema(items)
	}

	return out
}

// toGeminiType converts string type to Gemini Type.
func toGeminiType(typeStr string) genai.Type {
	switch typeStr {
	case "string":
		return genai.TypeString
	case "number":
		return genai.TypeNumber
	case "integer":
		return genai.TypeInteger
	case "boolean":
		return genai.TypeBoolean
	case "array":
		return genai.TypeArray
	case "object":
		return genai.TypeObject
	default:
		return genai.TypeString
	}
}

// defaultSafetySettings returns safety settings with blocking disabled for
// all categories.
func defaultSafetySettings() []*genai.SafetySetting {
	return []*genai.SafetySetting{
		{
			Category:  genai.HarmCategoryHateSpeech,
			Threshold: genai.HarmBlockThresholdOff,
		},
		{
			Category:  genai.HarmCategoryDangerousContent,
			Threshold: genai.HarmBlockThresholdOff,
		},
		{
			Category:  genai.HarmCategoryHarassment,
			Threshold: genai.HarmBlockThresholdOff,
		},
		{
			Category:  genai.HarmCategorySexuallyExplicit,
			Threshold: genai.HarmBlockThresholdOff,
		},
	}
}

// fromGeminiResponse converts one chat exchange into a provider response.
// Function call parts win over text; otherwise the first part's text is taken.
func fromGeminiResponse(resp *genai.GenerateContentResponse) (*provider.Response, error) {
	if len(resp.Candidates) == 0 {
		return nil, &provider.Error{
			Code:    provider.ErrorCodeInvalidRequest,
			Message: "no candidates in response",
		}
	}

	candidate := resp.Candidates[0]

	if candidate.FinishReason == genai.FinishReasonSafety {
		return nil, &provider.Error{
			Code:    provider.ErrorCodeContentBlocked,
			Message: "content blocked by safety filters",
		}
	}

	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return &provider.Response{}, nil
	}

	var calls []provider.ToolCall
	for _, part := range candidate.Content.Parts {
		if part.FunctionCall != nil {
			calls = append(calls, provider.ToolCall{
				ID:   part.FunctionCall.ID,
				Name: part.FunctionCall.Name,
				Args: part.FunctionCall.Args,
			})
		}
	}
	if len(calls) > 0 {
		return &provider.Response{ToolCalls: calls}, nil
	}

	return &provider.Response{Text: candidate.Content.Parts[0].Text}, nil
}

// mapGeminiError maps Gemini API errors to provider errors.
func mapGeminiError(err error) error {
	if err == nil {
		return nil
	}

	if apiErr, ok := err.(*genai.APIError); ok {
		switch apiErr.Code {
		case 401, 403:
			return &provider.Error{
				Code:       provider.ErrorCodeAuth,
				Message:    "authentication failed",
				Underlying: err,
			}
		case 429:
			return &provider.Error{
				Code:       provider.ErrorCodeRateLimit,
				Message:    "rate limit exceeded",
				Underlying: err,
			}
		case 400:
			return &provider.Error{
				Code:       provider.ErrorCodeInvalidRequest,
				Message:    fmt.Sprintf("invalid request: %s", apiErr.Message),
				Underlying: err,
			}
		case 500, 502, 503, 504:
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
