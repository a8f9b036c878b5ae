package config

// ProviderKind selects which LLM backend a session talks to.
// The value is fixed for the lifetime of a session.
type ProviderKind string

const (
	ProviderAnthropic ProviderKind = "anthropic"
	ProviderOllama    ProviderKind = "ollama"
	ProviderGemini    ProviderKind = "gemini"
)

// Config holds all session configuration. It is materialized once at startup
// from the environment and treated as immutable afterwards; nothing below
// main reads the environment directly.
type Config struct {
	// Provider selects the backend variant. Required.
	Provider ProviderKind

	Anthropic AnthropicConfig
	Ollama    OllamaConfig
	Gemini    GeminiConfig

	Server ServerConfig

	// MaxToolRounds bounds tool-call round trips within one query.
	MaxToolRounds int
}

// AnthropicConfig configures the messages-API backend.
type AnthropicConfig struct {
	APIKey    string
	Model     string // Default: claude-3-5-sonnet-latest
	MaxTokens int    // Default: 1000
}

// OllamaConfig configures the local daemon backend.
type OllamaConfig struct {
	Host  string // Default: http://localhost:11434
	Model string
}

// GeminiConfig configures the generative-chat backend.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: gemini-2.0-flash
}

// ServerConfig describes how to launch the MCP tool server subprocess.
type ServerConfig struct {
	Command string
	Args    []string
}

// DefaultConfig returns the default configuration. Provider and the selected
// provider's credentials have no defaults and must come from the environment.
func DefaultConfig() *Config {
	return &Config{
		Anthropic: AnthropicConfig{
			Model:     "claude-3-5-sonnet-latest",
			MaxTokens: 1000,
		},
		Ollama: OllamaConfig{
			Host: "http://localhost:11434",
		},
		Gemini: GeminiConfig{
			Model: "gemini-2.0-flash",
		},
		Server: ServerConfig{
			Command: "toolserver",
		},
		MaxToolRounds: 8,
	}
}
