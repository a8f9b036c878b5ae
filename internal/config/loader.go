package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment variable names recognized by the loader.
const (
	EnvProvider      = "MCP_PROVIDER"
	EnvServerCommand = "MCP_SERVER_COMMAND"
	EnvMaxToolRounds = "MCP_MAX_TOOL_ROUNDS"

	EnvAnthropicAPIKey = "ANTHROPIC_API_KEY"
	EnvAnthropicModel  = "ANTHROPIC_MODEL"

	EnvOllamaHost  = "OLLAMA_HOST"
	EnvOllamaModel = "OLLAMA_MODEL"

	EnvGeminiAPIKey = "GEMINI_API_KEY"
	EnvGeminiModel  = "GEMINI_MODEL"
)

// Environment abstracts environment lookups for testability.
type Environment interface {
	Getenv(key string) string
}

// OSEnvironment implements Environment using the real process environment.
type OSEnvironment struct{}

func (OSEnvironment) Getenv(key string) string {
	return os.Getenv(key)
}

// Loader handles configuration loading with an injected environment.
type Loader struct {
	env Environment
}

// NewLoader creates a production Loader using the process environment.
func NewLoader() *Loader {
	return &Loader{env: OSEnvironment{}}
}

// NewLoaderWithEnv creates a Loader with a custom environment (for testing).
func NewLoaderWithEnv(env Environment) *Loader {
	return &Loader{env: env}
}

// Load merges environment values over the defaults and validates the result.
// Variables that are unset leave their defaults untouched.
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()

	cfg.Provider = ProviderKind(strings.ToLower(strings.TrimSpace(l.env.Getenv(EnvProvider))))

	if v := l.env.Getenv(EnvAnthropicAPIKey); v != "" {
		cfg.Anthropic.APIKey = v
	}
	if v := l.env.Getenv(EnvAnthropicModel); v != "" {
		cfg.Anthropic.Model = v
	}
	if v := l.env.Getenv(EnvOllamaHost); v != "" {
		cfg.Ollama.Host = v
	}
	if v := l.env.Getenv(EnvOllamaModel); v != "" {
		cfg.Ollama.Model = v
	}
	if v := l.env.Getenv(EnvGeminiAPIKey); v != "" {
		cfg.Gemini.APIKey = v
	}
	if v := l.env.Getenv(EnvGeminiModel); v != "" {
		cfg.Gemini.Model = v
	}

	if v := l.env.Getenv(EnvServerCommand); v != "" {
		fields := strings.Fields(v)
		cfg.Server.Command = fields[0]
		cfg.Server.Args = fields[1:]
	}

	if v := l.env.Getenv(EnvMaxToolRounds); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvMaxToolRounds, err)
		}
		cfg.MaxToolRounds = n
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load is a convenience function using the default loader.
func Load() (*Config, error) {
	return NewLoader().Load()
}
