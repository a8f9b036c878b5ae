package config

import (
	"fmt"
)

// Validate checks the merged configuration before any connection is made.
// Credentials are only required for the selected provider, so a session can
// start with just the keys it actually needs.
func (c *Config) Validate() error {
	var errs []string

	switch c.Provider {
	case ProviderAnthropic:
		if c.Anthropic.APIKey == "" {
			errs = append(errs, EnvAnthropicAPIKey+" is required for provider anthropic")
		}
		if c.Anthropic.MaxTokens < 1 {
			errs = append(errs, "anthropic max tokens must be >= 1")
		}
	case ProviderOllama:
		if c.Ollama.Host == "" {
			errs = append(errs, EnvOllamaHost+" must not be empty")
		}
		if c.Ollama.Model == "" {
			errs = append(errs, EnvOllamaModel+" is required for provider ollama")
		}
	case ProviderGemini:
		if c.Gemini.APIKey == "" {
			errs = append(errs, EnvGeminiAPIKey+" is required for provider gemini")
		}
	case "":
		errs = append(errs, EnvProvider+" is required (anthropic, ollama, or gemini)")
	default:
		errs = append(errs, fmt.Sprintf("unknown provider %q (expected anthropic, ollama, or gemini)", c.Provider))
	}

	if c.Server.Command == "" {
		errs = append(errs, "server command must not be empty")
	}
	if c.MaxToolRounds < 1 {
		errs = append(errs, "max tool rounds must be >= 1")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}
