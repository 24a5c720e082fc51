package translation

import (
	"context"
	"fmt"
	"strings"
)

// Provider is a single LLM backend capable of instruction-driven text
// completion
type Provider interface {
	// Complete sends a system instruction and user text, returning the
	// model output
	Complete(ctx context.Context, system, user string) (string, error)

	// Name returns the backend name for error reporting
	Name() string
}

// Config holds resolved API settings for building a provider
type Config struct {
	Model   string
	APIKey  string
	BaseURL string
}

// ConfigError reports missing or unusable API credentials
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Reason
}

// TranslationError reports an API failure that persisted through all retry
// attempts
type TranslationError struct {
	Provider string
	Attempts int
	Err      error
}

func (e *TranslationError) Error() string {
	return fmt.Sprintf("translation failed after %d attempts (%s): %v", e.Attempts, e.Provider, e.Err)
}

func (e *TranslationError) Unwrap() error {
	return e.Err
}

// IsGeminiModel reports whether a model name routes to the Gemini backend
func IsGeminiModel(model string) bool {
	return strings.HasPrefix(strings.ToLower(model), "gemini")
}

// NewProvider builds the provider matching the configured model name.
// Model names starting with "gemini" use the Gemini API; everything else
// goes through OpenAI-compatible chat completions.
func NewProvider(ctx context.Context, cfg Config) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, &ConfigError{Reason: "no API key found. Set AI_MODEL_API_KEY or OPENAI_API_KEY, or pass --api-key"}
	}
	if cfg.Model == "" {
		return nil, &ConfigError{Reason: "no model configured"}
	}
	if IsGeminiModel(cfg.Model) {
		return newGeminiProvider(ctx, cfg)
	}
	return newOpenAIProvider(cfg), nil
}
