package ai

import (
	"fmt"
)

// Config holds AI provider configuration
type Config struct {
	Provider ProviderType // "gemini", "ollama" or "auto"

	// Gemini config
	GeminiAPIKey string

	// Ollama config
	OllamaBaseURL string // e.g., "http://localhost:11434"
	OllamaModel   string // e.g., "llama3", "mistral"
}

// DynamicConfig is like Config but reads the Ollama settings through getters,
// so the settings API can change them at runtime.
type DynamicConfig struct {
	Provider         ProviderType
	GeminiAPIKey     string
	GetOllamaBaseURL func() string
	GetOllamaModel   func() string
}

// NewStylist creates a Stylist based on the config
// This is the factory function - switch AI provider by changing config.Provider
func NewStylist(cfg Config) (Stylist, error) {
	switch cfg.Provider {
	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required for Gemini provider")
		}
		return NewGeminiService(cfg.GeminiAPIKey), nil

	case ProviderOllama:
		return NewOllamaService(cfg.OllamaBaseURL, cfg.OllamaModel), nil

	default:
		// Auto: Gemini with Ollama fallback when both are configured
		ollama := NewOllamaService(cfg.OllamaBaseURL, cfg.OllamaModel)
		if cfg.GeminiAPIKey != "" {
			return NewFallbackService(NewGeminiService(cfg.GeminiAPIKey), ollama), nil
		}
		return ollama, nil
	}
}

// NewStylistWithDynamicConfig creates a Stylist whose Ollama settings follow
// the runtime configuration getters.
func NewStylistWithDynamicConfig(cfg DynamicConfig) (Stylist, error) {
	switch cfg.Provider {
	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required for Gemini provider")
		}
		return NewGeminiService(cfg.GeminiAPIKey), nil

	case ProviderOllama:
		return NewOllamaServiceWithGetters(cfg.GetOllamaBaseURL, cfg.GetOllamaModel), nil

	default:
		ollama := NewOllamaServiceWithGetters(cfg.GetOllamaBaseURL, cfg.GetOllamaModel)
		if cfg.GeminiAPIKey != "" {
			return NewFallbackService(NewGeminiService(cfg.GeminiAPIKey), ollama), nil
		}
		return ollama, nil
	}
}
