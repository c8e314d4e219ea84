package ai

import (
	"context"
)

// EmailPairSample is one question/answer pair used as writing-style evidence.
type EmailPairSample struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// StyleCategory is a named cluster of writing-style traits.
type StyleCategory struct {
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	KeyCharacteristics []string `json:"key_characteristics"`
}

// StyleAnalysisResult is the structured output of a writing-style analysis.
type StyleAnalysisResult struct {
	OverallStyleSummary string          `json:"overall_style_summary"`
	Categories          []StyleCategory `json:"categories"`
}

// ComposeInput carries everything the model needs to draft one email.
type ComposeInput struct {
	Recipient    string
	Topic        string
	KeyPoints    []string
	StyleSummary string
	Examples     []string
}

// Stylist is the interface for the external language-model capability.
// Implement this interface to add new AI providers (Gemini, Ollama, OpenAI, etc.)
type Stylist interface {
	AnalyzeWritingStyle(ctx context.Context, pairs []EmailPairSample) (*StyleAnalysisResult, error)
	GenerateCategorySamples(ctx context.Context, summary string, category StyleCategory, examples []EmailPairSample, count int) ([]string, error)
	RegenerateEmail(ctx context.Context, original, category string, rating int, feedback string) (string, error)
	ComposeEmail(ctx context.Context, input ComposeInput) (string, error)
}

// ProviderType represents the AI provider type
type ProviderType string

const (
	ProviderGemini ProviderType = "gemini"
	ProviderOllama ProviderType = "ollama"
	ProviderAuto   ProviderType = "auto"
)
