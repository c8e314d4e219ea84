package ai

import (
	"context"
	"fmt"
	"log"
	"net"
	"strings"
)

// FallbackService routes every stylist call to Gemini first (better at
// structured output) and falls back to Ollama on quota or connection errors.
type FallbackService struct {
	gemini Stylist
	ollama *OllamaService
}

// NewFallbackService creates a new fallback service with both providers
func NewFallbackService(gemini Stylist, ollama *OllamaService) *FallbackService {
	return &FallbackService{
		gemini: gemini,
		ollama: ollama,
	}
}

// isConnectionError checks if the error is a network/connection error
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}

	if _, ok := err.(net.Error); ok {
		return true
	}

	errStr := strings.ToLower(err.Error())
	connectionIndicators := []string{
		"connection refused",
		"no such host",
		"network is unreachable",
		"connection reset",
		"timeout",
		"dial tcp",
		"eof",
	}

	for _, indicator := range connectionIndicators {
		if strings.Contains(errStr, indicator) {
			return true
		}
	}

	return false
}

// isQuotaError checks if the error indicates API quota exhaustion (429)
func isQuotaError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())
	quotaIndicators := []string{
		"429",
		"quota",
		"rate limit",
		"too many requests",
		"resource exhausted",
	}

	for _, indicator := range quotaIndicators {
		if strings.Contains(errStr, indicator) {
			return true
		}
	}

	return false
}

func (f *FallbackService) shouldFallBack(err error) bool {
	return isQuotaError(err) || isConnectionError(err)
}

// AnalyzeWritingStyle implements Stylist
func (f *FallbackService) AnalyzeWritingStyle(ctx context.Context, pairs []EmailPairSample) (*StyleAnalysisResult, error) {
	if f.gemini != nil {
		result, err := f.gemini.AnalyzeWritingStyle(ctx, pairs)
		if err == nil {
			return result, nil
		}
		if f.ollama == nil || !f.shouldFallBack(err) {
			return nil, err
		}
		log.Printf("[AI] Gemini analysis failed: %v, falling back to Ollama", err)
	}

	if f.ollama != nil {
		return f.ollama.AnalyzeWritingStyle(ctx, pairs)
	}

	return nil, fmt.Errorf("no AI provider available for style analysis")
}

// GenerateCategorySamples implements Stylist
func (f *FallbackService) GenerateCategorySamples(ctx context.Context, summary string, category StyleCategory, examples []EmailPairSample, count int) ([]string, error) {
	if f.gemini != nil {
		result, err := f.gemini.GenerateCategorySamples(ctx, summary, category, examples, count)
		if err == nil {
			return result, nil
		}
		if f.ollama == nil || !f.shouldFallBack(err) {
			return nil, err
		}
		log.Printf("[AI] Gemini generation failed: %v, falling back to Ollama", err)
	}

	if f.ollama != nil {
		return f.ollama.GenerateCategorySamples(ctx, summary, category, examples, count)
	}

	return nil, fmt.Errorf("no AI provider available for sample generation")
}

// RegenerateEmail implements Stylist
func (f *FallbackService) RegenerateEmail(ctx context.Context, original, category string, rating int, feedback string) (string, error) {
	if f.gemini != nil {
		result, err := f.gemini.RegenerateEmail(ctx, original, category, rating, feedback)
		if err == nil {
			return result, nil
		}
		if f.ollama == nil || !f.shouldFallBack(err) {
			return "", err
		}
		log.Printf("[AI] Gemini regeneration failed: %v, falling back to Ollama", err)
	}

	if f.ollama != nil {
		return f.ollama.RegenerateEmail(ctx, original, category, rating, feedback)
	}

	return "", fmt.Errorf("no AI provider available for regeneration")
}

// ComposeEmail implements Stylist
func (f *FallbackService) ComposeEmail(ctx context.Context, input ComposeInput) (string, error) {
	if f.gemini != nil {
		result, err := f.gemini.ComposeEmail(ctx, input)
		if err == nil {
			return result, nil
		}
		if f.ollama == nil || !f.shouldFallBack(err) {
			return "", err
		}
		log.Printf("[AI] Gemini composition failed: %v, falling back to Ollama", err)
	}

	if f.ollama != nil {
		return f.ollama.ComposeEmail(ctx, input)
	}

	return "", fmt.Errorf("no AI provider available for composition")
}
