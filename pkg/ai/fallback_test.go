package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStylist struct {
	err   error
	calls int
}

func (s *stubStylist) AnalyzeWritingStyle(ctx context.Context, pairs []EmailPairSample) (*StyleAnalysisResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &StyleAnalysisResult{OverallStyleSummary: "gemini", Categories: []StyleCategory{{Name: "Formal"}}}, nil
}

func (s *stubStylist) GenerateCategorySamples(ctx context.Context, summary string, category StyleCategory, examples []EmailPairSample, count int) ([]string, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return []string{"gemini sample"}, nil
}

func (s *stubStylist) RegenerateEmail(ctx context.Context, original, category string, rating int, feedback string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return "gemini rewrite", nil
}

func (s *stubStylist) ComposeEmail(ctx context.Context, input ComposeInput) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return "gemini draft", nil
}

// ollamaStub answers /api/generate with a fixed response body.
func ollamaStub(t *testing.T, response string) *OllamaService {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		fmt.Fprintf(w, `{"response": %q, "done": true}`, response)
	}))
	t.Cleanup(server.Close)
	return NewOllamaService(server.URL, "llama3")
}

func TestErrorClassification(t *testing.T) {
	assert.True(t, isQuotaError(errors.New("Gemini API error: 429 quota exceeded")))
	assert.True(t, isQuotaError(errors.New("rate limit reached")))
	assert.False(t, isQuotaError(errors.New("invalid request")))

	assert.True(t, isConnectionError(errors.New("dial tcp 127.0.0.1:1: connection refused")))
	assert.True(t, isConnectionError(errors.New("context deadline exceeded: timeout")))
	assert.False(t, isConnectionError(errors.New("style analysis is not valid JSON")))
	assert.False(t, isConnectionError(nil))
}

func TestFallback_GeminiFirst(t *testing.T) {
	gemini := &stubStylist{}
	f := NewFallbackService(gemini, ollamaStub(t, "ollama rewrite"))

	result, err := f.RegenerateEmail(context.Background(), "x", "Formal", 10, "y")

	require.NoError(t, err)
	assert.Equal(t, "gemini rewrite", result)
	assert.Equal(t, 1, gemini.calls)
}

func TestFallback_QuotaErrorFallsBack(t *testing.T) {
	gemini := &stubStylist{err: errors.New("Gemini API error: 429 quota exceeded")}
	f := NewFallbackService(gemini, ollamaStub(t, "ollama rewrite"))

	result, err := f.RegenerateEmail(context.Background(), "x", "Formal", 10, "y")

	require.NoError(t, err)
	assert.Equal(t, "ollama rewrite", result)
}

func TestFallback_NonRetriableErrorPropagates(t *testing.T) {
	gemini := &stubStylist{err: errors.New("style analysis is missing overall_style_summary")}
	f := NewFallbackService(gemini, ollamaStub(t, "never used"))

	_, err := f.AnalyzeWritingStyle(context.Background(), nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "overall_style_summary")
}

func TestFallback_ComposeFallsBackOnConnectionError(t *testing.T) {
	gemini := &stubStylist{err: errors.New("dial tcp: connection refused")}
	f := NewFallbackService(gemini, ollamaStub(t, "ollama draft"))

	result, err := f.ComposeEmail(context.Background(), ComposeInput{Recipient: "r", Topic: "t"})

	require.NoError(t, err)
	assert.Equal(t, "ollama draft", result)
}
