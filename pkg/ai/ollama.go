package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// OllamaService implements Stylist using an Ollama local LLM
type OllamaService struct {
	getBaseURL func() string // Dynamic getter for BaseURL
	getModel   func() string // Dynamic getter for Model
}

// NewOllamaService creates a new Ollama service
func NewOllamaService(baseURL, model string) *OllamaService {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if model == "" {
		model = "llama3"
	}
	// Use static values (for backward compatibility when no runtime config)
	return &OllamaService{
		getBaseURL: func() string { return baseURL },
		getModel:   func() string { return model },
	}
}

// NewOllamaServiceWithGetters creates a new Ollama service with dynamic getters
func NewOllamaServiceWithGetters(getBaseURL, getModel func() string) *OllamaService {
	return &OllamaService{
		getBaseURL: getBaseURL,
		getModel:   getModel,
	}
}

// generate sends one prompt to /api/generate and returns the response text.
func (o *OllamaService) generate(ctx context.Context, prompt string, numPredict int) (string, error) {
	url := o.getBaseURL() + "/api/generate"

	payload := map[string]interface{}{
		"model":  o.getModel(),
		"prompt": prompt,
		"stream": false,
		"options": map[string]interface{}{
			"temperature": 0.3,
			"num_predict": numPredict,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama API error (%d): %s", resp.StatusCode, string(respBody))
	}

	var result struct {
		Response string `json:"response"`
		Done     bool   `json:"done"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	return result.Response, nil
}

// AnalyzeWritingStyle implements Stylist
func (o *OllamaService) AnalyzeWritingStyle(ctx context.Context, pairs []EmailPairSample) (*StyleAnalysisResult, error) {
	pairsJSON, _ := json.MarshalIndent(pairs, "", "  ")

	prompt := fmt.Sprintf(`Analyze the writing style of the user who wrote the answers in these email question-answer pairs:
%s

Respond with a valid JSON object of this exact shape:
{"overall_style_summary": "string", "categories": [{"name": "string", "description": "string", "key_characteristics": ["string"]}]}

Use up to 5 categories. Return only the JSON, no other text.`, string(pairsJSON))

	text, err := o.generate(ctx, prompt, 1500)
	if err != nil {
		return nil, fmt.Errorf("style analysis request failed: %w", err)
	}
	return parseStyleAnalysis(text)
}

// GenerateCategorySamples implements Stylist
func (o *OllamaService) GenerateCategorySamples(ctx context.Context, summary string, category StyleCategory, examples []EmailPairSample, count int) ([]string, error) {
	if len(examples) > 3 {
		examples = examples[:3]
	}
	examplesJSON, _ := json.MarshalIndent(examples, "", "  ")

	prompt := fmt.Sprintf(`Generate %d new synthetic emails (with subjects) in this style category:
Category: %s
Description: %s
Key characteristics: %s
Overall style: %s

Reference emails from the user:
%s

Return only a JSON array of strings, each string being one complete email. No other text.`,
		count, category.Name, category.Description, strings.Join(category.KeyCharacteristics, ", "),
		summary, string(examplesJSON))

	text, err := o.generate(ctx, prompt, 2000)
	if err != nil {
		return nil, fmt.Errorf("sample generation request failed: %w", err)
	}
	return parseEmailList(text)
}

// RegenerateEmail implements Stylist
func (o *OllamaService) RegenerateEmail(ctx context.Context, original, category string, rating int, feedback string) (string, error) {
	prompt := fmt.Sprintf(`Improve this email based on user feedback. Keep the original intent and topic and stay in the "%s" style category.

Original email:
%s

User rating: %d/100
User feedback: %s

Return only the rewritten email, no other text.`, category, original, rating, feedback)

	text, err := o.generate(ctx, prompt, 800)
	if err != nil {
		return "", fmt.Errorf("email regeneration request failed: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// ComposeEmail implements Stylist
func (o *OllamaService) ComposeEmail(ctx context.Context, input ComposeInput) (string, error) {
	text, err := o.generate(ctx, buildComposePrompt(input), 800)
	if err != nil {
		return "", fmt.Errorf("email composition request failed: %w", err)
	}
	return strings.TrimSpace(text), nil
}
