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

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"

// GeminiService implements Stylist using the Gemini REST API
type GeminiService struct {
	ApiKey  string
	BaseURL string
	Model   string
}

// NewGeminiService creates a new Gemini-backed Stylist
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		ApiKey:  apiKey,
		BaseURL: defaultGeminiBaseURL,
		Model:   "gemini-2.5-flash",
	}
}

// generateContent sends one prompt and returns the first candidate's text.
func (g *GeminiService) generateContent(ctx context.Context, prompt string) (string, error) {
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", g.BaseURL, g.Model, g.ApiKey)

	payload := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": []map[string]string{{"text": prompt}}},
		},
	}

	body, _ := json.Marshal(payload)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Gemini API error: %s", string(respBody))
	}

	var result map[string]interface{}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", err
	}

	// Parse text from the candidates structure
	if c, ok := result["candidates"].([]interface{}); ok && len(c) > 0 {
		if cand, ok := c[0].(map[string]interface{}); ok {
			if content, ok := cand["content"].(map[string]interface{}); ok {
				if parts, ok := content["parts"].([]interface{}); ok && len(parts) > 0 {
					if part, ok := parts[0].(map[string]interface{}); ok {
						if text, ok := part["text"].(string); ok {
							return text, nil
						}
					}
				}
			}
		}
	}
	return "", fmt.Errorf("no content returned")
}

// AnalyzeWritingStyle implements Stylist
func (g *GeminiService) AnalyzeWritingStyle(ctx context.Context, pairs []EmailPairSample) (*StyleAnalysisResult, error) {
	pairsJSON, _ := json.MarshalIndent(pairs, "", "  ")

	prompt := fmt.Sprintf(`I have a collection of email question-answer pairs written by a user. I need you to analyze their writing style.
Please provide:
1. A detailed summary of their writing habits and style
2. Categorize their email style into up to 5 distinct categories (e.g., formal business, casual professional, friendly, technical, etc.)
3. For each category, list key characteristics that define the style

Here are the email pairs:
%s

Provide your analysis as a valid JSON object with the following structure:
{
    "overall_style_summary": "string",
    "categories": [
        {
            "name": "string",
            "description": "string",
            "key_characteristics": ["string", "string"]
        }
    ]
}

Return only the JSON, with no markdown formatting, no code blocks, and no additional explanation.`, string(pairsJSON))

	text, err := g.generateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("style analysis request failed: %w", err)
	}

	return parseStyleAnalysis(text)
}

// GenerateCategorySamples implements Stylist
func (g *GeminiService) GenerateCategorySamples(ctx context.Context, summary string, category StyleCategory, examples []EmailPairSample, count int) ([]string, error) {
	// Cap the reference examples to keep the prompt within token limits
	if len(examples) > 3 {
		examples = examples[:3]
	}
	examplesJSON, _ := json.MarshalIndent(examples, "", "  ")

	prompt := fmt.Sprintf(`I need you to generate %d synthetic emails that match the following style category:

Category: %s
Description: %s
Key Characteristics: %s

Overall style summary: %s

These emails should be similar to the user's writing style as described, but should be completely new emails
on various topics. Make them realistic and varied.

Here are examples of the user's original emails for reference:
%s

Generate %d complete emails with subjects, varying in length and purpose.
Return as a simple JSON array of strings, where each string is an entire email.

Return only the JSON array, with no markdown formatting, no code blocks, and no additional explanation.`,
		count, category.Name, category.Description, strings.Join(category.KeyCharacteristics, ", "),
		summary, string(examplesJSON), count)

	text, err := g.generateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("sample generation request failed: %w", err)
	}

	return parseEmailList(text)
}

// RegenerateEmail implements Stylist
func (g *GeminiService) RegenerateEmail(ctx context.Context, original, category string, rating int, feedback string) (string, error) {
	prompt := fmt.Sprintf(`I need you to improve this email based on user feedback:

Original Email:
%s

Category: %s
User Rating: %d/100
User Feedback: %s

Please rewrite the email, addressing all the issues mentioned in the feedback while preserving the
original intent and topic of the email. Make it better match the user's style preferences.
Return only the email content with no additional comments or explanations.`, original, category, rating, feedback)

	text, err := g.generateContent(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("email regeneration request failed: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// ComposeEmail implements Stylist
func (g *GeminiService) ComposeEmail(ctx context.Context, input ComposeInput) (string, error) {
	text, err := g.generateContent(ctx, buildComposePrompt(input))
	if err != nil {
		return "", fmt.Errorf("email composition request failed: %w", err)
	}
	return strings.TrimSpace(text), nil
}
