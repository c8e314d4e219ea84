package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// stripCodeFences removes surrounding markdown code blocks that models emit
// despite being told not to.
func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	newline := strings.Index(text, "\n")
	end := strings.LastIndex(text, "```")
	if newline == -1 || end <= newline {
		return text
	}
	return strings.TrimSpace(text[newline+1 : end])
}

// parseStyleAnalysis validates the model output into a StyleAnalysisResult.
func parseStyleAnalysis(text string) (*StyleAnalysisResult, error) {
	content := stripCodeFences(text)

	// Fall back to the outermost object if the model wrapped the JSON in prose
	if start, end := strings.Index(content, "{"), strings.LastIndex(content, "}"); start != -1 && end > start {
		content = content[start : end+1]
	}

	var result StyleAnalysisResult
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, fmt.Errorf("style analysis is not valid JSON: %w", err)
	}

	if result.OverallStyleSummary == "" {
		return nil, fmt.Errorf("style analysis is missing overall_style_summary")
	}
	if len(result.Categories) == 0 {
		return nil, fmt.Errorf("style analysis contains no categories")
	}
	for _, c := range result.Categories {
		if c.Name == "" {
			return nil, fmt.Errorf("style analysis contains a category without a name")
		}
	}

	return &result, nil
}

// parseEmailList extracts a JSON array of email bodies from the model output.
func parseEmailList(text string) ([]string, error) {
	content := stripCodeFences(text)

	if start, end := strings.Index(content, "["), strings.LastIndex(content, "]"); start != -1 && end > start {
		content = content[start : end+1]
	}

	var emails []string
	if err := json.Unmarshal([]byte(content), &emails); err == nil {
		if len(emails) == 0 {
			return nil, fmt.Errorf("model returned an empty email list")
		}
		return emails, nil
	}

	// Some models return objects with a content field instead of plain strings
	var structured []struct {
		Content string `json:"content"`
	}
	if err := json.Unmarshal([]byte(content), &structured); err != nil {
		return nil, fmt.Errorf("email list is not valid JSON: %v", err)
	}

	for _, e := range structured {
		if e.Content != "" {
			emails = append(emails, e.Content)
		}
	}
	if len(emails) == 0 {
		return nil, fmt.Errorf("model returned an empty email list")
	}
	return emails, nil
}

// buildComposePrompt renders the on-demand composition prompt shared by providers.
func buildComposePrompt(input ComposeInput) string {
	var points strings.Builder
	for _, p := range input.KeyPoints {
		points.WriteString("- ")
		points.WriteString(p)
		points.WriteString("\n")
	}

	exampleText := ""
	if len(input.Examples) > 0 {
		example := input.Examples[0]
		if len(example) > 600 {
			example = example[:600] + "..."
		}
		exampleText = fmt.Sprintf("Example of previous emails:\n%s\n", example)
	}

	return fmt.Sprintf(`Draft an email to %s about %s including these key points:
%s
Style: %s

%s
Generate a complete email with subject, greeting, body covering all key points, and sign-off.
Return only the email content with no additional comments or explanations.`,
		input.Recipient, input.Topic, points.String(), input.StyleSummary, exampleText)
}
