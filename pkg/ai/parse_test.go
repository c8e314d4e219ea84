package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const analysisJSON = `{
	"overall_style_summary": "Short and direct.",
	"categories": [
		{"name": "Formal", "description": "Business emails", "key_characteristics": ["polite", "structured"]}
	]
}`

func TestParseStyleAnalysis_Plain(t *testing.T) {
	result, err := parseStyleAnalysis(analysisJSON)

	require.NoError(t, err)
	assert.Equal(t, "Short and direct.", result.OverallStyleSummary)
	require.Len(t, result.Categories, 1)
	assert.Equal(t, "Formal", result.Categories[0].Name)
	assert.Equal(t, []string{"polite", "structured"}, result.Categories[0].KeyCharacteristics)
}

func TestParseStyleAnalysis_FencedAndWrapped(t *testing.T) {
	inputs := []string{
		"```json\n" + analysisJSON + "\n```",
		"```\n" + analysisJSON + "\n```",
		"Here is the analysis you asked for:\n" + analysisJSON + "\nLet me know if you need more.",
	}
	for _, input := range inputs {
		result, err := parseStyleAnalysis(input)
		require.NoError(t, err)
		assert.Equal(t, "Short and direct.", result.OverallStyleSummary)
	}
}

func TestParseStyleAnalysis_Invalid(t *testing.T) {
	cases := map[string]string{
		"not json":          "I could not analyze the emails, sorry.",
		"missing summary":   `{"overall_style_summary": "", "categories": [{"name": "Formal"}]}`,
		"no categories":     `{"overall_style_summary": "ok", "categories": []}`,
		"unnamed category":  `{"overall_style_summary": "ok", "categories": [{"name": ""}]}`,
	}
	for name, input := range cases {
		_, err := parseStyleAnalysis(input)
		require.Error(t, err, name)
	}
}

func TestParseEmailList_Strings(t *testing.T) {
	emails, err := parseEmailList(`["Subject: A\n\nHello.", "Subject: B\n\nHi."]`)

	require.NoError(t, err)
	assert.Len(t, emails, 2)
}

func TestParseEmailList_StructuredFallback(t *testing.T) {
	emails, err := parseEmailList(`[{"content": "Subject: A\n\nHello."}, {"content": "Subject: B\n\nHi."}]`)

	require.NoError(t, err)
	assert.Equal(t, []string{"Subject: A\n\nHello.", "Subject: B\n\nHi."}, emails)
}

func TestParseEmailList_Fenced(t *testing.T) {
	emails, err := parseEmailList("```json\n[\"Subject: A\\n\\nHello.\"]\n```")

	require.NoError(t, err)
	assert.Len(t, emails, 1)
}

func TestParseEmailList_Invalid(t *testing.T) {
	for _, input := range []string{"no emails here", "[]", `[{"body": "wrong field"}]`} {
		_, err := parseEmailList(input)
		require.Error(t, err, input)
	}
}

func TestBuildComposePrompt(t *testing.T) {
	prompt := buildComposePrompt(ComposeInput{
		Recipient:    "dana@example.com",
		Topic:        "budget review",
		KeyPoints:    []string{"numbers are final"},
		StyleSummary: "Direct and warm.",
		Examples:     []string{strings.Repeat("x", 700)},
	})

	assert.Contains(t, prompt, "dana@example.com")
	assert.Contains(t, prompt, "budget review")
	assert.Contains(t, prompt, "- numbers are final")
	assert.Contains(t, prompt, "Direct and warm.")
	assert.Contains(t, prompt, "...", "long examples are truncated")
	assert.NotContains(t, prompt, strings.Repeat("x", 700))
}
