package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "markdown code block",
			content: "Here you go:\n```json\n{\"companies\": [\"Acme\"]}\n```\nDone.",
			want:    `{"companies": ["Acme"]}`,
		},
		{
			name:    "bare code block",
			content: "```\n{\"a\": 1}\n```",
			want:    `{"a": 1}`,
		},
		{
			name:    "raw object with prose around it",
			content: `The result is {"persons": ["Ana"]} as requested.`,
			want:    `{"persons": ["Ana"]}`,
		},
		{
			name:    "trailing comma removed",
			content: `{"events": ["merger",]}`,
			want:    `{"events": ["merger"]}`,
		},
		{
			name:    "no json at all",
			content: "I could not find any entities.",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractJSON(tt.content))
		})
	}
}

func TestExtractJSON_StripsComments(t *testing.T) {
	content := `{
  "companies": ["Acme"], // the main actor
  "url": "https://example.com" // not a comment inside the string
}`
	got := ExtractJSON(content)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(got), &parsed))
	assert.Equal(t, "https://example.com", parsed["url"])
}

func TestExtractJSONArray(t *testing.T) {
	assert.Equal(t, `["a", "b"]`, ExtractJSONArray("```json\n[\"a\", \"b\"]\n```"))
	assert.Equal(t, `[1, 2]`, ExtractJSONArray("result: [1, 2,]"))
	assert.Equal(t, "", ExtractJSONArray("nothing here"))
}

func TestRepairJSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "already valid passes through",
			content: `{"companies": ["Acme"], "persons": [], "events": []}`,
		},
		{
			name:    "single quotes",
			content: `{'companies': ['Acme'], 'persons': [], 'events': []}`,
		},
		{
			name:    "truncated output",
			content: `{"companies": ["Acme", "Umbrella`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RepairJSON(tt.content)
			require.NotEmpty(t, got)
			assert.True(t, json.Valid([]byte(got)), "repaired output must be valid JSON: %s", got)
		})
	}
}
