package llm_contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJson(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
		found    bool
	}{
		{name: "bare object", raw: `{"a":1}`, expected: `{"a":1}`, found: true},
		{name: "fenced with language", raw: "```json\n{\"a\":1}\n```", expected: `{"a":1}`, found: true},
		{name: "fenced without language", raw: "```\n{\"a\":1}\n```", expected: `{"a":1}`, found: true},
		{name: "fence on a single line", raw: "```{\"a\":1}```", expected: `{"a":1}`, found: true},
		{name: "prose around the object", raw: "Here you go: {\"a\":1} hope it helps", expected: `{"a":1}`, found: true},
		{name: "leading whitespace before fence", raw: "  \n```json\n{\"a\":1}\n```", expected: `{"a":1}`, found: true},
		{name: "nested objects keep the outer braces", raw: `x {"a":{"b":2}} y`, expected: `{"a":{"b":2}}`, found: true},
		{name: "no brace", raw: "I could not find this person.", found: false},
		{name: "closing brace before opening brace", raw: "} nothing {", found: false},
		{name: "only an opening brace", raw: "{ unterminated", found: false},
		{name: "empty", raw: "", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ExtractJson(tt.raw)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParse(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		extraction := Parse("```json\n{\"full_name\":\"A. Lee\"}\n```")
		assert.True(t, extraction.IsOk())
		assert.Equal(t, "A. Lee", extraction.Payload().Get("full_name").String())
		assert.Empty(t, extraction.Reason())
	})

	t.Run("empty", func(t *testing.T) {
		extraction := Parse("   ")
		assert.False(t, extraction.IsOk())
		assert.Equal(t, ReasonEmpty, extraction.Reason())
	})

	t.Run("no object", func(t *testing.T) {
		extraction := Parse("no json here")
		assert.False(t, extraction.IsOk())
		assert.Equal(t, ReasonNoObject, extraction.Reason())
		assert.Equal(t, "no json here", extraction.Raw())
	})

	t.Run("invalid json", func(t *testing.T) {
		extraction := Parse(`{"full_name": "A. Lee",}`)
		assert.False(t, extraction.IsOk())
		assert.Equal(t, ReasonInvalidJson, extraction.Reason())
	})

	t.Run("unbalanced braces in prose", func(t *testing.T) {
		extraction := Parse(`{"a": 1} and then a stray }`)
		assert.False(t, extraction.IsOk())
		assert.Equal(t, ReasonInvalidJson, extraction.Reason())
	})
}
