package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateDescription_SinAPIKey_RetornaError(t *testing.T) {
	anthropic := NewAnthropicService("", "claude-3-5-haiku-20241022")
	_, err := anthropic.GenerateDescription(context.Background(), "WH-001", "Guantes")
	assert.ErrorContains(t, err, "ANTHROPIC_API_KEY")

	gemini := NewGeminiService("", "gemini-1.5-flash")
	_, err = gemini.GenerateDescription(context.Background(), "WH-001", "Guantes")
	assert.ErrorContains(t, err, "GEMINI_API_KEY")
}

func TestCleanDescription(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`"Guantes resistentes."`, "Guantes resistentes."},
		{"  Guantes resistentes.  \n", "Guantes resistentes."},
		{"```\nGuantes resistentes.\n```", "Guantes resistentes."},
		{"“Guantes resistentes.”", "Guantes resistentes."},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, cleanDescription(tc.in))
	}
}
