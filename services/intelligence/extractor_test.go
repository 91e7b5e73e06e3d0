package ai

import (
	"context"
	"errors"
	"testing"

	"scheduly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCompleter struct {
	reply string
	err   error

	lastPrompt string
}

func (s *stubCompleter) Complete(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	return s.reply, s.err
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected map[string]any
	}{
		{
			name:     "plain JSON",
			text:     `{"title": "Sync", "start": "unknown"}`,
			expected: map[string]any{"title": "Sync", "start": "unknown"},
		},
		{
			name:     "JSON with surrounding whitespace",
			text:     "\n  {\"title\": \"Sync\"}  \n",
			expected: map[string]any{"title": "Sync"},
		},
		{
			name:     "fenced code block",
			text:     "Here you go:\n```json\n{\"title\": \"Sync\"}\n```\nLet me know!",
			expected: map[string]any{"title": "Sync"},
		},
		{
			name:     "JSON embedded in prose",
			text:     `Sure! {"title": "Sync"} Hope that helps.`,
			expected: map[string]any{"title": "Sync"},
		},
		{
			name:     "repairable JSON with trailing comma",
			text:     `{"title": "Sync",}`,
			expected: map[string]any{"title": "Sync"},
		},
		{
			name:     "no JSON at all",
			text:     "I could not find a time in your message.",
			expected: map[string]any{},
		},
		{
			name:     "empty string",
			text:     "",
			expected: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractJSONObject(tt.text))
		})
	}
}

func TestExtractIntentBookingShape(t *testing.T) {
	stub := &stubCompleter{reply: `{
		"title": "Project review",
		"summary": "Quarterly review call",
		"start": "2026-09-01T16:00:00+05:30",
		"end": "2026-09-01T17:00:00+05:30"
	}`}
	e := NewIntentExtractor(stub)

	intent, err := e.ExtractIntent(context.Background(), "review at 4 pm", "2026-09-01")

	require.NoError(t, err)
	require.NotNil(t, intent)
	assert.Equal(t, "Project review", intent.Title)
	assert.Equal(t, "2026-09-01T16:00:00+05:30", intent.Start)
	assert.Equal(t, "2026-09-01T17:00:00+05:30", intent.End)

	// The prompt embeds the message and the current date.
	assert.Contains(t, stub.lastPrompt, "review at 4 pm")
	assert.Contains(t, stub.lastPrompt, "2026-09-01")
}

func TestExtractIntentSuggestionShape(t *testing.T) {
	stub := &stubCompleter{reply: `{"Suggested time slots": "10:00-11:00, 15:00-16:00"}`}
	e := NewIntentExtractor(stub)

	intent, err := e.ExtractIntent(context.Background(), "any free time?", "2026-09-01")

	require.NoError(t, err)
	require.NotNil(t, intent)
	// Suggestion-only replies carry no booking fields: the defaults leave
	// start unresolved, which routes to the suggestion path.
	assert.Equal(t, models.DefaultTitle, intent.Title)
	assert.Equal(t, models.TimeUnknown, intent.Start)
	assert.Equal(t, models.TimeUnknown, intent.End)
}

func TestExtractIntentAppliesDefaults(t *testing.T) {
	stub := &stubCompleter{reply: `{"start": "2026-09-01T16:00:00+05:30"}`}
	e := NewIntentExtractor(stub)

	intent, err := e.ExtractIntent(context.Background(), "meet at 4", "2026-09-01")

	require.NoError(t, err)
	require.NotNil(t, intent)
	assert.Equal(t, models.DefaultTitle, intent.Title)
	assert.Equal(t, models.DefaultSummary, intent.Summary)
	assert.Equal(t, models.TimeUnknown, intent.End)
}

func TestExtractIntentUnparsableReplyIsNotAnError(t *testing.T) {
	stub := &stubCompleter{reply: "Sorry, I cannot help with that."}
	e := NewIntentExtractor(stub)

	intent, err := e.ExtractIntent(context.Background(), "book at 4 pm", "2026-09-01")

	assert.NoError(t, err)
	assert.Nil(t, intent)
}

func TestExtractIntentServiceFault(t *testing.T) {
	stub := &stubCompleter{err: errors.New("quota exhausted")}
	e := NewIntentExtractor(stub)

	intent, err := e.ExtractIntent(context.Background(), "book at 4 pm", "2026-09-01")

	require.Error(t, err)
	assert.Nil(t, intent)
	assert.Contains(t, err.Error(), "AI processing failed")
	assert.Contains(t, err.Error(), "quota exhausted")
}
