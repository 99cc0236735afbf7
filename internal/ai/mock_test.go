package ai

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockAdapter_AnalyzeSentimentAnyInput(t *testing.T) {
	m := MockAdapter{ModelVersion: "test"}
	valid := map[string]bool{"positive": true, "neutral": true, "negative": true}

	// Hash values cover the full uint64 range, so indexing must hold for
	// inputs whose hash has the high bit set too.
	for i := 0; i < 200; i++ {
		insights, err := m.AnalyzeSentiment(context.Background(), SentimentRequest{
			TicketID:    fmt.Sprintf("ticket-%d", i),
			TrainerName: "Asha Rao",
			Description: fmt.Sprintf("feedback note %d", i),
		})
		require.NoError(t, err)
		assert.True(t, valid[insights.Sentiment], "sentiment=%q", insights.Sentiment)
		assert.GreaterOrEqual(t, insights.Score, 40.0)
		assert.LessOrEqual(t, insights.Score, 95.0)
	}
}

func TestMockAdapter_AnalyzeSentimentDeterministic(t *testing.T) {
	m := MockAdapter{ModelVersion: "test"}
	req := SentimentRequest{TicketID: "t1", Description: "Instructor arrived late twice"}

	first, err := m.AnalyzeSentiment(context.Background(), req)
	require.NoError(t, err)
	second, err := m.AnalyzeSentiment(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestMockAdapter_GenerateTemplateAnyPrompt(t *testing.T) {
	m := MockAdapter{ModelVersion: "test"}

	for i := 0; i < 200; i++ {
		suggestion, err := m.GenerateTemplate(context.Background(), TemplateRequest{
			Prompt: fmt.Sprintf("make me a form %d", i),
		})
		require.NoError(t, err)
		assert.NotEmpty(t, suggestion.Category)
		assert.Greater(t, suggestion.FieldCount(), 0)
	}
}

func TestMockAdapter_GenerateTemplateTruncatesOnRuneBoundary(t *testing.T) {
	m := MockAdapter{ModelVersion: "test"}
	prompt := strings.Repeat("日", 150)

	suggestion, err := m.GenerateTemplate(context.Background(), TemplateRequest{Prompt: prompt})
	require.NoError(t, err)

	assert.True(t, utf8.ValidString(suggestion.Description))
	assert.Equal(t, 100, utf8.RuneCountInString(suggestion.Description))
}
