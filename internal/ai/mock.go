package ai

import (
	"context"
	"hash/fnv"

	"studioops/internal/model"
)

// MockAdapter is a deterministic stand-in for local development and tests.
// Results are a pure function of the input so assertions stay stable.
type MockAdapter struct {
	ModelVersion string
}

func hashString(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}

// truncateRunes shortens s to at most n runes so a cut never lands inside a
// multi-byte character.
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func (m MockAdapter) AnalyzeSentiment(ctx context.Context, req SentimentRequest) (model.AIInsights, error) {
	h := hashString(req.TicketID + req.Description)

	sentiments := []string{"positive", "neutral", "negative"}
	sentiment := sentiments[h%uint64(len(sentiments))]
	score := float64(40 + h%56) // 40..95

	return model.AIInsights{
		Sentiment: sentiment,
		Score:     score,
		Insights:  "Automated analysis of trainer feedback for " + req.TrainerName,
	}, nil
}

func (m MockAdapter) GenerateTemplate(ctx context.Context, req TemplateRequest) (model.TemplateSuggestion, error) {
	h := hashString(req.Prompt)

	categories := []string{"Operations", "Member Experience", "Facilities"}
	category := categories[h%uint64(len(categories))]

	desc := truncateRunes(req.Prompt, 100)

	return model.TemplateSuggestion{
		Name:                 "Generated Template",
		Description:          desc,
		Category:             category,
		Priority:             model.PriorityMedium,
		SuggestedTitle:       "[Generated Template] - [Details]",
		SuggestedDescription: req.Prompt,
		Fields: []model.Field{
			{ID: "f1", Label: "Summary", Type: model.FieldText, Required: true},
			{ID: "f2", Label: "Details", Type: model.FieldTextarea, Required: true},
			{ID: "f3", Label: "Occurred On", Type: model.FieldDate},
		},
		Tags: []string{"custom", "ai-generated"},
	}, nil
}
