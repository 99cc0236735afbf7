package classify

import (
	"math/rand"
	"regexp"
	"strings"
	"testing"
	"time"

	"studioops/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAverageRating_GateAndMean(t *testing.T) {
	answers := model.Answers{
		"energy":    float64(5),
		"clarity":   float64(3),
		"score":     float64(85), // out of gate, excluded
		"weighted":  float64(0),  // out of gate, excluded
		"comment":   "great class",
		"attended":  true,
		"halfPoint": 4.5,
	}
	avg := AverageRating(answers)
	assert.InDelta(t, (5.0+3.0+4.5)/3.0, avg, 1e-9)
}

func TestAverageRating_NoRatingsIsNeutral(t *testing.T) {
	answers := model.Answers{
		"comment": "all text",
		"score":   float64(90),
	}
	assert.Equal(t, NeutralRating, AverageRating(answers))
}

func TestPriorityAndTypeThresholds(t *testing.T) {
	cases := []struct {
		avg      float64
		priority model.Priority
		ftype    model.FeedbackType
	}{
		{1.0, model.PriorityHigh, model.FeedbackConcern},
		{2.0, model.PriorityHigh, model.FeedbackConcern},
		{2.5, model.PriorityMedium, model.FeedbackNeutral},
		{3.0, model.PriorityMedium, model.FeedbackNeutral},
		{3.9, model.PriorityMedium, model.FeedbackNeutral},
		{4.0, model.PriorityLow, model.FeedbackPositive},
		{5.0, model.PriorityLow, model.FeedbackPositive},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.priority, PriorityFor(tc.avg), "avg=%v", tc.avg)
		assert.Equal(t, tc.ftype, FeedbackTypeFor(tc.avg), "avg=%v", tc.avg)
	}
}

func TestTicketNumberFormat(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	num := TicketNumber(now, rng)
	assert.Regexp(t, regexp.MustCompile(`^TKT-260828-\d{4}$`), num)
}

func TestMissingRequired_FalsyValuesFailTheGate(t *testing.T) {
	template := model.FormTemplate{
		Sections: []model.Section{{
			ID: "s1",
			Fields: []model.Field{
				{ID: "a", Label: "Alpha", Required: true},
				{ID: "b", Label: "Beta", Required: true},
				{ID: "c", Label: "Gamma", Required: true},
				{ID: "d", Label: "Delta", Required: true},
				{ID: "e", Label: "Echo", Required: false},
			},
		}},
	}

	answers := model.Answers{
		"a": "",         // empty string fails
		"b": false,      // unchecked box fails
		"c": float64(0), // zero number fails
		// d absent
	}

	missing := MissingRequired(template, answers)
	assert.Equal(t, []string{"Alpha", "Beta", "Gamma", "Delta"}, missing)
}

func TestMissingFieldsMessage_TruncatesAfterThree(t *testing.T) {
	msg := MissingFieldsMessage([]string{"Alpha", "Beta", "Gamma", "Delta", "Echo"})
	assert.Equal(t, "Please fill in: Alpha, Beta, Gamma and 2 more", msg)

	short := MissingFieldsMessage([]string{"Alpha"})
	assert.Equal(t, "Please fill in: Alpha", short)
}

func TestRenderDescription_RoundTrip(t *testing.T) {
	template := model.FormTemplate{
		Name: "PowerCycle Class Feedback",
		Sections: []model.Section{
			{
				ID:    "s1",
				Title: "Instruction Quality",
				Fields: []model.Field{
					{ID: "energy", Label: "Energy Level", Type: model.FieldRating},
					{ID: "notes", Label: "Notes", Type: model.FieldTextarea},
					{ID: "skipped", Label: "Skipped", Type: model.FieldText},
				},
			},
			{
				ID:    "s2",
				Title: "Facility",
				Fields: []model.Field{
					{ID: "clean", Label: "Cleanliness", Type: model.FieldRating},
				},
			},
		},
	}

	sub := Submission{
		Template:      template,
		Trainer:       model.Trainer{Name: "Asha Rao", Specialization: "PowerCycle"},
		CategoryLabel: "PowerCycle Feedback",
		Answers: model.Answers{
			"energy": float64(5),
			"notes":  "Playlist was great",
			"clean":  float64(4),
			// "skipped" left unanswered
		},
		SectionComments: map[string]string{"s2": "Fans could be stronger"},
		Insights:        &model.AIInsights{Sentiment: "positive", Score: 88, Insights: "High satisfaction"},
	}

	out := RenderDescription(sub)

	assert.Contains(t, out, "**PowerCycle Class Feedback**")
	assert.Contains(t, out, "**Trainer:** Asha Rao")
	assert.Contains(t, out, "**Specialization:** PowerCycle")
	assert.Contains(t, out, "**Feedback Type:** PowerCycle Feedback")

	// Every answered field appears once, ratings as value/max.
	assert.Contains(t, out, "- Energy Level: 5/5")
	assert.Contains(t, out, "- Notes: Playlist was great")
	assert.Contains(t, out, "- Cleanliness: 4/5")
	assert.NotContains(t, out, "Skipped")

	assert.Contains(t, out, "- Additional Comments: Fans could be stronger")

	assert.Contains(t, out, "**AI Analysis:**")
	assert.Contains(t, out, "- Sentiment: positive")
	assert.Contains(t, out, "- Score: 88/100")
	assert.Contains(t, out, "- Insights: High satisfaction")

	// Sections render in schema order.
	assert.Less(t, strings.Index(out, "Instruction Quality"), strings.Index(out, "Facility"))
}

func TestRenderDescription_NoInsightsNoBlock(t *testing.T) {
	sub := Submission{
		Template:      model.FormTemplate{Name: "General"},
		Trainer:       model.Trainer{Name: "J"},
		CategoryLabel: "General",
		Answers:       model.Answers{},
	}
	out := RenderDescription(sub)
	assert.NotContains(t, out, "AI Analysis")
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "5", FormatValue(float64(5)))
	assert.Equal(t, "4.5", FormatValue(4.5))
	assert.Equal(t, "true", FormatValue(true))
	assert.Equal(t, "a, b", FormatValue([]interface{}{"a", "b"}))
}

func TestTitleComposition(t *testing.T) {
	title := Title("Barre Feedback", "Asha Rao", model.FeedbackPositive)
	assert.Equal(t, "Barre Feedback - Asha Rao - Positive", title)
}

func TestClassificationRoundTrip(t *testing.T) {
	// A concern-level submission yields a high-priority Concern ticket whose
	// description reproduces the answers.
	template := model.FormTemplate{
		Name: "General Feedback",
		Sections: []model.Section{{
			ID:    "s1",
			Title: "Overall",
			Fields: []model.Field{
				{ID: "overall", Label: "Overall Rating", Type: model.FieldRating, Required: true},
				{ID: "details", Label: "Details", Type: model.FieldTextarea},
			},
		}},
	}
	answers := model.Answers{
		"overall": float64(1),
		"details": "Instructor arrived late twice",
	}

	require.Empty(t, MissingRequired(template, answers))

	avg := AverageRating(answers)
	assert.Equal(t, model.PriorityHigh, PriorityFor(avg))
	assert.Equal(t, model.FeedbackConcern, FeedbackTypeFor(avg))

	out := RenderDescription(Submission{
		Template:      template,
		Trainer:       model.Trainer{Name: "K"},
		CategoryLabel: "General Feedback",
		Answers:       answers,
	})
	assert.Contains(t, out, "- Overall Rating: 1/5")
	assert.Contains(t, out, "- Details: Instructor arrived late twice")
}
