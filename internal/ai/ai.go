// Package ai defines the boundary to the external analysis service. The rest
// of the system only depends on Analyzer; swapping the HTTP adapter for the
// mock changes nothing upstream.
package ai

import (
	"context"

	"studioops/internal/model"
)

// SentimentRequest carries a rendered submission for sentiment scoring.
type SentimentRequest struct {
	TicketID    string `json:"ticketId"`
	TrainerName string `json:"trainerName"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// TemplateRequest asks the service to draft a form template from a free-text
// prompt that the structure parser could not handle. ExistingNames lets the
// service avoid proposing a name that collides with a known template.
type TemplateRequest struct {
	Prompt        string   `json:"prompt"`
	ExistingNames []string `json:"existingNames,omitempty"`
}

type Analyzer interface {
	AnalyzeSentiment(ctx context.Context, req SentimentRequest) (model.AIInsights, error)
	GenerateTemplate(ctx context.Context, req TemplateRequest) (model.TemplateSuggestion, error)
}
