package service

import (
	"context"
	"errors"
	"testing"

	"studioops/internal/ai"
	"studioops/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubAnalyzer struct {
	suggestion model.TemplateSuggestion
	err        error
}

func (s stubAnalyzer) AnalyzeSentiment(ctx context.Context, req ai.SentimentRequest) (model.AIInsights, error) {
	return model.AIInsights{}, nil
}

func (s stubAnalyzer) GenerateTemplate(ctx context.Context, req ai.TemplateRequest) (model.TemplateSuggestion, error) {
	return s.suggestion, s.err
}

func TestBuilder_ParserWinsForStructuredInput(t *testing.T) {
	svc := NewBuilderService(stubAnalyzer{}, zap.NewNop())

	input := "INSTRUCTOR CHECK\nName: [text]\n□ Certified\n□ Insured"
	suggestion, source := svc.Generate(context.Background(), input)

	assert.Equal(t, "parser", source)
	require.NotNil(t, suggestion)
	assert.Greater(t, suggestion.FieldCount(), 0)
}

func TestBuilder_AIHandlesFreeText(t *testing.T) {
	svc := NewBuilderService(stubAnalyzer{
		suggestion: model.TemplateSuggestion{
			Name:   "AI Template",
			Fields: []model.Field{{ID: "f1", Label: "Subject", Type: model.FieldText}},
		},
	}, zap.NewNop())

	suggestion, source := svc.Generate(context.Background(), "please make a complaint form")

	assert.Equal(t, "ai", source)
	assert.Equal(t, "AI Template", suggestion.Name)
}

func TestBuilder_FallbackWhenAIFails(t *testing.T) {
	svc := NewBuilderService(stubAnalyzer{err: errors.New("service down")}, zap.NewNop())

	suggestion, source := svc.Generate(context.Background(), "please make a complaint form")

	assert.Equal(t, "fallback", source)
	require.Len(t, suggestion.Fields, 3)
	assert.Equal(t, "New Template", suggestion.Name)
}

func TestBuilder_FallbackWhenAIReturnsNoFields(t *testing.T) {
	svc := NewBuilderService(stubAnalyzer{suggestion: model.TemplateSuggestion{Name: "Empty"}}, zap.NewNop())

	suggestion, source := svc.Generate(context.Background(), "please make a complaint form")

	assert.Equal(t, "fallback", source)
	assert.Greater(t, suggestion.FieldCount(), 0)
}

func TestBuilder_ParseStructureRejectsProse(t *testing.T) {
	svc := NewBuilderService(stubAnalyzer{}, zap.NewNop())

	_, ok := svc.ParseStructure("short chat message")
	assert.False(t, ok)
}
