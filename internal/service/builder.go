package service

import (
	"context"
	"strings"

	"studioops/internal/ai"
	"studioops/internal/catalog"
	"studioops/internal/model"
	"studioops/internal/parser"

	"go.uber.org/zap"
)

// BuilderService produces template suggestions from free text. Resolution
// order: structure parser, then the AI boundary, then the generic fallback.
// A caller always gets a usable suggestion back.
type BuilderService struct {
	analyzer ai.Analyzer
	log      *zap.Logger
}

func NewBuilderService(analyzer ai.Analyzer, log *zap.Logger) *BuilderService {
	return &BuilderService{analyzer: analyzer, log: log}
}

// ParseStructure runs only the heuristic parser. The bool reports whether the
// input was accepted as a form structure with at least one field.
func (s *BuilderService) ParseStructure(input string) (*model.TemplateSuggestion, bool) {
	suggestion, ok := parser.Parse(input)
	if !ok || suggestion.FieldCount() == 0 {
		return nil, false
	}
	return suggestion, true
}

// Generate builds the best available suggestion for a prompt.
func (s *BuilderService) Generate(ctx context.Context, prompt string) (*model.TemplateSuggestion, string) {
	if suggestion, ok := s.ParseStructure(prompt); ok {
		return suggestion, "parser"
	}

	if s.analyzer != nil && strings.TrimSpace(prompt) != "" {
		generated, err := s.analyzer.GenerateTemplate(ctx, ai.TemplateRequest{
			Prompt:        prompt,
			ExistingNames: existingTemplateNames(),
		})
		if err == nil && generated.FieldCount() > 0 {
			return &generated, "ai"
		}
		if err != nil {
			s.log.Warn("AI template generation failed, using fallback", zap.Error(err))
		}
	}

	return parser.Generic(prompt), "fallback"
}

func existingTemplateNames() []string {
	templates := catalog.FormTemplates()
	names := make([]string, 0, len(templates))
	for _, t := range templates {
		names = append(names, t.Name)
	}
	return names
}
