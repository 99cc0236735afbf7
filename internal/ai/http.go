package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"studioops/internal/model"
)

type HTTPAdapter struct {
	BaseURL string
	Client  *http.Client
}

type sentimentResponse struct {
	Sentiment string  `json:"sentiment"`
	Score     float64 `json:"score"`
	Insights  string  `json:"insights"`
}

func (h HTTPAdapter) AnalyzeSentiment(ctx context.Context, req SentimentRequest) (model.AIInsights, error) {
	var out sentimentResponse
	if err := h.post(ctx, "/analyze", req, &out); err != nil {
		return model.AIInsights{}, err
	}
	return model.AIInsights{
		Sentiment: out.Sentiment,
		Score:     out.Score,
		Insights:  out.Insights,
	}, nil
}

func (h HTTPAdapter) GenerateTemplate(ctx context.Context, req TemplateRequest) (model.TemplateSuggestion, error) {
	var out model.TemplateSuggestion
	if err := h.post(ctx, "/generate-template", req, &out); err != nil {
		return model.TemplateSuggestion{}, err
	}
	return out, nil
}

func (h HTTPAdapter) post(ctx context.Context, path string, payload, out interface{}) error {
	client := h.Client
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}

	b, _ := json.Marshal(payload)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.BaseURL+path, bytes.NewBuffer(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.New("ai service error")
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
