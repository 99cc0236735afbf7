package service

import (
	"context"
	"fmt"
	"time"

	"studioops/internal/db"
	"studioops/internal/model"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// TrainerStats summarizes a trainer's feedback history.
type TrainerStats struct {
	TrainerID     string         `json:"trainerId"`
	Total         int            `json:"total"`
	AverageRating float64        `json:"averageRating"`
	ByPriority    map[string]int `json:"byPriority"`
	ByType        map[string]int `json:"byType"`
	ByCategory    map[string]int `json:"byCategory"`
}

// HistoryService serves the feedback history and analytics views. Stats are
// cached briefly; the history list is always fresh.
type HistoryService struct {
	queries    *db.Queries
	statsCache *expirable.LRU[string, *TrainerStats]
}

func NewHistoryService(queries *db.Queries) *HistoryService {
	return &HistoryService{
		queries:    queries,
		statsCache: expirable.NewLRU[string, *TrainerStats](256, nil, 5*time.Minute),
	}
}

// ListTrainerHistory returns a trainer's feedback tickets, newest first.
func (s *HistoryService) ListTrainerHistory(ctx context.Context, trainerID string, limit, offset int) ([]model.Ticket, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	rows, err := s.queries.ListTicketsByTrainer(ctx, trainerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	tickets := make([]model.Ticket, 0, len(rows))
	for _, r := range rows {
		tickets = append(tickets, *dbTicketToModel(r))
	}
	return tickets, nil
}

// ListRecent returns the newest trainer-feedback tickets across all trainers.
func (s *HistoryService) ListRecent(ctx context.Context, limit, offset int) ([]model.Ticket, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	rows, err := s.queries.ListTicketsBySource(ctx, "trainer-feedback", limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent feedback: %w", err)
	}

	tickets := make([]model.Ticket, 0, len(rows))
	for _, r := range rows {
		tickets = append(tickets, *dbTicketToModel(r))
	}
	return tickets, nil
}

// Stats aggregates a trainer's full history. Aggregation walks every ticket
// row, so results sit in the cache for a few minutes.
func (s *HistoryService) Stats(ctx context.Context, trainerID string) (*TrainerStats, error) {
	if cached, ok := s.statsCache.Get(trainerID); ok {
		return cached, nil
	}

	stats := &TrainerStats{
		TrainerID:  trainerID,
		ByPriority: map[string]int{},
		ByType:     map[string]int{},
		ByCategory: map[string]int{},
	}

	const page = 200
	var ratingSum float64
	var rated int
	for offset := 0; ; offset += page {
		rows, err := s.queries.ListTicketsByTrainer(ctx, trainerID, page, offset)
		if err != nil {
			return nil, fmt.Errorf("failed to aggregate stats: %w", err)
		}
		for _, r := range rows {
			stats.Total++
			stats.ByPriority[r.Priority]++
			if ft, ok := r.DynamicFieldData["feedbackType"].(string); ok {
				stats.ByType[ft]++
			}
			if cat, ok := r.DynamicFieldData["category"].(string); ok {
				stats.ByCategory[cat]++
			}
			if avg, ok := r.DynamicFieldData["averageRating"].(float64); ok {
				ratingSum += avg
				rated++
			}
		}
		if len(rows) < page {
			break
		}
	}

	if rated > 0 {
		stats.AverageRating = ratingSum / float64(rated)
	}

	s.statsCache.Add(trainerID, stats)
	return stats, nil
}
