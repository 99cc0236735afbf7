package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"studioops/internal/ai"
	"studioops/internal/auth"
	"studioops/internal/model"
	"studioops/internal/service"

	"github.com/go-chi/chi/v5"
)

type SubmitFeedbackRequest struct {
	Category        string                   `json:"category" validate:"required"`
	TrainerID       string                   `json:"trainerId" validate:"required"`
	StudioID        *string                  `json:"studioId,omitempty"`
	Answers         model.Answers            `json:"answers" validate:"required"`
	SectionComments map[string]string        `json:"sectionComments,omitempty"`
	Files           []map[string]interface{} `json:"files,omitempty"`
}

func (d Dependencies) submitFeedback(w http.ResponseWriter, r *http.Request) {
	var req SubmitFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid request body", d.Log)
		return
	}
	if err := d.validate.Struct(req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", err.Error(), d.Log)
		return
	}

	ticket, err := d.Feedback.Submit(r.Context(), service.SubmitInput{
		Category:        req.Category,
		TrainerID:       req.TrainerID,
		StudioID:        req.StudioID,
		Answers:         req.Answers,
		SectionComments: req.SectionComments,
		Files:           req.Files,
		ReportedBy:      auth.GetUserID(r.Context()),
	})
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			WriteError(w, http.StatusBadRequest, "validation_failed", verr.Message, d.Log)
			return
		}
		WriteError(w, http.StatusInternalServerError, "submit_failed", err.Error(), d.Log)
		return
	}

	WriteJSON(w, http.StatusCreated, ticket)
}

type PreviewRequest struct {
	Category string        `json:"category" validate:"required"`
	Answers  model.Answers `json:"answers" validate:"required"`
}

func (d Dependencies) previewFeedback(w http.ResponseWriter, r *http.Request) {
	var req PreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid request body", d.Log)
		return
	}
	if err := d.validate.Struct(req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", err.Error(), d.Log)
		return
	}

	avg, priority, feedbackType := d.Feedback.Preview(req.Category, req.Answers)
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"averageRating": avg,
		"priority":      priority,
		"feedbackType":  feedbackType,
	})
}

type AnalyzeRequest struct {
	Category    string `json:"category" validate:"required"`
	TrainerName string `json:"trainerName"`
	Description string `json:"description" validate:"required"`
}

// analyzeFeedback runs sentiment analysis on an in-progress form. It is
// best-effort: the client treats a failure here as non-fatal.
func (d Dependencies) analyzeFeedback(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid request body", d.Log)
		return
	}
	if err := d.validate.Struct(req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", err.Error(), d.Log)
		return
	}

	insights, err := d.Analyzer.AnalyzeSentiment(r.Context(), ai.SentimentRequest{
		TrainerName: req.TrainerName,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		WriteError(w, http.StatusBadGateway, "analysis_failed", "Sentiment analysis unavailable", d.Log)
		return
	}

	WriteJSON(w, http.StatusOK, insights)
}

func (d Dependencies) getFeedbackTicket(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ticket, err := d.Feedback.GetTicket(r.Context(), id)
	if err != nil {
		WriteError(w, http.StatusNotFound, "not_found", "Ticket not found", d.Log)
		return
	}
	WriteJSON(w, http.StatusOK, ticket)
}

func (d Dependencies) listRecentFeedback(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)
	tickets, err := d.History.ListRecent(r.Context(), limit, offset)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "list_failed", err.Error(), d.Log)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"tickets": tickets})
}

func (d Dependencies) listTrainers(w http.ResponseWriter, r *http.Request) {
	trainers, err := d.Feedback.ListTrainers(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "list_failed", err.Error(), d.Log)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"trainers": trainers})
}

func (d Dependencies) trainerHistory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	limit, offset := pagination(r)

	tickets, err := d.History.ListTrainerHistory(r.Context(), id, limit, offset)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "list_failed", err.Error(), d.Log)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"trainerId": id,
		"tickets":   tickets,
	})
}

func (d Dependencies) trainerStats(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	stats, err := d.History.Stats(r.Context(), id)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "stats_failed", err.Error(), d.Log)
		return
	}
	WriteJSON(w, http.StatusOK, stats)
}

func (d Dependencies) listLookupCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := d.Feedback.ListCategories(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "list_failed", err.Error(), d.Log)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"categories": cats})
}

func (d Dependencies) listStudios(w http.ResponseWriter, r *http.Request) {
	limit, _ := pagination(r)
	studios, err := d.Feedback.ListStudios(r.Context(), limit)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "list_failed", err.Error(), d.Log)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"studios": studios})
}

func pagination(r *http.Request) (limit, offset int) {
	limit = 50
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 && v <= 200 {
		limit = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v > 0 {
		offset = v
	}
	return limit, offset
}
