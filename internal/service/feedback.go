package service

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"studioops/internal/catalog"
	"studioops/internal/classify"
	"studioops/internal/db"
	"studioops/internal/model"
	"studioops/internal/schema"
	"studioops/internal/storage"

	"github.com/oklog/ulid/v2"
)

// EventBus is the slice of pubsub.Bus the services need.
type EventBus interface {
	PublishTicket(ticketID string, event map[string]interface{}) error
	PublishTrainer(trainerID string, event map[string]interface{}) error
	PublishFeed(event map[string]interface{}) error
}

// ValidationError carries the submitter-facing message for an incomplete or
// malformed submission. Handlers map it to a 400.
type ValidationError struct {
	Message string
	Missing []string
}

func (e *ValidationError) Error() string { return e.Message }

type FeedbackService struct {
	queries    *db.Queries
	schemaComp *schema.Compiler
	bus        EventBus
	jobClient  JobClient

	escalateAfter time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

func NewFeedbackService(queries *db.Queries, schemaComp *schema.Compiler, bus EventBus) *FeedbackService {
	return &FeedbackService{
		queries:       queries,
		schemaComp:    schemaComp,
		bus:           bus,
		escalateAfter: 30 * time.Minute,
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetJobClient sets the job client for scheduling background jobs
func (s *FeedbackService) SetJobClient(client JobClient) {
	s.jobClient = client
}

// SetEscalationWindow overrides the delay before high-priority tickets are
// re-checked for escalation.
func (s *FeedbackService) SetEscalationWindow(d time.Duration) {
	s.escalateAfter = d
}

type SubmitInput struct {
	Category        string                   `json:"category" validate:"required"`
	TrainerID       string                   `json:"trainerId" validate:"required"`
	StudioID        *string                  `json:"studioId,omitempty"`
	Answers         model.Answers            `json:"answers" validate:"required"`
	SectionComments map[string]string        `json:"sectionComments,omitempty"`
	Files           []map[string]interface{} `json:"files,omitempty"`
	ReportedBy      string                   `json:"-"`
}

// Submit validates a trainer-feedback submission, classifies it, and persists
// it as a ticket. Classification never blocks on the analysis service; AI
// insights are attached later by a background job.
func (s *FeedbackService) Submit(ctx context.Context, input SubmitInput) (*model.Ticket, error) {
	template := catalog.FormTemplate(input.Category)

	trainer, err := s.queries.GetTrainerByID(ctx, input.TrainerID)
	if err != nil {
		return nil, fmt.Errorf("trainer not found: %w", err)
	}

	// Required-field gate first: its message names the gaps.
	if missing := classify.MissingRequired(template, input.Answers); len(missing) > 0 {
		return nil, &ValidationError{
			Message: classify.MissingFieldsMessage(missing),
			Missing: missing,
		}
	}

	// Then type-level validation against the compiled schema.
	if err := s.schemaComp.Validate(ctx, template, input.Answers); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	avg := classify.AverageRating(input.Answers)
	priority := classify.PriorityFor(avg)
	feedbackType := classify.FeedbackTypeFor(avg)
	categoryLabel := catalog.CategoryLabel(input.Category)

	description := classify.RenderDescription(classify.Submission{
		Template:        template,
		Trainer:         model.Trainer{ID: trainer.ID, Name: trainer.Name, Specialization: trainer.Specialization},
		CategoryLabel:   categoryLabel,
		Answers:         input.Answers,
		SectionComments: input.SectionComments,
	})

	files := input.Files
	if len(files) == 0 {
		files = []map[string]interface{}{}
	} else {
		normalized, err := storage.NormalizeAttachments(files)
		if err != nil {
			return nil, &ValidationError{Message: err.Error()}
		}
		files = normalized
	}

	dynamic := map[string]interface{}{
		"trainerId":       trainer.ID,
		"trainerName":     trainer.Name,
		"category":        input.Category,
		"answers":         map[string]interface{}(input.Answers),
		"sectionComments": input.SectionComments,
		"averageRating":   avg,
		"feedbackType":    string(feedbackType),
		"attachments":     files,
	}

	var reportedBy *string
	if input.ReportedBy != "" {
		reportedBy = &input.ReportedBy
	}

	ticketID := ulid.Make().String()

	s.mu.Lock()
	ticketNumber := classify.TicketNumber(time.Now(), s.rng)
	s.mu.Unlock()

	row, err := s.queries.CreateTicket(ctx, db.CreateTicketParams{
		ID:               ticketID,
		TicketNumber:     ticketNumber,
		Title:            classify.Title(categoryLabel, trainer.Name, feedbackType),
		Description:      description,
		CategoryID:       strPtr(input.Category),
		StudioID:         input.StudioID,
		Priority:         string(priority),
		Status:           string(model.StatusNew),
		Source:           "trainer-feedback",
		Tags:             []string{"trainer-feedback", input.Category},
		ReportedBy:       reportedBy,
		DynamicFieldData: dynamic,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	event := map[string]interface{}{
		"type":         "ticket.created",
		"ticketId":     row.ID,
		"ticketNumber": row.TicketNumber,
		"trainerId":    trainer.ID,
		"priority":     row.Priority,
	}
	_ = s.bus.PublishTicket(row.ID, event)
	_ = s.bus.PublishTrainer(trainer.ID, event)
	_ = s.bus.PublishFeed(event)

	if s.jobClient != nil {
		_ = s.jobClient.ScheduleTicketAnalysis(row.ID)
		if priority == model.PriorityHigh {
			_ = s.jobClient.ScheduleEscalation(row.ID, s.escalateAfter)
		}
	}

	return dbTicketToModel(row), nil
}

// Preview classifies a submission without persisting anything. Used by forms
// to show the rating summary before submit.
func (s *FeedbackService) Preview(category string, answers model.Answers) (float64, model.Priority, model.FeedbackType) {
	avg := classify.AverageRating(answers)
	return avg, classify.PriorityFor(avg), classify.FeedbackTypeFor(avg)
}

func (s *FeedbackService) GetTicket(ctx context.Context, id string) (*model.Ticket, error) {
	row, err := s.queries.GetTicketByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("ticket not found: %w", err)
	}
	return dbTicketToModel(row), nil
}

func (s *FeedbackService) ListTrainers(ctx context.Context) ([]model.Trainer, error) {
	rows, err := s.queries.ListTrainers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list trainers: %w", err)
	}
	trainers := make([]model.Trainer, 0, len(rows))
	for _, r := range rows {
		trainers = append(trainers, model.Trainer{ID: r.ID, Name: r.Name, Specialization: r.Specialization})
	}
	return trainers, nil
}

func (s *FeedbackService) ListCategories(ctx context.Context) ([]model.Category, error) {
	rows, err := s.queries.ListActiveCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	cats := make([]model.Category, 0, len(rows))
	for _, r := range rows {
		cats = append(cats, model.Category{ID: r.ID, Name: r.Name, IsActive: r.IsActive})
	}
	return cats, nil
}

func (s *FeedbackService) ListStudios(ctx context.Context, limit int) ([]model.Studio, error) {
	rows, err := s.queries.ListStudios(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list studios: %w", err)
	}
	studios := make([]model.Studio, 0, len(rows))
	for _, r := range rows {
		studios = append(studios, model.Studio{ID: r.ID, Name: r.Name})
	}
	return studios, nil
}

func dbTicketToModel(r db.Ticket) *model.Ticket {
	return &model.Ticket{
		ID:               r.ID,
		TicketNumber:     r.TicketNumber,
		Title:            r.Title,
		Description:      r.Description,
		CategoryID:       r.CategoryID,
		StudioID:         r.StudioID,
		Priority:         model.Priority(r.Priority),
		Status:           model.TicketStatus(r.Status),
		Source:           r.Source,
		Tags:             r.Tags,
		ReportedBy:       r.ReportedBy,
		DynamicFieldData: r.DynamicFieldData,
		CreatedAt:        r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        r.UpdatedAt.Format(time.RFC3339),
	}
}

func strPtr(s string) *string {
	return &s
}
