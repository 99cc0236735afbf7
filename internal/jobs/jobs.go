package jobs

import (
	"context"
	"fmt"
	"time"

	"studioops/internal/ai"
	"studioops/internal/classify"
	"studioops/internal/db"
	"studioops/internal/model"
	"studioops/internal/pubsub"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

type JobServer struct {
	server   *asynq.Server
	client   *asynq.Client
	db       *db.Pool
	bus      *pubsub.Bus
	analyzer ai.Analyzer
	log      *zap.Logger
}

func NewJobServer(redisAddr string, dbPool *db.Pool, bus *pubsub.Bus, analyzer ai.Analyzer, log *zap.Logger) (*JobServer, *asynq.Client) {
	redisOpt := asynq.RedisClientOpt{Addr: redisAddr}

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
		},
	)

	client := asynq.NewClient(redisOpt)

	return &JobServer{
		server:   server,
		client:   client,
		db:       dbPool,
		bus:      bus,
		analyzer: analyzer,
		log:      log,
	}, client
}

func (js *JobServer) Start() error {
	mux := asynq.NewServeMux()

	mux.HandleFunc("ticket:analyze", js.handleTicketAnalyze)
	mux.HandleFunc("ticket:escalate", js.handleTicketEscalate)

	return js.server.Start(mux)
}

func (js *JobServer) Stop() {
	js.server.Shutdown()
	js.client.Close()
}

// Job handlers

// handleTicketAnalyze runs sentiment analysis for a freshly created ticket
// and merges the result back into the row. Submission itself never waits on
// this; a failed run just leaves the ticket without an analysis block.
func (js *JobServer) handleTicketAnalyze(ctx context.Context, t *asynq.Task) error {
	ticketID := string(t.Payload())

	ticket, err := js.db.Queries.GetTicketByID(ctx, ticketID)
	if err != nil {
		return fmt.Errorf("failed to get ticket: %w", err)
	}

	trainerName, _ := ticket.DynamicFieldData["trainerName"].(string)
	insights, err := js.analyzer.AnalyzeSentiment(ctx, ai.SentimentRequest{
		TicketID:    ticket.ID,
		TrainerName: trainerName,
		Category:    deref(ticket.CategoryID),
		Description: ticket.Description,
	})
	if err != nil {
		return fmt.Errorf("sentiment analysis failed: %w", err)
	}

	suffix := classify.RenderInsightsBlock(&insights)
	merged := map[string]interface{}{
		"aiSentiment": insights.Sentiment,
		"aiScore":     insights.Score,
		"aiInsights":  insights.Insights,
	}
	if _, err := js.db.Queries.UpdateTicketInsights(ctx, ticketID, merged, suffix); err != nil {
		return fmt.Errorf("failed to store insights: %w", err)
	}

	_ = js.bus.PublishTicket(ticketID, map[string]interface{}{
		"type":      "ticket.analyzed",
		"ticketId":  ticketID,
		"sentiment": insights.Sentiment,
		"score":     insights.Score,
	})

	js.log.Info("Ticket analyzed",
		zap.String("ticket_id", ticketID),
		zap.String("sentiment", insights.Sentiment),
	)
	return nil
}

// handleTicketEscalate notifies the studio feed about a high-priority ticket
// that is still unresolved.
func (js *JobServer) handleTicketEscalate(ctx context.Context, t *asynq.Task) error {
	ticketID := string(t.Payload())

	ticket, err := js.db.Queries.GetTicketByID(ctx, ticketID)
	if err != nil {
		return fmt.Errorf("failed to get ticket: %w", err)
	}

	if ticket.Status != string(model.StatusNew) && ticket.Status != string(model.StatusOpen) {
		return nil
	}
	if ticket.Priority != string(model.PriorityHigh) {
		return nil
	}

	_ = js.bus.PublishFeed(map[string]interface{}{
		"type":         "ticket.escalated",
		"ticketId":     ticketID,
		"ticketNumber": ticket.TicketNumber,
		"title":        ticket.Title,
	})

	js.log.Info("Ticket escalated", zap.String("ticket_id", ticketID))
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Schedule jobs

func ScheduleTicketAnalysis(client *asynq.Client, ticketID string) error {
	task := asynq.NewTask("ticket:analyze", []byte(ticketID))
	_, err := client.Enqueue(task, asynq.Queue("default"))
	return err
}

// ScheduleEscalation re-checks a high-priority ticket after the grace window
// so concerns never sit unseen.
func ScheduleEscalation(client *asynq.Client, ticketID string, grace time.Duration) error {
	task := asynq.NewTask("ticket:escalate", []byte(ticketID))
	_, err := client.Enqueue(task, asynq.ProcessIn(grace), asynq.Queue("critical"))
	return err
}
