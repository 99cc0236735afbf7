package service

import (
	"time"

	"studioops/internal/jobs"

	"github.com/hibiken/asynq"
)

// JobClient interface for scheduling background jobs
type JobClient interface {
	ScheduleTicketAnalysis(ticketID string) error
	ScheduleEscalation(ticketID string, grace time.Duration) error
}

// AsynqJobClient implements JobClient using asynq
type AsynqJobClient struct {
	client *asynq.Client
}

func NewAsynqJobClient(client *asynq.Client) *AsynqJobClient {
	return &AsynqJobClient{client: client}
}

func (c *AsynqJobClient) ScheduleTicketAnalysis(ticketID string) error {
	return jobs.ScheduleTicketAnalysis(c.client, ticketID)
}

func (c *AsynqJobClient) ScheduleEscalation(ticketID string, grace time.Duration) error {
	return jobs.ScheduleEscalation(c.client, ticketID, grace)
}
