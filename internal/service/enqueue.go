package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"campaign_syncer/internal/domain"
)

// Enqueuer creates jobs: a waiting job log row plus the queue message. The
// row is written before the message exists, so a consumer always finds it.
type Enqueuer struct {
	jobLog    *JobLog
	publisher Publisher
	queue     string
	ttl       int
	logger    *slog.Logger
}

func NewEnqueuer(
	jobLogs JobLogStore,
	publisher Publisher,
	queue string,
	ttl int,
	logger *slog.Logger,
) *Enqueuer {
	if ttl <= 0 {
		ttl = domain.DefaultJobTTL
	}
	return &Enqueuer{
		jobLog:    NewJobLog(jobLogs, logger),
		publisher: publisher,
		queue:     queue,
		ttl:       ttl,
		logger:    logger,
	}
}

// Enqueue records and publishes one job. When the publish fails the row is
// marked failed, since no consumer will ever pick it up.
func (e *Enqueuer) Enqueue(ctx context.Context, action string, data map[string]any) (*domain.JobResponse, error) {
	jobType := domain.JobTypeFor(action)
	if jobType == "" {
		return nil, fmt.Errorf("unsupported action %q", action)
	}
	if data == nil {
		data = map[string]any{}
	}

	// time-based, so job ids sort roughly by creation
	id, err := uuid.NewUUID()
	if err != nil {
		return nil, fmt.Errorf("generate job uuid: %w", err)
	}

	msg := &domain.JobMessage{
		UUID: id.String(),
		Body: &domain.JobBody{Action: action, Data: data},
		TTL:  e.ttl,
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("marshal job: %w", err)
	}

	if err := e.jobLog.Create(ctx, &domain.JobLogEntry{
		UUID:    msg.UUID,
		Type:    jobType,
		Action:  action,
		Payload: string(payload),
		Queue:   e.queue,
	}); err != nil {
		return nil, err
	}

	if err := e.publisher.Publish(ctx, msg); err != nil {
		err = fmt.Errorf("publish job: %w", err)
		if logErr := e.jobLog.Update(ctx, msg.UUID, CodePublishFailed, err.Error(), domain.JobStatusFailed); logErr != nil {
			e.logger.Error("failed to record publish failure", "job_uuid", msg.UUID, "error", logErr)
		}
		return nil, err
	}

	e.logger.Info("job enqueued",
		"job_uuid", msg.UUID,
		"action", action,
		"queue", e.queue,
	)

	return &domain.JobResponse{
		Status:  domain.ResponseStatusOK,
		Code:    CodeJobQueued,
		Message: fmt.Sprintf("%s job sent to queue", action),
		Payload: msg,
	}, nil
}
