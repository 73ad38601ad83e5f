package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"campaign_syncer/internal/domain"
)

// jobLogWriteTimeout bounds a job log write once it no longer follows the
// job's own context.
const jobLogWriteTimeout = 10 * time.Second

// JobLog records job lifecycle transitions. It never reads the log back, so
// repeated updates for the same uuid are harmless.
type JobLog struct {
	store  JobLogStore
	logger *slog.Logger
}

func NewJobLog(store JobLogStore, logger *slog.Logger) *JobLog {
	return &JobLog{store: store, logger: logger}
}

// Create appends a waiting row for a freshly enqueued job.
func (l *JobLog) Create(ctx context.Context, entry *domain.JobLogEntry) error {
	entry.Status = domain.JobStatusWaiting
	if err := l.store.Create(ctx, entry); err != nil {
		return fmt.Errorf("create job log: %w", err)
	}
	return nil
}

// Update writes a status transition. The write outlives ctx: a job cut short
// by its TTL or by shutdown still gets its final status recorded.
func (l *JobLog) Update(ctx context.Context, uuid, code, message, status string) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), jobLogWriteTimeout)
	defer cancel()

	if err := l.store.Update(ctx, uuid, code, message, status); err != nil {
		return fmt.Errorf("update job log: %w", err)
	}

	l.logger.Debug("job log updated",
		"job_uuid", uuid,
		"status", status,
		"code", code,
	)
	return nil
}
