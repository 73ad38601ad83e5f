package service

import (
	"context"
	"fmt"
	"log/slog"

	"campaign_syncer/internal/domain"
)

// Job response codes.
const (
	CodeJobCompleted              = "jobCompleted"
	CodeJobQueued                 = "jobQueued"
	CodePublishFailed             = "publishFailed"
	CodeMalformedPayload          = "malformedPayload"
	CodeMissingParameter          = "missingParameter"
	CodeUnsupportedAction         = "unsupportedAction"
	CodeUserNotFound              = "userNotFound"
	CodeCampaignNotFound          = "campaignNotFound"
	CodeUserAdvertiserNotFound    = "userAdvertiserNotFound"
	CodeInvalidAppNexusAdvertiser = "invalidAppNexusAdvertiser"
	CodeInvalidCampaignStatusSync = "invalidCampaignStatusSync"
	CodeEmptyInventories          = "emptyInventories"
	CodeUnsupportedInventoryType  = "unsupportedInventoryType"
	CodeUnresolvedConversionPixel = "unresolvedConversionPixel"
	CodeAppNexusRequestFailed     = "appNexusRequestFailed"
	CodePersistenceFailed         = "persistenceFailed"
	CodeStorageError              = "storageError"
)

// JobError terminates a job. It carries the failed response that was
// recorded in the job log.
type JobError struct {
	Response *domain.JobResponse
}

func (e *JobError) Error() string {
	return fmt.Sprintf("job failed: %s: %s", e.Response.Code, e.Response.Message)
}

// Dispatcher records job failures.
type Dispatcher struct {
	jobLog *JobLog
	logger *slog.Logger
}

func NewDispatcher(jobLog *JobLog, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{jobLog: jobLog, logger: logger}
}

// Dispatch marks resp as failed, writes it to the job log and returns the
// JobError that ends the job. A job log failure is logged; the job still
// ends.
func (d *Dispatcher) Dispatch(ctx context.Context, uuid string, resp *domain.JobResponse) *JobError {
	resp.Status = domain.JobStatusFailed

	d.logger.Error("job failed",
		"job_uuid", uuid,
		"code", resp.Code,
		"message", resp.Message,
	)

	if err := d.jobLog.Update(ctx, uuid, resp.Code, resp.Message, domain.JobStatusFailed); err != nil {
		d.logger.Error("failed to record job failure", "job_uuid", uuid, "error", err)
	}

	return &JobError{Response: resp}
}
