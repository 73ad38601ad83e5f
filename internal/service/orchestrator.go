package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"campaign_syncer/internal/appnexus"
	"campaign_syncer/internal/domain"
	"campaign_syncer/internal/observability"
)

// Orchestrator runs one queued job from payload to completion.
type Orchestrator struct {
	campaigns   CampaignStore
	inventories InventoryStore
	frequencies FrequencyStore
	users       UserStore
	lookups     LookupStore
	remote      AppNexus
	validator   *Validator
	jobLog      *JobLog
	dispatcher  *Dispatcher
	logger      *slog.Logger
	now         func() time.Time
}

func NewOrchestrator(
	campaigns CampaignStore,
	inventories InventoryStore,
	frequencies FrequencyStore,
	users UserStore,
	lookups LookupStore,
	jobLogs JobLogStore,
	remote AppNexus,
	logger *slog.Logger,
) *Orchestrator {
	jobLog := NewJobLog(jobLogs, logger)
	return &Orchestrator{
		campaigns:   campaigns,
		inventories: inventories,
		frequencies: frequencies,
		users:       users,
		lookups:     lookups,
		remote:      remote,
		validator:   NewValidator(users, inventories),
		jobLog:      jobLog,
		dispatcher:  NewDispatcher(jobLog, logger),
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// job is the state of one running job.
type job struct {
	msg    *domain.JobMessage
	logger *slog.Logger
}

func (j *job) action() string {
	return j.msg.Body.Action
}

type handlerFunc func(ctx context.Context, j *job) (*domain.JobResponse, error)

func (o *Orchestrator) handler(action string) handlerFunc {
	switch action {
	case domain.ActionAddAdvertiser:
		return o.addAdvertiser
	case domain.ActionUpdateAdvertiser:
		return o.updateAdvertiser
	case domain.ActionDeleteAdvertiser:
		return o.deleteAdvertiser
	case domain.ActionSyncDomains:
		return o.syncDomains
	case domain.ActionSyncProfile:
		return o.syncProfile
	case domain.ActionSyncLineItem:
		return o.syncLineItem
	case domain.ActionSyncCampaign:
		return o.syncCampaign
	case domain.ActionSyncStatus:
		return o.syncStatus
	default:
		return nil
	}
}

// Handle runs the job encoded in body. A job that ends early returns a
// *JobError whose response has already been written to the job log. Any
// other error means the job could not be attempted.
func (o *Orchestrator) Handle(ctx context.Context, body []byte) (*domain.JobResponse, error) {
	var msg domain.JobMessage
	if err := json.Unmarshal(body, &msg); err != nil || msg.Body == nil || msg.Body.Action == "" || msg.Body.Data == nil {
		return nil, o.dispatcher.Dispatch(ctx, msg.UUID, &domain.JobResponse{
			Code:    CodeMalformedPayload,
			Message: "The payload is malformed",
			Payload: string(body),
		})
	}

	j := &job{
		msg:    &msg,
		logger: o.logger.With("job_uuid", msg.UUID, "action", msg.Body.Action),
	}

	ctx, span := observability.StartSpan(ctx, "job "+msg.Body.Action,
		attribute.String("job.uuid", msg.UUID),
		attribute.String("job.action", msg.Body.Action),
	)
	defer span.End()

	j.logger.Info("job started")

	if err := o.jobLog.Update(ctx, msg.UUID, "", "", domain.JobStatusRunning); err != nil {
		j.logger.Warn("failed to mark job running", "error", err)
	}

	handle := o.handler(msg.Body.Action)
	if handle == nil {
		err := o.fail(ctx, j, CodeUnsupportedAction, fmt.Sprintf("Unsupported action: %s", msg.Body.Action))
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	resp, err := handle(ctx, j)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	resp.Status = domain.JobStatusComplete
	resp.Code = CodeJobCompleted
	resp.Payload = j.msg

	if err := o.jobLog.Update(ctx, msg.UUID, resp.Code, resp.Message, resp.Status); err != nil {
		j.logger.Warn("failed to mark job complete", "error", err)
	}

	j.logger.Info("job completed", "message", resp.Message)
	return resp, nil
}

func (o *Orchestrator) fail(ctx context.Context, j *job, code, message string) error {
	return o.dispatcher.Dispatch(ctx, j.msg.UUID, &domain.JobResponse{
		Code:    code,
		Message: message,
		Payload: j.msg,
	})
}

func (o *Orchestrator) remoteFailed(ctx context.Context, j *job, op string, err error) error {
	j.logger.Error("appnexus request failed", "operation", op, "error", err)

	var apiErr *appnexus.Error
	if errors.As(err, &apiErr) && apiErr.ID != "" {
		j.logger.Debug("appnexus error", "error_id", apiErr.ID, "status", apiErr.StatusCode)
	}
	return o.fail(ctx, j, CodeAppNexusRequestFailed, appnexus.DecodeMessage(err))
}

func (o *Orchestrator) persistFailed(ctx context.Context, j *job, op string, err error) error {
	j.logger.Error("local write failed after remote write", "operation", op, "error", err)
	return o.fail(ctx, j, CodePersistenceFailed, fmt.Sprintf("%s: %v", op, err))
}

func (o *Orchestrator) storageFailed(ctx context.Context, j *job, op string, err error) error {
	return o.fail(ctx, j, CodeStorageError, fmt.Sprintf("%s: %v", op, err))
}

// intParam reads a positive integer from the job data. JSON numbers decode
// as float64; producers sometimes send numeric strings.
func intParam(data map[string]any, key string) (int64, bool) {
	var id int64
	switch v := data[key].(type) {
	case float64:
		id = int64(v)
	case int:
		id = int64(v)
	case int64:
		id = v
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		id = n
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, false
		}
		id = n
	default:
		return 0, false
	}
	return id, id > 0
}
