package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"campaign_syncer/internal/domain"
	"campaign_syncer/internal/queue"
	"campaign_syncer/internal/service"
)

// Handler runs one job payload.
type Handler interface {
	Handle(ctx context.Context, body []byte) (*domain.JobResponse, error)
}

// Source yields job deliveries until ctx is cancelled.
type Source interface {
	Consume(ctx context.Context) (<-chan amqp.Delivery, error)
}

var ErrDeliveriesClosed = errors.New("delivery channel closed")

type Worker struct {
	source      Source
	handler     Handler
	concurrency int
	defaultTTL  time.Duration
	logger      *slog.Logger
}

func New(source Source, handler Handler, concurrency int, defaultTTL time.Duration, logger *slog.Logger) *Worker {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Worker{
		source:      source,
		handler:     handler,
		concurrency: concurrency,
		defaultTTL:  defaultTTL,
		logger:      logger,
	}
}

// Start consumes jobs until ctx is cancelled or the delivery stream ends.
// Each job runs sequentially on one of the worker goroutines.
func (w *Worker) Start(ctx context.Context) error {
	deliveries, err := w.source.Consume(ctx)
	if err != nil {
		return err
	}

	w.logger.Info("worker started", "concurrency", w.concurrency, "default_ttl", w.defaultTTL)

	var wg sync.WaitGroup
	for i := 0; i < w.concurrency; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			w.run(ctx, id, deliveries)
		}(i)
	}
	wg.Wait()

	if ctx.Err() != nil {
		w.logger.Info("worker stopped")
		return ctx.Err()
	}
	return ErrDeliveriesClosed
}

func (w *Worker) run(ctx context.Context, id int, deliveries <-chan amqp.Delivery) {
	logger := w.logger.With("worker", id)
	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-deliveries:
			if !ok {
				logger.Warn("delivery channel closed")
				return
			}
			w.process(ctx, logger, d)
		}
	}
}

// process runs one delivery. Finished jobs are acked whether they succeeded
// or failed, since the failure is already in the job log. A job cut short by
// shutdown is requeued so another consumer runs it again. Jobs that could not
// be attempted are dropped without requeue.
func (w *Worker) process(ctx context.Context, logger *slog.Logger, d amqp.Delivery) {
	ttl := queue.ExpirationOf(d)
	if ttl == 0 {
		ttl = w.defaultTTL
	}

	jobCtx, cancel := context.WithTimeout(ctx, ttl)
	defer cancel()

	start := time.Now()
	_, err := w.handler.Handle(jobCtx, d.Body)

	var jobErr *service.JobError
	switch {
	case err == nil:
		logger.Debug("job done", "message_id", d.MessageId, "duration", time.Since(start))
		w.ack(logger, d)
	case ctx.Err() != nil:
		logger.Warn("job interrupted by shutdown, requeueing", "message_id", d.MessageId, "error", err)
		if err := d.Nack(false, true); err != nil {
			logger.Error("failed to requeue delivery", "message_id", d.MessageId, "error", err)
		}
	case errors.As(err, &jobErr):
		logger.Debug("job failed", "message_id", d.MessageId, "code", jobErr.Response.Code)
		w.ack(logger, d)
	default:
		logger.Error("job could not be handled", "message_id", d.MessageId, "error", err)
		if err := d.Nack(false, false); err != nil {
			logger.Error("failed to nack delivery", "message_id", d.MessageId, "error", err)
		}
	}
}

func (w *Worker) ack(logger *slog.Logger, d amqp.Delivery) {
	if err := d.Ack(false); err != nil {
		logger.Error("failed to ack delivery", "message_id", d.MessageId, "error", err)
	}
}
