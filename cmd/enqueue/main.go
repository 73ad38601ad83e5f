package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"campaign_syncer/internal/config"
	"campaign_syncer/internal/domain"
	"campaign_syncer/internal/queue"
	"campaign_syncer/internal/service"
	"campaign_syncer/internal/storage/sqlstore"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	action := flag.String("action", "", "job action, e.g. syncAppNexusCampaignProfile")
	userID := flag.Int64("user", 0, "user id for advertiser actions")
	campaignID := flag.Int64("campaign", 0, "campaign id for campaign actions")
	status := flag.String("status", "", "print the job log entry of this job uuid and exit")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := sqlx.Connect(cfg.Database.Driver, cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	jobLogs := sqlstore.NewJobLogStore(db)

	if *status != "" {
		entry, err := jobLogs.Get(ctx, *status)
		if errors.Is(err, domain.ErrNotFound) {
			logger.Error("job not found", "job_uuid", *status)
			os.Exit(1)
		}
		if err != nil {
			logger.Error("failed to read job log", "error", err)
			os.Exit(1)
		}
		printJSON(entry)
		return
	}

	data, err := jobData(*action, *userID, *campaignID)
	if err != nil {
		logger.Error("invalid arguments", "error", err)
		flag.Usage()
		os.Exit(2)
	}

	publisher, err := queue.NewPublisher(queue.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer publisher.Close()

	enqueuer := service.NewEnqueuer(
		jobLogs,
		publisher,
		cfg.RabbitMQ.QueueName,
		int(cfg.Worker.DefaultTTL/time.Second),
		logger,
	)

	resp, err := enqueuer.Enqueue(ctx, *action, data)
	if err != nil {
		logger.Error("failed to enqueue job", "error", err)
		os.Exit(1)
	}
	printJSON(resp)
}

// jobData builds the job data for action from the id flags.
func jobData(action string, userID, campaignID int64) (map[string]any, error) {
	switch domain.JobTypeFor(action) {
	case domain.JobTypeAdvertiser:
		if userID <= 0 {
			return nil, fmt.Errorf("%s needs -user", action)
		}
		return map[string]any{"userId": userID}, nil
	case domain.JobTypeCampaign:
		if campaignID <= 0 {
			return nil, fmt.Errorf("%s needs -campaign", action)
		}
		return map[string]any{"campaignId": campaignID}, nil
	default:
		return nil, fmt.Errorf("unknown action %q", action)
	}
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stderr, opts)
	return slog.New(handler)
}
