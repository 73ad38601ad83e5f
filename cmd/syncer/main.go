package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"campaign_syncer/internal/appnexus"
	"campaign_syncer/internal/cache"
	"campaign_syncer/internal/config"
	"campaign_syncer/internal/observability"
	"campaign_syncer/internal/queue"
	"campaign_syncer/internal/service"
	"campaign_syncer/internal/storage/sqlstore"
	"campaign_syncer/internal/worker"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTracing, err := observability.InitTracing(ctx, "campaign_syncer", observability.Config{
		Exporter: cfg.Tracing.Exporter,
		Endpoint: cfg.Tracing.Endpoint,
		Insecure: cfg.Tracing.Insecure,
	})
	if err != nil {
		logger.Error("failed to init tracing", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("failed to shut down tracing", "error", err)
		}
	}()

	db, err := sqlx.Connect(cfg.Database.Driver, cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database", "driver", cfg.Database.Driver)

	var lookups service.LookupStore = sqlstore.NewLookupStore(db)
	if cfg.Cache.Enabled() {
		pool := cache.NewPool(cfg.Cache.Addr)
		defer pool.Close()
		lookups = cache.NewLookupCache(lookups, pool, cache.Config{
			Addr: cfg.Cache.Addr,
			TTL:  cfg.Cache.TTL,
		}, logger)
		logger.Info("lookup cache enabled", "addr", cfg.Cache.Addr, "ttl", cfg.Cache.TTL)
	}

	client := appnexus.New(appnexus.Config{
		BaseURL:        cfg.AppNexus.BaseURL,
		Username:       cfg.AppNexus.Username,
		Password:       cfg.AppNexus.Password,
		Timeout:        cfg.AppNexus.Timeout,
		MaxAttempts:    cfg.AppNexus.Retry.MaxAttempts,
		InitialBackoff: cfg.AppNexus.Retry.InitialBackoff,
		MaxBackoff:     cfg.AppNexus.Retry.MaxBackoff,
	}, logger)

	orchestrator := service.NewOrchestrator(
		sqlstore.NewCampaignStore(db),
		sqlstore.NewInventoryStore(db),
		sqlstore.NewFrequencyStore(db),
		sqlstore.NewUserStore(db),
		lookups,
		sqlstore.NewJobLogStore(db),
		client,
		logger,
	)

	hostname, _ := os.Hostname()
	consumer, err := queue.NewConsumer(queue.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
		Prefetch:   cfg.RabbitMQ.Prefetch,
	}, "campaign_syncer@"+hostname, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer consumer.Close()

	w := worker.New(consumer, orchestrator, cfg.Worker.Concurrency, cfg.Worker.DefaultTTL, logger)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting campaign syncer",
		"queue", cfg.RabbitMQ.QueueName,
		"concurrency", cfg.Worker.Concurrency,
		"appnexus", cfg.AppNexus.BaseURL,
	)

	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("worker error", "error", err)
		os.Exit(1)
	}
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
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
