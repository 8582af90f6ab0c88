package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"curator/internal/ai"
	"curator/internal/config"
	"curator/internal/fetcher"
	"curator/internal/pipeline"
	"curator/internal/queue"
	"curator/internal/scheduler"
	"curator/internal/storage/postgres"
	"curator/internal/youtube"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// Initialize RabbitMQ job queue
	rabbitMQ, err := queue.NewRabbitMQ(queue.Config{
		URL:      cfg.RabbitMQ.URL,
		Exchange: cfg.RabbitMQ.Exchange,
		Prefetch: cfg.RabbitMQ.Prefetch,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	// Initialize stores
	resourceStore := postgres.NewResourceStore(db)
	metadataStore := postgres.NewMetadataStore(db)
	tagStore := postgres.NewTagStore(db)
	categoryStore := postgres.NewCategoryStore(db)
	preferenceStore := postgres.NewPreferenceStore(db)
	txManager := postgres.NewTransactionManager(db)

	// Initialize external clients
	youtubeClient := youtube.New(youtube.Config{
		APIKey:  cfg.YouTube.APIKey,
		BaseURL: cfg.YouTube.BaseURL,
		Timeout: cfg.YouTube.Timeout,
	}, logger)

	providers, err := ai.NewProvidersFromConfig(cfg.AI, logger)
	if err != nil {
		logger.Error("failed to build ai providers", "error", err)
		os.Exit(1)
	}
	aiService := ai.NewService(providers, logger)

	fetchers := []pipeline.ContentFetcher{
		fetcher.NewVideoFetcher(youtubeClient, cfg.Fetch.FallbackLanguage, cfg.Fetch.MaxCaptionChars, logger),
		fetcher.NewArticleFetcher(cfg.Fetch.Timeout, cfg.Fetch.UserAgent, cfg.Fetch.MaxArticleChars, logger),
	}

	// Wire the pipeline stages
	ingestionJob := pipeline.NewIngestionJob(
		resourceStore,
		rabbitMQ,
		youtubeClient,
		cfg.Fetch.Timeout,
		cfg.Fetch.UserAgent,
		logger,
	)
	analysisJob := pipeline.NewAnalysisJob(
		resourceStore,
		metadataStore,
		tagStore,
		categoryStore,
		preferenceStore,
		fetchers,
		aiService,
		txManager,
		logger,
	)
	recoveryJob := pipeline.NewRecoveryJob(resourceStore, rabbitMQ, logger)

	sched := scheduler.NewScheduler(recoveryJob, cfg.Pipeline.RecoveryInterval, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting pipeline worker",
		"recovery_interval", cfg.Pipeline.RecoveryInterval,
		"max_attempts", cfg.Pipeline.MaxAttempts,
		"ai_providers", len(providers),
	)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		err := rabbitMQ.Consume(ctx, queue.JobIngest, ingestionJob.Process, cfg.Pipeline.MaxAttempts)
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("ingestion consumer stopped", "error", err)
			cancel()
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		err := rabbitMQ.Consume(ctx, queue.JobAnalyze, analysisJob.Process, cfg.Pipeline.MaxAttempts)
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("analysis consumer stopped", "error", err)
			cancel()
		}
	}()

	if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("scheduler error", "error", err)
	}

	wg.Wait()
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
