package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fhuszti/transcripts-ms-go/internal/cache"
	"github.com/fhuszti/transcripts-ms-go/internal/config"
	"github.com/fhuszti/transcripts-ms-go/internal/converter"
	"github.com/fhuszti/transcripts-ms-go/internal/db"
	workerHandler "github.com/fhuszti/transcripts-ms-go/internal/handler/worker"
	"github.com/fhuszti/transcripts-ms-go/internal/llm"
	"github.com/fhuszti/transcripts-ms-go/internal/logger"
	"github.com/fhuszti/transcripts-ms-go/internal/port"
	"github.com/fhuszti/transcripts-ms-go/internal/repository/mariadb"
	"github.com/fhuszti/transcripts-ms-go/internal/storage"
	"github.com/fhuszti/transcripts-ms-go/internal/task"
	"github.com/fhuszti/transcripts-ms-go/internal/transcriber"
	mediaSvc "github.com/fhuszti/transcripts-ms-go/internal/usecase/media"
	"github.com/hibiken/asynq"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}
	if cfg.RedisAddr == "" {
		logger.Error(ctx, "⚠️  REDIS_ADDR must be set to run the worker")
		os.Exit(1)
	}

	logger.Init()

	database := initDb(cfg)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Warnf(ctx, "DB close error: %v", err)
		}
	}()

	strg := initStorage(cfg)
	if err := strg.InitBucket(cfg.Bucket); err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize bucket %q: %v", cfg.Bucket, err)
		os.Exit(1)
	}

	repo := mariadb.NewMediaRepository(database.DB)
	snapshotRepo := mariadb.NewSnapshotRepository(database.DB)
	ca := cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)

	conv := converter.NewFFmpegConverter(
		converter.NewExecRunner(),
		cfg.FFmpegBin,
		cfg.AudioBitrate,
		cfg.AudioSampleRate,
		cfg.WorkDir,
	)
	trans := transcriber.NewClient(transcriber.Config{
		APIKey:        cfg.DashScopeAPIKey,
		APIBase:       cfg.DashScopeAPIBase,
		MaxAttempts:   cfg.TranscribeMaxTries,
		Interval:      cfg.TranscribeInterval,
		LanguageHints: cfg.TranscribeLangHints,
	})
	getClient := llm.NewClientGetter(llm.Config{
		OpenAIAPIKey:     cfg.OpenAIAPIKey,
		OpenAIAPIBase:    cfg.OpenAIAPIBase,
		OpenAIModel:      cfg.OpenAIModel,
		DashScopeAPIKey:  cfg.DashScopeAPIKey,
		DashScopeAPIBase: cfg.DashScopeAPIBase,
		DashScopeModel:   cfg.DashScopeModel,
	})
	background := mediaSvc.LoadWorldBackground(cfg.WorldBackgroundPath)

	convertSvc := mediaSvc.NewMediaConverter(repo, strg, conv, cfg.Bucket, cfg.WorkDir)
	transcribeSvc := mediaSvc.NewMediaTranscriber(repo, strg, trans, cfg.Bucket)
	summarySvc := mediaSvc.NewSummaryGenerator(repo, snapshotRepo, getClient, ca, db.NewUUID, cfg.DefaultLLMProvider, background)
	subtitleSvc := mediaSvc.NewSubtitleGenerator(repo, getClient, cfg.DefaultLLMProvider, background)
	processSvc := mediaSvc.NewMediaProcessor(convertSvc, transcribeSvc, subtitleSvc, summarySvc)

	mux := asynq.NewServeMux()
	mux.HandleFunc(task.TypeProcessMedia, func(ctx context.Context, t *asynq.Task) error {
		p, err := task.ParseProcessMediaPayload(t)
		if err != nil {
			return err
		}
		return workerHandler.ProcessMediaHandler(ctx, p, processSvc)
	})
	mux.HandleFunc(task.TypeGenerateSummary, func(ctx context.Context, t *asynq.Task) error {
		p, err := task.ParseGenerateSummaryPayload(t)
		if err != nil {
			return err
		}
		return workerHandler.GenerateSummaryHandler(ctx, p, summarySvc)
	})

	runWorker(ctx, mux, cfg, database)
}

func initDb(cfg *config.Settings) *db.Database {
	ctx := context.Background()
	logger.Info(ctx, "initialising database...")

	database, err := db.New(cfg.MariaDBDSN, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}
	return database
}

func initStorage(cfg *config.Settings) port.Storage {
	strg, err := storage.NewMinioStorage(
		cfg.MinioEndpoint,
		cfg.MinioAccessKey,
		cfg.MinioSecretKey,
		cfg.MinioUseSSL,
	)
	if err != nil {
		logger.Errorf(context.Background(), "❌  Failed to initialize MinIO client: %v", err)
		os.Exit(1)
	}

	return strg
}

func runWorker(ctx context.Context, mux *asynq.ServeMux, cfg *config.Settings, database *db.Database) {
	srv := asynq.NewServer(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}, asynq.Config{Concurrency: cfg.WorkerConcurrency})

	// Run server in background
	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Errorf(context.Background(), "❌  Worker failed: %v", err)
			os.Exit(1)
		}
	}()
	logger.Info(ctx, "🚀 Worker started")

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// Give Asynq up to 30 sec to finish tasks
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	srv.Shutdown()       // stop accepting new tasks, finish in-flight
	<-shutdownCtx.Done() // either timeout or done

	// Close DB
	if err := database.Close(); err != nil {
		logger.Warnf(ctx, "DB close error: %v", err)
	}
	logger.Info(ctx, "✅  Worker gracefully stopped")
}
