package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/kelechimadu/invoice-tally/internal/auth"
	"github.com/kelechimadu/invoice-tally/internal/batch"
	"github.com/kelechimadu/invoice-tally/internal/common"
	"github.com/kelechimadu/invoice-tally/internal/export"
	"github.com/kelechimadu/invoice-tally/internal/repository"
	"github.com/kelechimadu/invoice-tally/internal/server"
	"github.com/kelechimadu/invoice-tally/internal/storage"
	"github.com/kelechimadu/invoice-tally/internal/vision"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, 3*time.Second, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	// object storage is optional: without it originals are simply not retained
	var store storage.Storage
	if cfg.Storage.Endpoint != "" {
		store, err = storage.NewMinIO(cfg.Storage)
		if err != nil {
			logger.Error("failed to initialize object storage", "error", err)
			os.Exit(1)
		}
		logger.Info("object storage enabled", "bucket", cfg.Storage.Bucket)
	}

	verifier := auth.NewHTTPVerifier(auth.Config{
		BaseURL: cfg.Auth.BaseURL,
		APIKey:  cfg.Auth.APIKey,
		Timeout: cfg.Auth.Timeout,
	}, logger)

	visionClient := vision.NewClient(vision.Config{
		APIKey:      cfg.Vision.APIKey,
		BaseURL:     cfg.Vision.BaseURL,
		Model:       cfg.Vision.Model,
		Temperature: cfg.Vision.Temperature,
		MaxTokens:   cfg.Vision.MaxTokens,
		Timeout:     cfg.Vision.Timeout,
		MaxAttempts: cfg.Vision.MaxAttempts,
	}, logger)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	batchMetrics, err := batch.NewMetrics(registry)
	if err != nil {
		logger.Error("failed to register metrics", "error", err)
		os.Exit(1)
	}

	batchesRepo := repository.NewBatchRepository(entc, logger)
	invoicesRepo := repository.NewInvoiceRepository(entc, logger)
	aggregator := batch.NewAggregator(visionClient, logger).WithMetrics(batchMetrics)
	exporter := export.NewService(batchesRepo, logger)

	handler := server.NewHandler(
		batchesRepo,
		invoicesRepo,
		aggregator,
		exporter,
		store,
		cfg.Server.MaxUploadMB,
		logger,
	)
	app, err := server.New(server.Deps{
		Handler:     handler,
		Verifier:    verifier,
		Pinger:      pool,
		Registry:    registry,
		Logger:      logger,
		MaxUploadMB: cfg.Server.MaxUploadMB,
	})
	if err != nil {
		logger.Error("failed to build server", "error", err)
		os.Exit(1)
	}

	go func() {
		logger.Info("http serving", "addr", cfg.Server.HTTPAddr)
		if err := app.Listen(cfg.Server.HTTPAddr); err != nil {
			logger.Error("http serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error("shutdown error", "error", err)
	}
	logger.Info("stopped")
}
