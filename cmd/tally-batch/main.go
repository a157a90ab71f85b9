package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/kelechimadu/invoice-tally/constants"
	"github.com/kelechimadu/invoice-tally/gen/ent"
	"github.com/kelechimadu/invoice-tally/internal/batch"
	"github.com/kelechimadu/invoice-tally/internal/common"
	"github.com/kelechimadu/invoice-tally/internal/export"
	repo "github.com/kelechimadu/invoice-tally/internal/repository"
	"github.com/kelechimadu/invoice-tally/internal/vision"
)

// localUserID owns rows created by the CLI; there is no auth provider here.
const localUserID = "local"

// printError prints to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir   = flag.String("dir", "", "directory of invoice images to process (required)")
		out   = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
		name  = flag.String("name", "", "batch name (optional, defaults to the directory name)")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "invoices.xlsx")
	}
	if *name == "" {
		*name = filepath.Base(*dir)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	if cfg.Vision.APIKey == "" {
		printError("Error: OPENAI_API_KEY is required\n")
		os.Exit(1)
	}

	entc, cleanup, err := openDatabase(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	images, err := loadImages(*dir)
	if err != nil {
		logger.Error("failed to read images", "dir", *dir, "error", err)
		os.Exit(1)
	}
	if len(images) == 0 {
		printError("Error: no supported invoice images found in %s\n", *dir)
		os.Exit(1)
	}
	logger.Info("processing directory", "dir", *dir, "images", len(images))

	visionClient := vision.NewClient(vision.Config{
		APIKey:      cfg.Vision.APIKey,
		BaseURL:     cfg.Vision.BaseURL,
		Model:       cfg.Vision.Model,
		Temperature: cfg.Vision.Temperature,
		MaxTokens:   cfg.Vision.MaxTokens,
		Timeout:     cfg.Vision.Timeout,
		MaxAttempts: cfg.Vision.MaxAttempts,
	}, logger)
	aggregator := batch.NewAggregator(visionClient, logger)

	rows, summary := aggregator.Process(ctx, images)

	batchesRepo := repo.NewBatchRepository(entc, logger)
	b, _, err := batchesRepo.CreateBatch(ctx, &repo.CreateBatchRequest{
		UserID:  localUserID,
		Name:    *name,
		Rows:    rows,
		Summary: summary,
	})
	if err != nil {
		logger.Error("failed to persist batch", "error", err)
		os.Exit(1)
	}

	data, err := export.NewService(batchesRepo, logger).ExportBatchXLSX(ctx, localUserID, b.ID)
	if err != nil {
		logger.Error("failed to export batch", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		logger.Error("failed to write workbook", "path", *out, "error", err)
		os.Exit(1)
	}

	fmt.Printf("Processed %d invoices (%d flagged)\n", summary.TotalInvoices, summary.FlaggedCount)
	fmt.Printf("Totals (non-flagged): parts=%.2f labor=%.2f tax=%.2f\n",
		summary.TotalParts, summary.TotalLabor, summary.TotalTax)
	fmt.Printf("Workbook written to %s\n", *out)
}

// openDatabase picks in-memory SQLite or the configured Postgres.
func openDatabase(ctx context.Context, cfg *common.Config, inmem bool, logger *slog.Logger) (*ent.Client, func(), error) {
	if inmem {
		entc, err := repo.OpenSQLite(ctx, "file:tally?mode=memory&cache=shared")
		if err != nil {
			return nil, nil, err
		}
		logger.Info("using in-memory SQLite database")
		return entc, func() { _ = entc.Close() }, nil
	}

	if cfg.Database.DSN == "" {
		return nil, nil, fmt.Errorf("DB_URL is required unless --inmem is set")
	}
	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		return nil, nil, err
	}
	if err := repo.HealthCheck(ctx, pool, 3*time.Second, logger); err != nil {
		repo.Close(entc, pool, logger)
		return nil, nil, err
	}
	return entc, func() { repo.Close(entc, pool, logger) }, nil
}

// loadImages reads every supported image in dir, sorted by filename so batch
// order is stable run to run.
func loadImages(dir string) ([]batch.Image, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var images []batch.Image
	for _, e := range entries {
		if e.IsDir() || !constants.IsAllowedExt(e.Name()) {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", e.Name(), err)
		}
		images = append(images, batch.Image{Data: data, Filename: e.Name()})
	}
	sort.Slice(images, func(i, j int) bool { return images[i].Filename < images[j].Filename })
	return images, nil
}
