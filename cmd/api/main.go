package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resume-extractor/internal/api"
	"resume-extractor/internal/config"
	"resume-extractor/internal/extractor"
	"resume-extractor/internal/fetcher"
	"resume-extractor/internal/gcs"
	"resume-extractor/internal/models"
	"resume-extractor/internal/objectstore"
	"resume-extractor/internal/resolver"
	"resume-extractor/internal/s3"
	"resume-extractor/internal/service"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

func main() {

	// a missing .env is fine, the process environment is enough
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stores := make(map[models.SourceKind]objectstore.FileStorer)

	if cfg.S3Enabled() {
		s3Store, err := s3.NewFileStore(ctx, cfg.S3)
		if err != nil {
			return err
		}
		stores[models.SourceS3] = s3Store
		logger.Info("S3 FileStore initialized", "endpoint", cfg.S3.EndpointURL, "region", cfg.S3.Region)
	}

	if cfg.GCSEnable {
		gcsStore, err := gcs.NewFileStore(ctx, cfg.GCS)
		if err != nil {
			return err
		}
		defer gcsStore.Close()
		stores[models.SourceGCS] = gcsStore
		logger.Info("GCS FileStore initialized", "endpoint", cfg.GCS.Endpoint)
	}

	svc := service.NewResumeExtractionService(
		resolver.New(cfg.DriveDownloadURL),
		fetcher.New(&http.Client{Timeout: cfg.FetchTimeout}, stores),
		extractor.New(),
		cfg.TempDir,
		logger,
	)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           api.NewRouter(api.NewAPIHandler(svc, logger)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting server", "addr", srv.Addr, "temp_dir", cfg.TempDir)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutdown signal received, draining requests...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("Server shutdown complete")
	return nil
}
