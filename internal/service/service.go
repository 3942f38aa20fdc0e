package service

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"resume-extractor/internal/models"
	"resume-extractor/internal/resolver"

	"github.com/google/uuid"
)

type SourceResolver interface {
	Resolve(ref string) (resolver.Source, error)
}

type Fetcher interface {
	Fetch(ctx context.Context, src resolver.Source, dst string) (string, error)
}

type TextExtractor interface {
	Extract(ctx context.Context, path, ext string) (string, error)
}

// ResumeExtractionService runs one reference through resolve, fetch, extract
// and cleanup.
type ResumeExtractionService struct {
	resolver  SourceResolver
	fetcher   Fetcher
	extractor TextExtractor
	tempDir   string
	logger    *slog.Logger
}

func NewResumeExtractionService(r SourceResolver, f Fetcher, e TextExtractor, tempDir string, logger *slog.Logger) *ResumeExtractionService {
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ResumeExtractionService{
		resolver:  r,
		fetcher:   f,
		extractor: e,
		tempDir:   tempDir,
		logger:    logger,
	}
}

// Extract returns the plain text of the document behind reference. A remote
// document is downloaded into a temp file named uniquely for this call, and
// that file is removed before Extract returns whatever the outcome. Local
// paths supplied by the caller are never removed.
func (s *ResumeExtractionService) Extract(ctx context.Context, reference string) (string, error) {

	start := time.Now()

	src, err := s.resolver.Resolve(reference)
	if err != nil {
		return "", err
	}

	logger := s.logger.With("kind", src.Kind.String())

	localPath := src.Reference
	ext := src.Ext

	if src.Remote() {
		localPath = s.tempPath(ext)
		defer s.removeTemp(logger, localPath)

		contentType, err := s.fetcher.Fetch(ctx, src, localPath)
		if err != nil {
			return "", err
		}

		if src.Kind == models.SourceDrive {
			if sniffed := resolver.ExtensionForContentType(contentType); sniffed != "" {
				ext = sniffed
			}
		}

		logger.Debug("document fetched", "temp_path", localPath, "content_type", contentType, "ext", ext)
	}

	text, err := s.extractor.Extract(ctx, localPath, ext)
	if err != nil {
		return "", err
	}

	logger.Info("document extracted", "ext", ext, "chars", len(text), "duration", time.Since(start))

	return text, nil
}

func (s *ResumeExtractionService) tempPath(ext string) string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return filepath.Join(s.tempDir, fmt.Sprintf("resume-%s%s", id.String(), ext))
}

func (s *ResumeExtractionService) removeTemp(logger *slog.Logger, path string) {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		logger.Warn("failed to remove temp file", "temp_path", path, "error", err)
	}
}
