package extractor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	apperrors "resume-extractor/internal/errors"
	"resume-extractor/internal/resolver"
)

type extractFunc func(ctx context.Context, path string) (string, error)

// TextExtractor turns a PDF or DOCX file on local disk into plain text.
type TextExtractor struct {
	byExt map[string]extractFunc
}

func New() *TextExtractor {
	return &TextExtractor{
		byExt: map[string]extractFunc{
			resolver.ExtPDF:  extractPDF,
			resolver.ExtDOCX: extractDOCX,
		},
	}
}

// Extract dispatches on ext, not on the suffix of path. The format is checked
// before the file's existence, so an unsupported extension always wins.
func (e *TextExtractor) Extract(ctx context.Context, path, ext string) (string, error) {

	extract, ok := e.byExt[strings.ToLower(ext)]
	if !ok {
		return "", fmt.Errorf("%w: %q", apperrors.ErrUnsupportedFormat, ext)
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", apperrors.ErrFileNotFound, path)
		}
		return "", fmt.Errorf("%w: %w", apperrors.ErrExtractionFailed, err)
	}

	text, err := extract(ctx, path)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", fmt.Errorf("%w: %w", apperrors.ErrExtractionFailed, err)
	}

	return text, nil
}
