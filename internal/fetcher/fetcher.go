package fetcher

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	apperrors "resume-extractor/internal/errors"
	"resume-extractor/internal/models"
	"resume-extractor/internal/objectstore"
	"resume-extractor/internal/resolver"
)

type Fetcher struct {
	client *http.Client
	stores map[models.SourceKind]objectstore.FileStorer
	create func(name string) (tempFile, error)
}

// tempFile is the part of *os.File a download writes through.
type tempFile interface {
	io.Writer
	io.WriterAt
	io.Closer
}

func createFile(name string) (tempFile, error) {
	return os.Create(name)
}

// New builds a Fetcher. stores holds the object stores that are configured,
// keyed by the source kind they serve; a nil map disables s3:// and gs://.
func New(client *http.Client, stores map[models.SourceKind]objectstore.FileStorer) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Fetcher{client: client, stores: stores, create: createFile}
}

// Fetch writes the document behind src to dst, creating or truncating it, and
// returns the content type reported by the origin ("" when there is none).
// Every failure wraps ErrFetchFailed.
func (f *Fetcher) Fetch(ctx context.Context, src resolver.Source, dst string) (string, error) {

	out, err := f.create(dst)
	if err != nil {
		return "", fmt.Errorf("%w: unable to create %s: %w", apperrors.ErrFetchFailed, dst, err)
	}

	contentType, err := f.fetchInto(ctx, src, out)
	if err != nil {
		_ = out.Close()
		return "", err
	}

	// a failed close can leave a truncated file behind
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("%w: unable to close %s: %w", apperrors.ErrFetchFailed, dst, err)
	}

	return contentType, nil
}

func (f *Fetcher) fetchInto(ctx context.Context, src resolver.Source, out tempFile) (string, error) {

	switch src.Kind {
	case models.SourceURL, models.SourceDrive:
		return f.fetchHTTP(ctx, src.DownloadURL, out)

	case models.SourceS3, models.SourceGCS:
		store, ok := f.stores[src.Kind]
		if !ok {
			return "", fmt.Errorf("%w: no %s object store is configured", apperrors.ErrFetchFailed, src.Kind)
		}

		n, err := store.Download(ctx, src.Bucket, src.Key, out)
		if err != nil {
			return "", fmt.Errorf("%w: %w", apperrors.ErrFetchFailed, err)
		}

		slog.DebugContext(ctx, "object downloaded", "kind", src.Kind.String(), "bucket", src.Bucket, "key", src.Key, "bytes", n)
		return "", nil

	default:
		return "", fmt.Errorf("%w: %s sources are not fetched", apperrors.ErrFetchFailed, src.Kind)
	}
}

func (f *Fetcher) fetchHTTP(ctx context.Context, url string, out io.Writer) (string, error) {

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", apperrors.ErrFetchFailed, err)
	}

	// redirects are followed by the client's default policy
	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", apperrors.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: GET %s returned %s", apperrors.ErrFetchFailed, url, resp.Status)
	}

	n, err := io.Copy(out, resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: failed to write response body: %w", apperrors.ErrFetchFailed, err)
	}

	contentType := resp.Header.Get("Content-Type")

	slog.DebugContext(ctx, "url downloaded", "url", url, "content_type", contentType, "bytes", n)

	return contentType, nil
}
