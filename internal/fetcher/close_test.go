package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	apperrors "resume-extractor/internal/errors"
	"resume-extractor/internal/models"
	"resume-extractor/internal/resolver"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingClose writes through to a real file but reports a failed close.
type failingClose struct {
	*os.File
}

func (f failingClose) Close() error {
	_ = f.File.Close()
	return errors.New("write back failed")
}

func TestFetch_CloseErrorIsFetchFailure(t *testing.T) {

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-1.4 body"))
	}))
	defer srv.Close()

	f := New(srv.Client(), nil)
	f.create = func(name string) (tempFile, error) {
		file, err := os.Create(name)
		if err != nil {
			return nil, err
		}
		return failingClose{file}, nil
	}

	dst := filepath.Join(t.TempDir(), "resume.pdf")

	contentType, err := f.Fetch(context.Background(), resolver.Source{Kind: models.SourceURL, DownloadURL: srv.URL + "/resume.pdf"}, dst)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrFetchFailed)
	assert.ErrorContains(t, err, "write back failed")
	assert.Empty(t, contentType)
}
