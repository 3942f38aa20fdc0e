package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

type MockFileStorer struct {
	mock.Mock
}

// Download writes the []byte passed as the first return value into w, so
// callers see real file content on success.
func (m *MockFileStorer) Download(ctx context.Context, bucket, key string, w io.WriterAt) (int64, error) {
	args := m.Called(ctx, bucket, key, w)

	if err := args.Error(1); err != nil {
		return 0, err
	}

	body, _ := args.Get(0).([]byte)
	n, err := w.WriteAt(body, 0)

	return int64(n), err
}
