package objectstore

import (
	"context"
	"io"
)

// FileStorer copies a stored object into w and reports the bytes written.
type FileStorer interface {
	Download(ctx context.Context, bucket, key string, w io.WriterAt) (int64, error)
}
