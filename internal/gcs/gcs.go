package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

type FileStore struct {
	Client *storage.Client
}

type GCSConfig struct {
	// Endpoint points the client at an emulator such as fake-gcs-server.
	Endpoint string

	// Anonymous skips credential discovery, for public buckets and emulators.
	Anonymous bool
}

func NewFileStore(ctx context.Context, conf GCSConfig) (*FileStore, error) {

	var opts []option.ClientOption

	if conf.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(conf.Endpoint))
	}
	if conf.Anonymous {
		opts = append(opts, option.WithoutAuthentication())
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create gcs client: %w", err)
	}

	return &FileStore{Client: client}, nil
}

func (fs *FileStore) Close() error {
	return fs.Client.Close()
}

// Download streams the object into w starting at offset 0.
func (fs *FileStore) Download(ctx context.Context, bucket, key string, w io.WriterAt) (int64, error) {

	reader, err := fs.Client.Bucket(bucket).Object(key).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) || errors.Is(err, storage.ErrBucketNotExist) {
			return 0, fmt.Errorf("gs://%s/%s does not exist: %w", bucket, key, err)
		}
		return 0, fmt.Errorf("failed to open gs://%s/%s: %w", bucket, key, err)
	}
	defer reader.Close()

	n, err := io.Copy(io.NewOffsetWriter(w, 0), reader)
	if err != nil {
		return n, fmt.Errorf("failed to read gs://%s/%s: %w", bucket, key, err)
	}

	return n, nil
}
