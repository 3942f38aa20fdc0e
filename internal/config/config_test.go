package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"resume-extractor/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"HOST", "PORT", "TEMP_DIR", "FETCH_TIMEOUT", "LOG_LEVEL", "DRIVE_DOWNLOAD_URL",
	"S3_ENDPOINT_URL", "S3_REGION", "S3_ACCESS_KEY", "S3_SECRET_KEY",
	"GCS_ENABLED", "GCS_ENDPOINT", "GCS_ANONYMOUS",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8000", cfg.Addr())
	assert.Equal(t, os.TempDir(), cfg.TempDir)
	assert.Equal(t, 2*time.Minute, cfg.FetchTimeout)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "https://drive.google.com/uc", cfg.DriveDownloadURL)
	assert.False(t, cfg.S3Enabled())
	assert.False(t, cfg.GCSEnable)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "9090")
	t.Setenv("TEMP_DIR", dir)
	t.Setenv("FETCH_TIMEOUT", "0")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("S3_REGION", "us-east-1")
	t.Setenv("S3_ACCESS_KEY", "minio")
	t.Setenv("S3_SECRET_KEY", "minio123")
	t.Setenv("S3_ENDPOINT_URL", "http://localhost:9000")
	t.Setenv("GCS_ENABLED", "true")
	t.Setenv("GCS_ANONYMOUS", "1")
	t.Setenv("GCS_ENDPOINT", "http://localhost:4443/storage/v1/")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Addr())
	assert.Equal(t, dir, cfg.TempDir)
	assert.Equal(t, time.Duration(0), cfg.FetchTimeout)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.True(t, cfg.S3Enabled())
	assert.Equal(t, "http://localhost:9000", cfg.S3.EndpointURL)
	assert.True(t, cfg.GCSEnable)
	assert.True(t, cfg.GCS.Anonymous)
	assert.Equal(t, "http://localhost:4443/storage/v1/", cfg.GCS.Endpoint)
}

func TestLoadInvalid(t *testing.T) {

	notADir := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(notADir, nil, 0o644))

	testCases := []struct {
		name  string
		key   string
		value string
	}{
		{name: "port", key: "PORT", value: "http"},
		{name: "timeout", key: "FETCH_TIMEOUT", value: "soon"},
		{name: "negative timeout", key: "FETCH_TIMEOUT", value: "-1s"},
		{name: "log level", key: "LOG_LEVEL", value: "loud"},
		{name: "gcs flag", key: "GCS_ENABLED", value: "maybe"},
		{name: "missing temp dir", key: "TEMP_DIR", value: filepath.Join(t.TempDir(), "nope")},
		{name: "temp dir is a file", key: "TEMP_DIR", value: notADir},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.value)

			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}
