package config

import (
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"resume-extractor/internal/gcs"
	"resume-extractor/internal/resolver"
	"resume-extractor/internal/s3"
)

// Config holds everything the API process reads from its environment.
type Config struct {
	Host             string
	Port             string
	TempDir          string
	FetchTimeout     time.Duration
	LogLevel         slog.Level
	DriveDownloadURL string

	S3        s3.S3Config
	GCS       gcs.GCSConfig
	GCSEnable bool
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// S3Enabled reports whether enough S3 settings are present to build a client.
func (c *Config) S3Enabled() bool {
	return c.S3.Region != "" && c.S3.AccessKey != "" && c.S3.SecretKey != ""
}

// Load reads the configuration from environment variables, applying defaults
// for anything unset.
func Load() (*Config, error) {

	cfg := &Config{
		Host:             getEnv("HOST", "0.0.0.0"),
		Port:             getEnv("PORT", "8000"),
		TempDir:          getEnv("TEMP_DIR", os.TempDir()),
		DriveDownloadURL: getEnv("DRIVE_DOWNLOAD_URL", resolver.DefaultDriveDownloadURL),
		S3: s3.S3Config{
			EndpointURL: os.Getenv("S3_ENDPOINT_URL"),
			Region:      os.Getenv("S3_REGION"),
			AccessKey:   os.Getenv("S3_ACCESS_KEY"),
			SecretKey:   os.Getenv("S3_SECRET_KEY"),
		},
		GCS: gcs.GCSConfig{
			Endpoint: os.Getenv("GCS_ENDPOINT"),
		},
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return nil, fmt.Errorf("PORT must be numeric, got %q", cfg.Port)
	}

	timeout, err := time.ParseDuration(getEnv("FETCH_TIMEOUT", "2m"))
	if err != nil {
		return nil, fmt.Errorf("invalid FETCH_TIMEOUT: %w", err)
	}
	if timeout < 0 {
		return nil, fmt.Errorf("FETCH_TIMEOUT must not be negative, got %s", timeout)
	}
	cfg.FetchTimeout = timeout

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	if cfg.GCSEnable, err = getBool("GCS_ENABLED"); err != nil {
		return nil, err
	}
	if cfg.GCS.Anonymous, err = getBool("GCS_ANONYMOUS"); err != nil {
		return nil, err
	}

	info, err := os.Stat(cfg.TempDir)
	if err != nil {
		return nil, fmt.Errorf("TEMP_DIR %s is not usable: %w", cfg.TempDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("TEMP_DIR %s is not a directory", cfg.TempDir)
	}

	return cfg, nil
}

// getEnv reads an environment variable or returns a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func getBool(key string) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
