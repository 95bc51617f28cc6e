package config

import (
	"path/filepath"
	"runtime"
	"testing"

	"go.uber.org/zap/zaptest"

	"command-reset/pkg/aws/s3"
)

const (
	// Values held by testdata/config.json
	MockBotToken      = "MTIzNDU2Nzg5MDEyMzQ1Njc4.GhIjKl.abcdefghijklmnopqrstuvwxyz0123456789AB"
	MockTokenAppID    = "123456789012345678"
	MockApplicationID = "987654321098765432"
)

// NewTestConfig returns a config reading its record from configPath, with a
// test logger and without touching the process environment.
func NewTestConfig(t *testing.T, configPath string) *Config {
	cfg := New()
	cfg.Logger = zaptest.NewLogger(t)
	cfg.ConfigPath = configPath
	return cfg
}

// WithS3Client swaps the client used for s3:// config paths.
func (c *Config) WithS3Client(client s3.ClientIFace) *Config {
	c.s3Client = client
	return c
}

// TestdataPath resolves a file in this package's testdata so any package's
// tests can load it.
func TestdataPath(name string) string {
	_, b, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(b), "testdata", name)
}
