package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "DRIVE_METADATA_URL", "DRIVE_UPLOAD_URL", "DRIVE_TIMEOUT_SECONDS",
		"DRIVE_ACCESS_TOKEN", "LOG_LEVEL", "MAX_UPLOAD_SIZE", "GOOGLE_CLIENT_ID", "GOOGLE_REFRESH_TOKEN",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8005", cfg.Port)
	assert.Equal(t, "https://www.googleapis.com/drive/v3/files/", cfg.DriveMetadataURL)
	assert.Equal(t, "https://www.googleapis.com/upload/drive/v3/files/", cfg.DriveUploadURL)
	assert.Equal(t, 30, cfg.DriveTimeoutSeconds)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadSize)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.DriveAccessToken)
	assert.False(t, cfg.HasOAuth())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DRIVE_TIMEOUT_SECONDS", "5")
	t.Setenv("DRIVE_ACCESS_TOKEN", "tok")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("GOOGLE_CLIENT_ID", "client")
	t.Setenv("GOOGLE_REFRESH_TOKEN", "refresh")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 5, cfg.DriveTimeoutSeconds)
	assert.Equal(t, "tok", cfg.DriveAccessToken)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.HasOAuth())
}

func TestGetEnvAsInt64_InvalidFallsBack(t *testing.T) {
	t.Setenv("MAX_UPLOAD_SIZE", "lots")
	assert.Equal(t, int64(42), getEnvAsInt64("MAX_UPLOAD_SIZE", 42))
}
