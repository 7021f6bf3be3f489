package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env file if it exists (ignores error if not found)
	godotenv.Load()
}

type Config struct {
	Port          string
	FrontendURL   string
	MaxUploadSize int64
	LogLevel      string

	// Drive API
	DriveMetadataURL    string
	DriveUploadURL      string
	DriveTimeoutSeconds int
	DriveAccessToken    string

	// Google OAuth, used to mint an access token from a refresh token
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRefreshToken string
	GoogleTokenURL     string
}

func Load() *Config {
	return &Config{
		Port:                getEnv("PORT", "8005"),
		FrontendURL:         getEnv("FRONTEND_URL", "http://localhost:5173"),
		MaxUploadSize:       getEnvAsInt64("MAX_UPLOAD_SIZE", 10<<20), // 10MB default
		LogLevel:            strings.ToLower(getEnv("LOG_LEVEL", "info")),
		DriveMetadataURL:    getEnv("DRIVE_METADATA_URL", "https://www.googleapis.com/drive/v3/files/"),
		DriveUploadURL:      getEnv("DRIVE_UPLOAD_URL", "https://www.googleapis.com/upload/drive/v3/files/"),
		DriveTimeoutSeconds: int(getEnvAsInt64("DRIVE_TIMEOUT_SECONDS", 30)),
		DriveAccessToken:    getEnv("DRIVE_ACCESS_TOKEN", ""),
		GoogleClientID:      getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret:  getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRefreshToken:  getEnv("GOOGLE_REFRESH_TOKEN", ""),
		GoogleTokenURL:      getEnv("GOOGLE_TOKEN_URL", ""),
	}
}

// HasOAuth reports whether a refresh token flow is configured
func (c *Config) HasOAuth() bool {
	return c.GoogleClientID != "" && c.GoogleRefreshToken != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}
