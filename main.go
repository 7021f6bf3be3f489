package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	driveService "drivefiles/internal/application/drive"
	"drivefiles/internal/delivery/http/handler"
	"drivefiles/internal/delivery/http/router"
	"drivefiles/internal/infrastructure/config"
	"drivefiles/internal/infrastructure/googledrive"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger := newLogger(cfg.LogLevel)

	// Resolve the server-wide credential, if any
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	fallbackToken, err := googledrive.AccessToken(ctx, cfg)
	cancel()
	if err != nil {
		logger.Error("failed to obtain Google Drive access token", "error", err)
		os.Exit(1)
	}

	// One HTTP client shared by every per-request drive client
	driveHTTP := &http.Client{
		Transport: http.DefaultTransport.(*http.Transport).Clone(),
		Timeout:   time.Duration(cfg.DriveTimeoutSeconds) * time.Second,
	}
	newService := func(token string) (driveService.Service, error) {
		client, err := googledrive.New(token,
			googledrive.WithBaseURLs(cfg.DriveMetadataURL, cfg.DriveUploadURL),
			googledrive.WithHTTPClient(driveHTTP),
			googledrive.WithLogger(logger),
		)
		if err != nil {
			return nil, err
		}
		return driveService.NewService(client), nil
	}

	// Setup routes
	handlers := router.Handlers{
		Drive: handler.NewDriveHandler(newService, cfg.MaxUploadSize, logger),
	}
	mux := router.Setup(handlers, router.Options{
		AllowedOrigins: []string{cfg.FrontendURL},
		FallbackToken:  fallbackToken,
		Logger:         logger,
	})

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("drivefiles server starting",
		"addr", "http://localhost"+addr,
		"metadata_url", cfg.DriveMetadataURL,
		"upload_url", cfg.DriveUploadURL,
		"server_credential", fallbackToken != "",
	)
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
