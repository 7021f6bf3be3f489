package router

import (
	"log/slog"
	"net/http"

	"drivefiles/internal/delivery/http/handler"
	"drivefiles/internal/delivery/http/middleware"
)

// Handlers holds all HTTP handlers
type Handlers struct {
	Drive *handler.DriveHandler
}

// Options configures the shared middleware
type Options struct {
	AllowedOrigins []string
	FallbackToken  string
	Logger         *slog.Logger
}

// Setup configures all routes for the application
func Setup(handlers Handlers, opts Options) *http.ServeMux {
	mux := http.NewServeMux()

	logged := middleware.RequestLogger(opts.Logger)
	cors := middleware.CORS(middleware.CORSConfig{AllowedOrigins: opts.AllowedOrigins})
	credential := middleware.Credential(opts.FallbackToken)

	// Chain helper
	chain := func(h http.HandlerFunc, middlewares ...func(http.HandlerFunc) http.HandlerFunc) http.HandlerFunc {
		for i := len(middlewares) - 1; i >= 0; i-- {
			h = middlewares[i](h)
		}
		return h
	}

	mux.HandleFunc("/api/health", chain(handler.Health, logged, cors))

	// ==================
	// Drive routes (credential required)
	// ==================
	mux.HandleFunc("/api/drive/files", chain(handlers.Drive.List, logged, cors, credential))
	mux.HandleFunc("/api/drive/file", chain(handlers.Drive.Get, logged, cors, credential))
	mux.HandleFunc("/api/drive/folders", chain(handlers.Drive.CreateFolder, logged, cors, credential))
	mux.HandleFunc("/api/drive/text", chain(handlers.Drive.TextFile, logged, cors, credential))
	mux.HandleFunc("/api/drive/export", chain(handlers.Drive.Export, logged, cors, credential))
	mux.HandleFunc("/api/drive/delete", chain(handlers.Drive.Delete, logged, cors, credential))

	return mux
}
