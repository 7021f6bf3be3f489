package middleware

import (
	"context"
	"net/http"
	"strings"

	"drivefiles/internal/delivery/http/handler"
)

// Credential resolves the Drive bearer token for the request. The caller's
// own token takes precedence over the server-wide fallback. A request whose
// Authorization header is unusable never falls back; requests with no
// credential at all are rejected.
func Credential(fallback string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token, ok := extractToken(r)
			if !ok {
				handler.SendError(w, "Unsupported authorization", http.StatusUnauthorized)
				return
			}
			if token == "" {
				token = fallback
			}
			if token == "" {
				handler.SendError(w, "Authorization required", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), handler.TokenContextKey, token)
			next(w, r.WithContext(ctx))
		}
	}
}

// extractToken returns the caller's bearer token, if any. ok is false when
// an Authorization header is present but carries no bearer token.
func extractToken(r *http.Request) (token string, ok bool) {
	if authHeader := strings.TrimSpace(r.Header.Get("Authorization")); authHeader != "" {
		scheme, credential, _ := strings.Cut(authHeader, " ")
		credential = strings.TrimSpace(credential)
		if !strings.EqualFold(scheme, "Bearer") || credential == "" {
			return "", false
		}
		return credential, true
	}

	// Query parameter, for export links opened directly in a browser
	return r.URL.Query().Get("token"), true
}
