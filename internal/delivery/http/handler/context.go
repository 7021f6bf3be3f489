package handler

import "context"

// contextKey is the type for context keys
type contextKey string

const (
	// TokenContextKey is the key used to store the Drive bearer token in context
	TokenContextKey contextKey = "driveToken"
	// RequestIDContextKey is the key used to store the request id in context
	RequestIDContextKey contextKey = "requestID"
)

// GetTokenFromContext retrieves the Drive bearer token from request context
func GetTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(TokenContextKey).(string)
	return token
}

// GetRequestIDFromContext retrieves the request id from request context
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDContextKey).(string)
	return id
}
