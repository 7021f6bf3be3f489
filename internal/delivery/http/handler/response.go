package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	domain "drivefiles/internal/domain/drive"
)

// Response represents a standard API response
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// SendJSON sends a JSON response
func SendJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// SendSuccess sends a successful JSON response
func SendSuccess(w http.ResponseWriter, message string, data any) {
	SendJSON(w, http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// SendError sends an error JSON response
func SendError(w http.ResponseWriter, message string, statusCode int) {
	SendJSON(w, statusCode, Response{
		Success: false,
		Message: message,
	})
}

// SendDriveError maps a drive operation error onto an HTTP response.
// Remote 4xx/5xx statuses are passed through with the remote message.
func SendDriveError(w http.ResponseWriter, err error) {
	var reqErr *domain.RequestError
	switch {
	case errors.Is(err, domain.ErrInvalidID):
		SendError(w, "Invalid resource id", http.StatusBadRequest)
	case errors.Is(err, domain.ErrInvalidName):
		SendError(w, "Name is required", http.StatusBadRequest)
	case errors.Is(err, domain.ErrInvalidContents):
		SendError(w, "Contents may not contain the multipart boundary", http.StatusBadRequest)
	case errors.Is(err, domain.ErrTransport):
		SendError(w, "Google Drive unreachable", http.StatusBadGateway)
	case errors.As(err, &reqErr):
		status := reqErr.Status
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		SendError(w, reqErr.Message, status)
	case errors.Is(err, domain.ErrMalformedResponse):
		SendError(w, "Unexpected response from Google Drive", http.StatusBadGateway)
	default:
		SendError(w, "Drive operation failed", http.StatusInternalServerError)
	}
}
