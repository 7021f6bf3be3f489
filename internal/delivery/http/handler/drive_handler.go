package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	driveService "drivefiles/internal/application/drive"
	domain "drivefiles/internal/domain/drive"
)

// ServiceFactory builds a drive service bound to one bearer token
type ServiceFactory func(token string) (driveService.Service, error)

type DriveHandler struct {
	newService    ServiceFactory
	maxUploadSize int64
	logger        *slog.Logger
}

func NewDriveHandler(newService ServiceFactory, maxUploadSize int64, logger *slog.Logger) *DriveHandler {
	return &DriveHandler{
		newService:    newService,
		maxUploadSize: maxUploadSize,
		logger:        logger,
	}
}

// service resolves the drive service for the caller's credential,
// writing the error response itself when that fails.
func (h *DriveHandler) service(w http.ResponseWriter, r *http.Request) (driveService.Service, bool) {
	token := GetTokenFromContext(r.Context())
	if token == "" {
		SendError(w, "Authorization required", http.StatusUnauthorized)
		return nil, false
	}

	svc, err := h.newService(token)
	if err != nil {
		h.logger.Error("init drive client", "request_id", GetRequestIDFromContext(r.Context()), "error", err)
		SendError(w, "Failed to initialise Google Drive client", http.StatusInternalServerError)
		return nil, false
	}
	return svc, true
}

func (h *DriveHandler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			SendError(w, "Request body too large", http.StatusRequestEntityTooLarge)
			return false
		}
		SendError(w, "Invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

// List handles GET /api/drive/files?folderId=...
func (h *DriveHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	svc, ok := h.service(w, r)
	if !ok {
		return
	}

	files, err := svc.ListFiles(r.Context(), r.URL.Query().Get("folderId"))
	if err != nil {
		SendDriveError(w, err)
		return
	}

	SendSuccess(w, "", files)
}

// Get handles GET /api/drive/file?id=...
func (h *DriveHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	svc, ok := h.service(w, r)
	if !ok {
		return
	}

	file, err := svc.GetFile(r.Context(), r.URL.Query().Get("id"))
	if err != nil {
		SendDriveError(w, err)
		return
	}

	SendSuccess(w, "", file)
}

// CreateFolder handles POST /api/drive/folders
func (h *DriveHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	svc, ok := h.service(w, r)
	if !ok {
		return
	}

	var req domain.CreateFolderRequest
	if !h.decode(w, r, &req) {
		return
	}

	folder, err := svc.CreateFolder(r.Context(), req)
	if err != nil {
		SendDriveError(w, err)
		return
	}

	SendSuccess(w, "Folder created", folder)
}

// TextFile handles POST (create) and PUT (replace contents) on /api/drive/text
func (h *DriveHandler) TextFile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost && r.Method != http.MethodPut {
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	svc, ok := h.service(w, r)
	if !ok {
		return
	}

	if r.Method == http.MethodPut {
		var req domain.UpdateTextFileRequest
		if !h.decode(w, r, &req) {
			return
		}
		file, err := svc.UpdateTextFile(r.Context(), req)
		if err != nil {
			SendDriveError(w, err)
			return
		}
		SendSuccess(w, "File updated", file)
		return
	}

	var req domain.CreateTextFileRequest
	if !h.decode(w, r, &req) {
		return
	}
	file, err := svc.CreateTextFile(r.Context(), req)
	if err != nil {
		SendDriveError(w, err)
		return
	}
	SendSuccess(w, "File created", file)
}

// Export handles GET /api/drive/export?id=... and streams the text/plain export
func (h *DriveHandler) Export(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	svc, ok := h.service(w, r)
	if !ok {
		return
	}

	text, err := svc.ExportText(r.Context(), r.URL.Query().Get("id"))
	if err != nil {
		SendDriveError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(text))
}

// Delete handles DELETE /api/drive/delete?id=...
func (h *DriveHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	svc, ok := h.service(w, r)
	if !ok {
		return
	}

	if err := svc.Delete(r.Context(), r.URL.Query().Get("id")); err != nil {
		SendDriveError(w, err)
		return
	}

	SendSuccess(w, "Deleted successfully", nil)
}

// Health handles GET /api/health
func Health(w http.ResponseWriter, r *http.Request) {
	SendSuccess(w, "ok", nil)
}
