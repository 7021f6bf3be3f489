package drive

import (
	"context"
	"strings"

	domain "drivefiles/internal/domain/drive"
)

// Service defines the business logic for remote file operations
type Service interface {
	ListFiles(ctx context.Context, folderID string) ([]domain.FileResource, error)
	GetFile(ctx context.Context, id string) (*domain.FileResource, error)
	CreateFolder(ctx context.Context, req domain.CreateFolderRequest) (*domain.FileResource, error)
	CreateTextFile(ctx context.Context, req domain.CreateTextFileRequest) (*domain.FileResource, error)
	UpdateTextFile(ctx context.Context, req domain.UpdateTextFileRequest) (*domain.FileResource, error)
	ExportText(ctx context.Context, id string) (string, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo domain.Repository
}

// NewService creates a new drive service
func NewService(repo domain.Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListFiles(ctx context.Context, folderID string) ([]domain.FileResource, error) {
	folderID = strings.TrimSpace(folderID)
	// The id is embedded in the q filter; an empty id lists without one
	if folderID != "" && !validID(folderID) {
		return nil, domain.ErrInvalidID
	}
	return s.repo.List(ctx, folderID)
}

func (s *service) GetFile(ctx context.Context, id string) (*domain.FileResource, error) {
	if !validID(id) {
		return nil, domain.ErrInvalidID
	}
	return s.repo.GetMetadata(ctx, id)
}

func (s *service) CreateFolder(ctx context.Context, req domain.CreateFolderRequest) (*domain.FileResource, error) {
	if !validName(req.Name) {
		return nil, domain.ErrInvalidName
	}
	return s.repo.CreateDirectory(ctx, req.Name, parentOrRoot(req.ParentID))
}

func (s *service) CreateTextFile(ctx context.Context, req domain.CreateTextFileRequest) (*domain.FileResource, error) {
	if !validName(req.Name) {
		return nil, domain.ErrInvalidName
	}
	return s.repo.CreateTextFile(ctx, req.Name, parentOrRoot(req.ParentID), req.Contents)
}

func (s *service) UpdateTextFile(ctx context.Context, req domain.UpdateTextFileRequest) (*domain.FileResource, error) {
	if !validID(req.ID) {
		return nil, domain.ErrInvalidID
	}
	return s.repo.UpdateTextFile(ctx, req.ID, req.Contents)
}

func (s *service) ExportText(ctx context.Context, id string) (string, error) {
	if !validID(id) {
		return "", domain.ErrInvalidID
	}
	return s.repo.ExportTextFile(ctx, id)
}

func (s *service) Delete(ctx context.Context, id string) error {
	// Deleting the root folder is never a legitimate request
	if !validID(id) || id == domain.RootID {
		return domain.ErrInvalidID
	}
	_, err := s.repo.Delete(ctx, id)
	return err
}

func parentOrRoot(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.RootID
	}
	return id
}

// validID rejects blank ids and ids that would escape the resource path
func validID(id string) bool {
	id = strings.TrimSpace(id)
	return id != "" && !strings.ContainsAny(id, "/'")
}

func validName(name string) bool {
	return strings.TrimSpace(name) != ""
}
