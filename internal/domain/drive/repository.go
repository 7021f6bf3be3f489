package drive

import "context"

// Repository defines the contract for remote file store operations.
// A failed operation returns the zero result and an error; it never
// returns a partial result.
type Repository interface {
	List(ctx context.Context, dirID string) ([]FileResource, error)
	GetMetadata(ctx context.Context, id string) (*FileResource, error)
	CreateDirectory(ctx context.Context, name, parentID string) (*FileResource, error)
	CreateTextFile(ctx context.Context, name, parentID, contents string) (*FileResource, error)
	UpdateTextFile(ctx context.Context, id, contents string) (*FileResource, error)
	ExportTextFile(ctx context.Context, id string) (string, error)
	Delete(ctx context.Context, id string) (string, error)
}
