package file

import (
	"context"

	"github.com/google/uuid"
)

// Repository lookups are always scoped by the owner's id: a file belonging
// to another user is indistinguishable from a non-existent one.
type Repository interface {
	FetchFiles(ctx context.Context, ownerID string) (Files, error)
	FetchFileByID(ctx context.Context, ownerID string, id uuid.UUID) (*File, error)
	FetchFileByKey(ctx context.Context, ownerID string, key string) (*File, error)
	DeleteFile(ctx context.Context, ownerID string, id uuid.UUID) (*File, error)

	CreateFile(ctx context.Context, req *File) (*File, error)
	UpdateUploadStatus(ctx context.Context, key string, status UploadStatus) (*File, error)
}
