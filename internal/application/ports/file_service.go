package ports

import (
	"context"

	"github.com/google/uuid"

	"docchat-api/internal/domain/file"
)

type FileService interface {
	FindUserFiles(ctx context.Context, ownerID string) (file.Files, error)
	FindFileByKey(ctx context.Context, ownerID string, key string) (*file.File, error)
	DeleteFile(ctx context.Context, ownerID string, id uuid.UUID) (*file.File, error)
	UploadStatus(ctx context.Context, ownerID string, id uuid.UUID) (file.UploadStatus, error)
}
