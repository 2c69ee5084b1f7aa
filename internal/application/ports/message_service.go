package ports

import (
	"context"

	"github.com/google/uuid"

	"docchat-api/internal/domain/message"
)

type MessageService interface {
	// FindFileMessages pages the file's chat history newest first.
	// A nil page means the caller owns no file with that id.
	FindFileMessages(ctx context.Context, ownerID string, fileID uuid.UUID, limit int, cursor *uuid.UUID) (*message.Page, error)
}
