package message

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// FetchPage returns up to limit messages of the file, newest first
	// (created_at DESC, id DESC), starting strictly after the cursor row
	// when cursor is non-nil. An absent cursor row starts the sequence
	// from the top.
	FetchPage(ctx context.Context, ownerID string, fileID uuid.UUID, limit int, cursor *uuid.UUID) (Messages, error)
}
