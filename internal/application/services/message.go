package services

import (
	"context"

	"github.com/google/uuid"

	"docchat-api/internal/application/ports"
	"docchat-api/internal/domain/file"
	domain "docchat-api/internal/domain/message"
)

type MessageService struct {
	messageRepository domain.Repository
	fileRepository    file.Repository
}

func NewMessageService(
	messageRepository domain.Repository,
	fileRepository file.Repository,
) ports.MessageService {
	return &MessageService{
		messageRepository: messageRepository,
		fileRepository:    fileRepository,
	}
}

// FindFileMessages verifies ownership of the file, then fetches limit+1
// rows to detect whether another page exists without a count query. When
// the extra row shows up it is trimmed and the cursor points at the last
// returned message; the next call resumes strictly after it.
func (ms *MessageService) FindFileMessages(
	ctx context.Context,
	ownerID string,
	fileID uuid.UUID,
	limit int,
	cursor *uuid.UUID,
) (*domain.Page, error) {
	f, err := ms.fileRepository.FetchFileByID(ctx, ownerID, fileID)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, nil
	}

	msgs, err := ms.messageRepository.FetchPage(ctx, ownerID, fileID, limit+1, cursor)
	if err != nil {
		return nil, err
	}

	page := &domain.Page{Messages: msgs}
	if len(msgs) > limit {
		page.Messages = msgs[:limit]
		last := msgs[limit-1].ID
		page.NextCursor = &last
	}

	return page, nil
}
