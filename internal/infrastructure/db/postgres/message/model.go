package message

import (
	"time"

	"github.com/google/uuid"
)

type (
	Message struct {
		ID      uuid.UUID
		FileID  uuid.UUID
		OwnerID string

		Text          string
		IsUserMessage bool

		CreatedAt time.Time
	}
	Messages []*Message
)
