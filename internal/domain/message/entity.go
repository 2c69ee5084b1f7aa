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

	// Page is one window of a file's chat history. NextCursor names the
	// last returned message; nil means the sequence is exhausted.
	Page struct {
		Messages   Messages
		NextCursor *uuid.UUID
	}
)
