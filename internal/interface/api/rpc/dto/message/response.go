package message

import (
	"time"

	"github.com/google/uuid"
)

type (
	Message struct {
		ID            uuid.UUID `json:"id"`
		Text          string    `json:"text"`
		IsUserMessage bool      `json:"isUserMessage"`
		CreatedAt     time.Time `json:"createdAt"`
	}
	Messages []Message

	// Page mirrors the paged listing result: an absent nextCursor signals
	// the end of the sequence.
	Page struct {
		Messages   Messages   `json:"messages"`
		NextCursor *uuid.UUID `json:"nextCursor,omitempty"`
	}
)
