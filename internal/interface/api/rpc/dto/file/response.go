package file

import (
	"time"

	"github.com/google/uuid"
)

type (
	File struct {
		ID           uuid.UUID `json:"id"`
		Key          string    `json:"key"`
		Name         string    `json:"name"`
		URL          string    `json:"url"`
		UploadStatus string    `json:"uploadStatus"`
		MessageCount int64     `json:"messageCount,omitempty"`
		CreatedAt    time.Time `json:"createdAt"`
	}
	Files []File
)
