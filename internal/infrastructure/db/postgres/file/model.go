package file

import (
	"time"

	"github.com/google/uuid"
)

type (
	File struct {
		ID      uuid.UUID
		OwnerID string

		Key          string
		Name         string
		URL          string
		UploadStatus string
		MessageCount int64

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Files []*File
)
