package file

import (
	"time"

	"github.com/google/uuid"
)

// UploadStatus tracks a file through the external upload pipeline.
type UploadStatus string

const (
	StatusPending    UploadStatus = "PENDING"
	StatusProcessing UploadStatus = "PROCESSING"
	StatusSuccess    UploadStatus = "SUCCESS"
	StatusFailed     UploadStatus = "FAILED"
)

// ParseUploadStatus returns the matching status or false for unknown input.
func ParseUploadStatus(s string) (UploadStatus, bool) {
	switch UploadStatus(s) {
	case StatusPending, StatusProcessing, StatusSuccess, StatusFailed:
		return UploadStatus(s), true
	}
	return "", false
}

type (
	File struct {
		ID      uuid.UUID
		OwnerID string

		Key          string
		Name         string
		URL          string
		UploadStatus UploadStatus

		// MessageCount is a derived aggregate, filled only by listing
		// queries. It is never stored.
		MessageCount int64

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Files []*File
)
