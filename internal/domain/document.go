package domain

import (
	"time"

	"github.com/google/uuid"
)

// Document is the metadata of an uploaded file. The bytes live in the blob
// store under StorageKey.
type Document struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Title          string
	Type           DocumentType
	FileName       string
	ContentType    string
	SizeBytes      int64
	StorageKey     string
	ContentPreview *string
	CreatedAt      time.Time
}
