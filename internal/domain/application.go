package domain

import (
	"time"

	"github.com/google/uuid"
)

// Application is a job application tracked by a user.
type Application struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Company   string
	Role      string
	JobURL    *string
	Notes     *string
	Status    ApplicationStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
