package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Profile is the local copy of a user account owned by the identity provider.
// It is written only by the identity sync webhook; user-facing flows read it.
type Profile struct {
	ID             uuid.UUID
	ExternalUserID string
	Email          string
	FirstName      *string
	LastName       *string
	AvatarURL      *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DisplayName joins the known name parts, falling back to the email address.
func (p Profile) DisplayName() string {
	var parts []string
	if p.FirstName != nil && *p.FirstName != "" {
		parts = append(parts, *p.FirstName)
	}
	if p.LastName != nil && *p.LastName != "" {
		parts = append(parts, *p.LastName)
	}
	if len(parts) == 0 {
		return p.Email
	}
	return strings.Join(parts, " ")
}
