package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jvedigdev/ai-job-ace/internal/domain"
)

type profileService interface {
	Current(ctx context.Context) (*domain.Profile, error)
}

// MeHandler serves the current user's profile.
type MeHandler struct {
	svc profileService
	log *slog.Logger
}

// NewMeHandler creates a MeHandler.
func NewMeHandler(svc profileService, logger *slog.Logger) *MeHandler {
	return &MeHandler{svc: svc, log: logger.With("handler", "me")}
}

type profileResponse struct {
	ID             string    `json:"id"`
	ExternalUserID string    `json:"externalUserId"`
	Email          string    `json:"email"`
	FirstName      *string   `json:"firstName"`
	LastName       *string   `json:"lastName"`
	AvatarURL      *string   `json:"avatarUrl"`
	DisplayName    string    `json:"displayName"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Get handles GET /api/me.
func (h *MeHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Current(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, profileResponse{
		ID:             p.ID.String(),
		ExternalUserID: p.ExternalUserID,
		Email:          p.Email,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		AvatarURL:      p.AvatarURL,
		DisplayName:    p.DisplayName(),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	})
}
