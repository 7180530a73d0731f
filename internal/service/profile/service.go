// Package profile resolves session tokens to local profiles.
package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jvedigdev/ai-job-ace/internal/domain"
	"github.com/jvedigdev/ai-job-ace/pkg/ctxutil"
)

// tokenVerifier checks a bearer token and returns the external user id.
type tokenVerifier interface {
	Verify(token string) (string, error)
}

// profileRepo defines the profile reads needed by this service.
type profileRepo interface {
	GetByExternalID(ctx context.Context, externalUserID string) (*domain.Profile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
}

// Service implements session resolution and profile reads.
type Service struct {
	log      *slog.Logger
	verifier tokenVerifier
	profiles profileRepo
}

// NewService creates a new profile service instance.
func NewService(logger *slog.Logger, verifier tokenVerifier, profiles profileRepo) *Service {
	return &Service{
		log:      logger.With("service", "profile"),
		verifier: verifier,
		profiles: profiles,
	}
}

// ValidateToken verifies a bearer token and returns the id of the local
// profile it belongs to. A valid token whose user has not been synchronized
// by the webhook yet is unauthorized.
func (s *Service) ValidateToken(ctx context.Context, token string) (uuid.UUID, error) {
	externalID, err := s.verifier.Verify(token)
	if err != nil {
		return uuid.Nil, err
	}

	p, err := s.profiles.GetByExternalID(ctx, externalID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "session for unsynchronized user",
				slog.String("external_user_id", externalID))
			return uuid.Nil, fmt.Errorf("profile not synchronized: %w", domain.ErrUnauthorized)
		}
		return uuid.Nil, fmt.Errorf("profile.ValidateToken: %w", err)
	}

	return p.ID, nil
}

// Current returns the authenticated user's profile.
// Returns ErrUnauthorized if no user id is found in context.
func (s *Service) Current(ctx context.Context) (*domain.Profile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Deleted by the webhook while the session was still valid.
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("profile.Current: %w", err)
	}

	return p, nil
}
