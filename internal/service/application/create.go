package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/jvedigdev/ai-job-ace/internal/domain"
	"github.com/jvedigdev/ai-job-ace/pkg/ctxutil"
)

// Create stores a new application for the authenticated user.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Application, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	status := domain.ApplicationStatusDraft
	if input.Status != nil {
		status = *input.Status
	}

	now := s.now().UTC()
	app, err := s.apps.Create(ctx, &domain.Application{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     strings.TrimSpace(input.Title),
		Company:   strings.TrimSpace(input.Company),
		Role:      strings.TrimSpace(input.Role),
		JobURL:    trimOrNil(input.JobURL),
		Notes:     trimOrNil(input.Notes),
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}

	s.log.InfoContext(ctx, "application created",
		slog.String("user_id", userID.String()),
		slog.String("application_id", app.ID.String()),
		slog.String("status", app.Status.String()),
	)

	return app, nil
}
