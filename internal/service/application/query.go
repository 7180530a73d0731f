package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jvedigdev/ai-job-ace/internal/domain"
	"github.com/jvedigdev/ai-job-ace/pkg/ctxutil"
)

// ListResult is one page of applications and the total match count.
type ListResult struct {
	Items []*domain.Application
	Total int
}

// List returns the authenticated user's applications, newest first.
func (s *Service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := domain.ApplicationFilter{
		Page: domain.Page{Limit: input.Limit, Offset: input.Offset},
	}
	if q := strings.TrimSpace(input.Query); q != "" {
		filter.Search = &q
	}
	if input.Status != "" {
		st := domain.ApplicationStatus(input.Status)
		filter.Status = &st
	}

	items, total, err := s.apps.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}

	return &ListResult{Items: items, Total: total}, nil
}

// Get returns one application of the authenticated user.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	app, err := s.apps.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get application: %w", err)
	}
	return app, nil
}

// Delete removes one application of the authenticated user.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.apps.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete application: %w", err)
	}

	s.log.InfoContext(ctx, "application deleted",
		"user_id", userID.String(),
		"application_id", id.String(),
	)
	return nil
}
