package application

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jvedigdev/ai-job-ace/internal/domain"
)

type applicationRepo interface {
	Create(ctx context.Context, a *domain.Application) (*domain.Application, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Application, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, f domain.ApplicationFilter) ([]*domain.Application, int, error)
}

// Service provides job application operations for the signed-in user.
type Service struct {
	apps applicationRepo
	log  *slog.Logger
	now  func() time.Time
}

// NewService creates a new application service.
func NewService(log *slog.Logger, apps applicationRepo) *Service {
	return &Service{
		apps: apps,
		log:  log.With("service", "application"),
		now:  time.Now,
	}
}
