package document

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jvedigdev/ai-job-ace/internal/domain"
)

type documentRepo interface {
	Create(ctx context.Context, d *domain.Document) (*domain.Document, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Document, error)
	Delete(ctx context.Context, userID, id uuid.UUID) (*domain.Document, error)
	List(ctx context.Context, userID uuid.UUID, f domain.DocumentFilter) ([]*domain.Document, int, error)
}

type blobStore interface {
	Put(ctx context.Context, key string, r io.Reader) (int64, error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides document upload and retrieval for the signed-in user.
type Service struct {
	docs     documentRepo
	blobs    blobStore
	tx       txManager
	log      *slog.Logger
	maxBytes int64
	now      func() time.Time
}

// NewService creates a new document service. maxUploadBytes bounds a single
// file's size.
func NewService(log *slog.Logger, docs documentRepo, blobs blobStore, tx txManager, maxUploadBytes int64) *Service {
	return &Service{
		docs:     docs,
		blobs:    blobs,
		tx:       tx,
		log:      log.With("service", "document"),
		maxBytes: maxUploadBytes,
		now:      time.Now,
	}
}
