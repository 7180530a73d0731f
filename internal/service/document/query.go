package document

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/jvedigdev/ai-job-ace/internal/domain"
	"github.com/jvedigdev/ai-job-ace/pkg/ctxutil"
)

// ListResult is one page of documents and the total match count.
type ListResult struct {
	Items []*domain.Document
	Total int
}

// List returns the authenticated user's documents, newest first.
func (s *Service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := domain.DocumentFilter{
		Page: domain.Page{Limit: input.Limit, Offset: input.Offset},
	}
	if q := strings.TrimSpace(input.Query); q != "" {
		filter.Search = &q
	}
	if input.Type != "" {
		dt := domain.DocumentType(input.Type)
		filter.Type = &dt
	}

	items, total, err := s.docs.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return &ListResult{Items: items, Total: total}, nil
}

// Get returns the metadata of one document.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	doc, err := s.docs.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}
	return doc, nil
}

// Open returns the document metadata and a reader over its content.
// The caller closes the reader.
func (s *Service) Open(ctx context.Context, id uuid.UUID) (*domain.Document, io.ReadCloser, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	rc, err := s.blobs.Open(ctx, doc.StorageKey)
	if err != nil {
		return nil, nil, fmt.Errorf("open document content: %w", err)
	}
	return doc, rc, nil
}
