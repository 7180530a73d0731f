package document

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/jvedigdev/ai-job-ace/internal/domain"
	"github.com/jvedigdev/ai-job-ace/pkg/ctxutil"
)

// Upload stores the file in the blob store, then records its metadata.
// If the metadata insert fails the blob is removed again.
func (s *Service) Upload(ctx context.Context, input UploadInput) (*domain.Document, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	docID := uuid.New()
	fileName := strings.TrimSpace(input.FileName)
	key := userID.String() + "/" + docID.String() + "/" + storedName(fileName)

	head := &headBuffer{n: previewBytes}
	body := io.TeeReader(io.LimitReader(input.Body, s.maxBytes+1), head)

	size, err := s.blobs.Put(ctx, key, body)
	if err != nil {
		return nil, fmt.Errorf("store blob: %w", err)
	}
	if size > s.maxBytes {
		s.removeBlob(ctx, key)
		return nil, fmt.Errorf("file exceeds %d bytes: %w", s.maxBytes, domain.ErrTooLarge)
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = fileName
	}
	docType := domain.DocumentTypeOther
	if input.Type != "" {
		docType = domain.DocumentType(input.Type)
	}
	contentType := resolveContentType(input.ContentType, head.buf)

	doc, err := s.docs.Create(ctx, &domain.Document{
		ID:             docID,
		UserID:         userID,
		Title:          title,
		Type:           docType,
		FileName:       fileName,
		ContentType:    contentType,
		SizeBytes:      size,
		StorageKey:     key,
		ContentPreview: textPreview(contentType, head.buf),
		CreatedAt:      s.now().UTC(),
	})
	if err != nil {
		s.removeBlob(ctx, key)
		return nil, fmt.Errorf("create document: %w", err)
	}

	s.log.InfoContext(ctx, "document uploaded",
		slog.String("user_id", userID.String()),
		slog.String("document_id", doc.ID.String()),
		slog.String("type", doc.Type.String()),
		slog.Int64("size_bytes", size),
	)

	return doc, nil
}

// removeBlob is best effort; an orphaned blob is logged, not returned.
func (s *Service) removeBlob(ctx context.Context, key string) {
	if err := s.blobs.Delete(context.WithoutCancel(ctx), key); err != nil {
		s.log.ErrorContext(ctx, "remove orphaned blob",
			slog.String("storage_key", key),
			slog.String("error", err.Error()),
		)
	}
}
