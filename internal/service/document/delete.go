package document

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jvedigdev/ai-job-ace/internal/domain"
	"github.com/jvedigdev/ai-job-ace/pkg/ctxutil"
)

// Delete removes a document. The row is deleted in a transaction and the
// blob is removed before commit, so a blob store failure leaves the
// document listed and intact.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	var key string
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		doc, err := s.docs.Delete(txCtx, userID, id)
		if err != nil {
			return fmt.Errorf("delete document: %w", err)
		}
		key = doc.StorageKey

		if err := s.blobs.Delete(txCtx, key); err != nil {
			return fmt.Errorf("delete blob: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "document deleted",
		slog.String("user_id", userID.String()),
		slog.String("document_id", id.String()),
		slog.String("storage_key", key),
	)
	return nil
}
