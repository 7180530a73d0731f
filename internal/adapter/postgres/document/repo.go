// Package document implements the Document metadata repository using PostgreSQL.
// File contents are not stored here; StorageKey points into the blob store.
package document

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/jvedigdev/ai-job-ace/internal/adapter/postgres"
	"github.com/jvedigdev/ai-job-ace/internal/domain"
)

// Repo provides document metadata persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new document repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const table = "documents"

var columns = []string{
	"id", "user_id", "title", "doc_type", "file_name", "content_type",
	"size_bytes", "storage_key", "content_preview", "created_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Create inserts document metadata.
func (r *Repo) Create(ctx context.Context, d *domain.Document) (*domain.Document, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(d.ID, d.UserID, d.Title, string(d.Type), d.FileName, d.ContentType,
			d.SizeBytes, d.StorageKey, d.ContentPreview, d.CreatedAt).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert document: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	out, err := scanDocument(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "document", d.ID.String())
	}
	return out, nil
}

// GetByID returns a document owned by userID.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Document, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get document: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	out, err := scanDocument(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "document", id.String())
	}
	return out, nil
}

// Delete removes a document owned by userID and returns the deleted row so
// the caller can remove its blob.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) (*domain.Document, error) {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build delete document: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	out, err := scanDocument(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "document", id.String())
	}
	return out, nil
}

// List returns one page of the user's documents, newest first, plus the
// total count. Search matches title and content_preview.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, f domain.DocumentFilter) ([]*domain.Document, int, error) {
	f.Normalize()

	where := squirrel.And{squirrel.Eq{"user_id": userID}}
	if f.Search != nil && *f.Search != "" {
		where = append(where, postgres.ILikeAny(postgres.ContainsPattern(*f.Search), "title", "content_preview"))
	}
	if f.Type != nil {
		where = append(where, squirrel.Eq{"doc_type": string(*f.Type)})
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	countSQL, countArgs, err := postgres.Builder().Select("count(*)").From(table).Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count documents: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count documents: %w", err)
	}

	listSQL, listArgs, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list documents: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.Document, 0, f.Limit)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("list documents: %w", err)
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list documents: %w", err)
	}

	return items, total, nil
}

func scanDocument(row pgx.Row) (*domain.Document, error) {
	var (
		d       domain.Document
		docType string
	)
	if err := row.Scan(
		&d.ID, &d.UserID, &d.Title, &docType, &d.FileName, &d.ContentType,
		&d.SizeBytes, &d.StorageKey, &d.ContentPreview, &d.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("scan document: %w", err)
	}
	d.Type = domain.DocumentType(docType)
	return &d, nil
}
