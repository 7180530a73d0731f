// Package application implements the job Application repository using PostgreSQL.
// Every query is scoped by the owning profile id.
package application

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

// Repo provides application persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new application repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var columns = []string{
	"id", "user_id", "title", "company", "role", "job_url", "notes", "status", "created_at", "updated_at",
}

const table = "applications"

// Create inserts a new application and returns the persisted row.
func (r *Repo) Create(ctx context.Context, a *domain.Application) (*domain.Application, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(a.ID, a.UserID, a.Title, a.Company, a.Role, a.JobURL, a.Notes, string(a.Status), a.CreatedAt, a.UpdatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert application: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	out, err := scanApplication(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "application", a.ID.String())
	}
	return out, nil
}

// GetByID returns an application owned by userID.
// Returns domain.ErrNotFound for missing rows and rows of other users alike.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Application, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get application: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	out, err := scanApplication(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "application", id.String())
	}
	return out, nil
}

// Delete removes an application owned by userID.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete application: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "application", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("application %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// List returns one page of the user's applications, newest first, and the
// total number of rows matching the filter.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, f domain.ApplicationFilter) ([]*domain.Application, int, error) {
	f.Normalize()

	where := squirrel.And{squirrel.Eq{"user_id": userID}}
	if f.Search != nil && *f.Search != "" {
		where = append(where, postgres.ILikeAny(postgres.ContainsPattern(*f.Search), "title", "company", "role"))
	}
	if f.Status != nil {
		where = append(where, squirrel.Eq{"status": string(*f.Status)})
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	countSQL, countArgs, err := postgres.Builder().Select("count(*)").From(table).Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count applications: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count applications: %w", err)
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
		return nil, 0, fmt.Errorf("build list applications: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list applications: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.Application, 0, f.Limit)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("list applications: %w", err)
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list applications: %w", err)
	}

	return items, total, nil
}

func scanApplication(row pgx.Row) (*domain.Application, error) {
	var (
		a      domain.Application
		status string
	)
	if err := row.Scan(
		&a.ID, &a.UserID, &a.Title, &a.Company, &a.Role,
		&a.JobURL, &a.Notes, &status, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("scan application: %w", err)
	}
	a.Status = domain.ApplicationStatus(status)
	return &a, nil
}
