// Package profile implements the Profile repository using PostgreSQL.
// Profiles are keyed by the identity provider's user id; the webhook
// processor writes them and the session layer reads them.
package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/jvedigdev/ai-job-ace/internal/adapter/postgres"
	"github.com/jvedigdev/ai-job-ace/internal/domain"
)

// Repo provides profile persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new profile repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const profileColumns = `id, external_user_id, email, first_name, last_name, avatar_url, created_at, updated_at`

// Every mutable column is overwritten; id and created_at survive so rows
// owned by the profile keep their foreign keys.
const upsertSQL = `
INSERT INTO profiles (id, external_user_id, email, first_name, last_name, avatar_url, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
ON CONFLICT (external_user_id) DO UPDATE SET
    email      = EXCLUDED.email,
    first_name = EXCLUDED.first_name,
    last_name  = EXCLUDED.last_name,
    avatar_url = EXCLUDED.avatar_url,
    updated_at = EXCLUDED.updated_at
RETURNING ` + profileColumns

const deleteByExternalIDSQL = `DELETE FROM profiles WHERE external_user_id = $1`

const getByExternalIDSQL = `SELECT ` + profileColumns + ` FROM profiles WHERE external_user_id = $1`

const getByIDSQL = `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Upsert inserts the profile or overwrites the row with the same external
// user id in one atomic statement. p.ID is used only for a fresh insert.
func (r *Repo) Upsert(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	now := time.Now().UTC()

	row := q.QueryRow(ctx, upsertSQL,
		id, p.ExternalUserID, p.Email, p.FirstName, p.LastName, p.AvatarURL, now,
	)

	out, err := scanProfile(row)
	if err != nil {
		return nil, postgres.MapError(err, "profile", p.ExternalUserID)
	}
	return out, nil
}

// DeleteByExternalID removes the profile for the given provider user id.
// It reports whether a row existed; deleting an absent profile is not an error.
func (r *Repo) DeleteByExternalID(ctx context.Context, externalUserID string) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteByExternalIDSQL, externalUserID)
	if err != nil {
		return false, postgres.MapError(err, "profile", externalUserID)
	}
	return tag.RowsAffected() > 0, nil
}

// GetByExternalID returns the profile for a provider user id.
// Returns domain.ErrNotFound if the webhook has not synchronized it yet.
func (r *Repo) GetByExternalID(ctx context.Context, externalUserID string) (*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanProfile(q.QueryRow(ctx, getByExternalIDSQL, externalUserID))
	if err != nil {
		return nil, postgres.MapError(err, "profile", externalUserID)
	}
	return out, nil
}

// GetByID returns a profile by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanProfile(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "profile", id.String())
	}
	return out, nil
}

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile
	if err := row.Scan(
		&p.ID, &p.ExternalUserID, &p.Email,
		&p.FirstName, &p.LastName, &p.AvatarURL,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("scan profile: %w", err)
	}
	return &p, nil
}
