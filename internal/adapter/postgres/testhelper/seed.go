package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jvedigdev/ai-job-ace/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func ptr[T any](v T) *T { return &v }

// SeedProfile inserts a profile with a unique external user id and email.
func SeedProfile(t *testing.T, pool *pgxpool.Pool) domain.Profile {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	p := domain.Profile{
		ID:             uuid.New(),
		ExternalUserID: "user_" + suffix,
		Email:          "seed-" + suffix + "@example.com",
		FirstName:      ptr("Seed"),
		LastName:       ptr(suffix),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO profiles (id, external_user_id, email, first_name, last_name, avatar_url, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.ExternalUserID, p.Email, p.FirstName, p.LastName, p.AvatarURL, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProfile: %v", err)
	}

	return p
}

// SeedApplication inserts an application owned by userID. title, company and
// role are used verbatim so search tests can control them.
func SeedApplication(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, title, company, role string, status domain.ApplicationStatus) domain.Application {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	a := domain.Application{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Company:   company,
		Role:      role,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO applications (id, user_id, title, company, role, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		a.ID, a.UserID, a.Title, a.Company, a.Role, string(a.Status), a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedApplication: %v", err)
	}

	return a
}

// SeedDocument inserts document metadata owned by userID. No blob is written.
func SeedDocument(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, title string, docType domain.DocumentType, preview *string) domain.Document {
	t.Helper()

	id := uuid.New()
	d := domain.Document{
		ID:             id,
		UserID:         userID,
		Title:          title,
		Type:           docType,
		FileName:       "seed-" + uniqueSuffix() + ".txt",
		ContentType:    "text/plain",
		SizeBytes:      42,
		StorageKey:     userID.String() + "/" + id.String() + "/seed.txt",
		ContentPreview: preview,
		CreatedAt:      time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO documents (id, user_id, title, doc_type, file_name, content_type, size_bytes, storage_key, content_preview, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		d.ID, d.UserID, d.Title, string(d.Type), d.FileName, d.ContentType, d.SizeBytes, d.StorageKey, d.ContentPreview, d.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDocument: %v", err)
	}

	return d
}
