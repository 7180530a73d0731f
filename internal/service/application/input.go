package application

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/jvedigdev/ai-job-ace/internal/domain"
)

const (
	maxTextLen  = 255
	maxURLLen   = 2048
	maxNotesLen = 10000
)

// CreateInput holds the parameters for creating an application.
type CreateInput struct {
	Title   string
	Company string
	Role    string
	JobURL  *string
	Notes   *string
	Status  *domain.ApplicationStatus // nil = draft
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	errs = requiredText(errs, "title", i.Title)
	errs = requiredText(errs, "company", i.Company)
	errs = requiredText(errs, "role", i.Role)

	if i.JobURL != nil {
		if raw := strings.TrimSpace(*i.JobURL); raw != "" {
			if len(raw) > maxURLLen {
				errs = append(errs, domain.FieldError{Field: "jobUrl", Message: "max 2048 characters"})
			} else if !isHTTPURL(raw) {
				errs = append(errs, domain.FieldError{Field: "jobUrl", Message: "must be an absolute http(s) URL"})
			}
		}
	}

	if i.Notes != nil && utf8.RuneCountInString(*i.Notes) > maxNotesLen {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "max 10000 characters"})
	}

	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be one of draft, applied, interview, offer, rejected"})
	}

	return domain.Validation(errs)
}

// ListInput holds the query parameters of an application listing.
type ListInput struct {
	Query  string
	Status string
	Limit  int
	Offset int
}

// Validate checks the status filter; paging values are clamped, not rejected.
func (i ListInput) Validate() error {
	if i.Status != "" && !domain.ApplicationStatus(i.Status).IsValid() {
		return domain.NewValidationError("status", "unknown status")
	}
	return nil
}

func requiredText(errs []domain.FieldError, field, v string) []domain.FieldError {
	v = strings.TrimSpace(v)
	switch {
	case v == "":
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	case utf8.RuneCountInString(v) > maxTextLen:
		return append(errs, domain.FieldError{Field: field, Message: "max 255 characters"})
	}
	return errs
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
