package document

import (
	"io"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/jvedigdev/ai-job-ace/internal/domain"
)

const (
	maxTitleLen    = 255
	maxFileNameLen = 255
	storedNameLen  = 100
)

// UploadInput holds one uploaded file and its metadata.
type UploadInput struct {
	Title       string // empty = file name
	Type        string // empty = other
	FileName    string
	ContentType string
	Body        io.Reader
}

// Validate checks all fields and collects all errors.
func (i UploadInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.FileName)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "file", Message: "required"})
	} else if utf8.RuneCountInString(name) > maxFileNameLen {
		errs = append(errs, domain.FieldError{Field: "file", Message: "file name max 255 characters"})
	}
	if i.Body == nil {
		errs = append(errs, domain.FieldError{Field: "file", Message: "missing content"})
	}

	if utf8.RuneCountInString(strings.TrimSpace(i.Title)) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 255 characters"})
	}

	if i.Type != "" && !domain.DocumentType(i.Type).IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be one of resume, criteria, other"})
	}

	return domain.Validation(errs)
}

// ListInput holds the query parameters of a document listing.
type ListInput struct {
	Query  string
	Type   string
	Limit  int
	Offset int
}

// Validate checks the type filter.
func (i ListInput) Validate() error {
	if i.Type != "" && !domain.DocumentType(i.Type).IsValid() {
		return domain.NewValidationError("type", "unknown document type")
	}
	return nil
}

// storedName reduces a client file name to a safe single path segment.
func storedName(fileName string) string {
	base := path.Base(strings.ReplaceAll(fileName, `\`, "/"))

	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
		if b.Len() >= storedNameLen {
			break
		}
	}

	name := strings.Trim(b.String(), ".")
	if name == "" {
		return "file"
	}
	return name
}
