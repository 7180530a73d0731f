package domain

const (
	DefaultPageLimit = 50
	MaxPageLimit     = 200
)

// Page holds offset pagination parameters shared by list filters.
type Page struct {
	Limit  int
	Offset int
}

// Normalize applies the default limit and clamps both values into range.
func (p *Page) Normalize() {
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// ApplicationFilter narrows an application listing. Search matches title,
// company and role case-insensitively; nil fields do not filter.
type ApplicationFilter struct {
	Search *string
	Status *ApplicationStatus
	Page
}

// DocumentFilter narrows a document listing. Search matches title and the
// stored text preview.
type DocumentFilter struct {
	Search *string
	Type   *DocumentType
	Page
}
