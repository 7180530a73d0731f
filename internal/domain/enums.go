package domain

// ApplicationStatus is the pipeline stage of a job application.
type ApplicationStatus string

const (
	ApplicationStatusDraft     ApplicationStatus = "draft"
	ApplicationStatusApplied   ApplicationStatus = "applied"
	ApplicationStatusInterview ApplicationStatus = "interview"
	ApplicationStatusOffer     ApplicationStatus = "offer"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
)

func (s ApplicationStatus) String() string { return string(s) }

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusDraft, ApplicationStatusApplied, ApplicationStatusInterview,
		ApplicationStatusOffer, ApplicationStatusRejected:
		return true
	}
	return false
}

// DocumentType classifies an uploaded document.
type DocumentType string

const (
	DocumentTypeResume   DocumentType = "resume"
	DocumentTypeCriteria DocumentType = "criteria"
	DocumentTypeOther    DocumentType = "other"
)

func (t DocumentType) String() string { return string(t) }

func (t DocumentType) IsValid() bool {
	switch t {
	case DocumentTypeResume, DocumentTypeCriteria, DocumentTypeOther:
		return true
	}
	return false
}
