// Package identity decodes account lifecycle notifications sent by the
// identity provider into typed events.
package identity

import "errors"

// Event types emitted by the identity provider that this service acts on.
const (
	TypeUserCreated = "user.created"
	TypeUserUpdated = "user.updated"
	TypeUserDeleted = "user.deleted"
)

var (
	// ErrMalformedPayload is returned by Parse for bodies that are not a
	// well-formed notification.
	ErrMalformedPayload = errors.New("identity: malformed payload")

	// ErrNoEmail is returned when a created/updated event carries no usable
	// email address.
	ErrNoEmail = errors.New("identity: no email found for user")
)

// Event is one of UserUpserted, UserDeleted or Unhandled.
type Event interface {
	// EventType returns the provider's event type string.
	EventType() string
	// UserID returns the provider's user id, empty for unhandled events
	// that carry none.
	UserID() string

	isEvent()
}

// EmailCandidate is one of the addresses attached to a provider account.
type EmailCandidate struct {
	Address  string
	Verified bool
}

// UserUpserted is a user.created or user.updated notification.
type UserUpserted struct {
	Type            string
	ExternalUserID  string
	EmailCandidates []EmailCandidate
	FirstName       *string
	LastName        *string
	AvatarURL       *string
}

func (e UserUpserted) EventType() string { return e.Type }
func (e UserUpserted) UserID() string    { return e.ExternalUserID }
func (UserUpserted) isEvent()            {}

// Created reports whether the event announced a new account.
func (e UserUpserted) Created() bool { return e.Type == TypeUserCreated }

// PrimaryEmail picks the address to store: the first verified candidate,
// otherwise the first candidate in order.
func (e UserUpserted) PrimaryEmail() (string, error) {
	for _, c := range e.EmailCandidates {
		if c.Verified && c.Address != "" {
			return c.Address, nil
		}
	}
	if len(e.EmailCandidates) > 0 && e.EmailCandidates[0].Address != "" {
		return e.EmailCandidates[0].Address, nil
	}
	return "", ErrNoEmail
}

// UserDeleted is a user.deleted notification.
type UserDeleted struct {
	ExternalUserID string
}

func (e UserDeleted) EventType() string { return TypeUserDeleted }
func (e UserDeleted) UserID() string    { return e.ExternalUserID }
func (UserDeleted) isEvent()            {}

// Unhandled is any verified notification this service does not act on.
type Unhandled struct {
	Type           string
	ExternalUserID string
}

func (e Unhandled) EventType() string { return e.Type }
func (e Unhandled) UserID() string    { return e.ExternalUserID }
func (Unhandled) isEvent()            {}
