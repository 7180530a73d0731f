package identity

import (
	"encoding/json"
	"fmt"
	"strings"
)

// verificationVerified is the provider's status for a confirmed address.
const verificationVerified = "verified"

// envelope is decoded first; data is only interpreted for user events.
type envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type payloadData struct {
	ID             string         `json:"id"`
	EmailAddresses []emailAddress `json:"email_addresses"`
	FirstName      *string        `json:"first_name"`
	LastName       *string        `json:"last_name"`
	ImageURL       *string        `json:"image_url"`
}

type emailAddress struct {
	EmailAddress string `json:"email_address"`
	Verification *struct {
		Status string `json:"status"`
	} `json:"verification"`
}

// Parse decodes a verified notification body. Unknown event types yield
// Unhandled whatever their data looks like; user events with a malformed
// data object or without a user id are rejected with ErrMalformedPayload.
func Parse(body []byte) (Event, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	eventType := strings.TrimSpace(env.Type)
	if eventType == "" {
		return nil, fmt.Errorf("%w: missing event type", ErrMalformedPayload)
	}

	switch eventType {
	case TypeUserCreated, TypeUserUpdated, TypeUserDeleted:
	default:
		return Unhandled{Type: eventType, ExternalUserID: objectID(env.Data)}, nil
	}

	var data payloadData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, fmt.Errorf("%w: %s data: %v", ErrMalformedPayload, eventType, err)
	}
	if data.ID == "" {
		return nil, fmt.Errorf("%w: %s without user id", ErrMalformedPayload, eventType)
	}

	if eventType == TypeUserDeleted {
		return UserDeleted{ExternalUserID: data.ID}, nil
	}
	return UserUpserted{
		Type:            eventType,
		ExternalUserID:  data.ID,
		EmailCandidates: toCandidates(data.EmailAddresses),
		FirstName:       nonEmpty(data.FirstName),
		LastName:        nonEmpty(data.LastName),
		AvatarURL:       nonEmpty(data.ImageURL),
	}, nil
}

// objectID returns data.id when data is an object with a string id, for
// logging unhandled events.
func objectID(data json.RawMessage) string {
	var obj struct {
		ID any `json:"id"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return ""
	}
	id, _ := obj.ID.(string)
	return id
}

func toCandidates(in []emailAddress) []EmailCandidate {
	if len(in) == 0 {
		return nil
	}
	out := make([]EmailCandidate, 0, len(in))
	for _, a := range in {
		out = append(out, EmailCandidate{
			Address:  a.EmailAddress,
			Verified: a.Verification != nil && a.Verification.Status == verificationVerified,
		})
	}
	return out
}

// nonEmpty maps missing, null and "" to nil.
func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}
