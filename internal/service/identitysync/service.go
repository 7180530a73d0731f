// Package identitysync applies verified identity provider events to the
// local profile store.
package identitysync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jvedigdev/ai-job-ace/internal/domain"
	"github.com/jvedigdev/ai-job-ace/internal/identity"
)

// Store failures. The transport layer maps each to its own response.
var (
	ErrUpsertFailed = errors.New("failed to upsert profile")
	ErrDeleteFailed = errors.New("failed to delete profile")
	// ErrInFlight means another attempt of the same delivery is still
	// running. The provider must retry later.
	ErrInFlight = errors.New("delivery already in progress")
)

// Outcome describes what Apply did with an event.
type Outcome string

const (
	OutcomeUpserted  Outcome = "upserted"
	OutcomeDeleted   Outcome = "deleted"
	OutcomeIgnored   Outcome = "ignored"
	OutcomeDuplicate Outcome = "duplicate"
)

// Metric result labels for failed events.
const (
	resultNoEmail    = "no_email"
	resultStoreError = "store_error"
	resultInFlight   = "in_flight"
)

// profileStore is the persistence the processor writes to.
type profileStore interface {
	Upsert(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	DeleteByExternalID(ctx context.Context, externalUserID string) (bool, error)
}

// deliveryGuard suppresses redeliveries of the same provider message. A
// claim stays pending until Complete or Release.
type deliveryGuard interface {
	Claim(ctx context.Context, deliveryID string) (domain.DeliveryState, error)
	Complete(ctx context.Context, deliveryID string) error
	Release(ctx context.Context, deliveryID string) error
}

// recorder receives one observation per processed event.
type recorder interface {
	ObserveWebhookEvent(eventType, result string)
}

// Service implements identity sync operations.
type Service struct {
	log     *slog.Logger
	store   profileStore
	guard   deliveryGuard
	metrics recorder
}

// NewService creates the processor. guard may be nil, in which case every
// verified delivery is applied. metrics may be nil.
func NewService(logger *slog.Logger, store profileStore, guard deliveryGuard, metrics recorder) *Service {
	return &Service{
		log:     logger.With("service", "identitysync"),
		store:   store,
		guard:   guard,
		metrics: metrics,
	}
}

// Apply performs at most one store mutation for ev. deliveryID is the
// provider's message id and is only used by the delivery guard. A delivery
// whose earlier attempt is still running fails with ErrInFlight.
func (s *Service) Apply(ctx context.Context, deliveryID string, ev identity.Event) (Outcome, error) {
	if u, ok := ev.(identity.Unhandled); ok {
		s.log.InfoContext(ctx, "unhandled event type",
			slog.String("type", u.Type),
			slog.String("delivery_id", deliveryID),
		)
		s.observe(ev.EventType(), string(OutcomeIgnored))
		return OutcomeIgnored, nil
	}

	switch s.claim(ctx, deliveryID, ev) {
	case domain.DeliveryDone:
		s.observe(ev.EventType(), string(OutcomeDuplicate))
		return OutcomeDuplicate, nil
	case domain.DeliveryPending:
		s.observe(ev.EventType(), resultInFlight)
		return "", ErrInFlight
	}

	outcome, err := s.dispatch(ctx, ev)
	if err != nil {
		s.release(ctx, deliveryID)

		result := resultStoreError
		if errors.Is(err, identity.ErrNoEmail) {
			result = resultNoEmail
		}
		s.observe(ev.EventType(), result)
		return "", err
	}

	s.complete(ctx, deliveryID)
	s.observe(ev.EventType(), string(outcome))
	return outcome, nil
}

func (s *Service) observe(eventType, result string) {
	if s.metrics != nil {
		s.metrics.ObserveWebhookEvent(eventType, result)
	}
}

func (s *Service) dispatch(ctx context.Context, ev identity.Event) (Outcome, error) {
	switch e := ev.(type) {
	case identity.UserUpserted:
		return s.upsert(ctx, e)
	case identity.UserDeleted:
		return s.delete(ctx, e)
	default:
		return "", fmt.Errorf("identitysync: unexpected event %T", ev)
	}
}

func (s *Service) upsert(ctx context.Context, e identity.UserUpserted) (Outcome, error) {
	email, err := e.PrimaryEmail()
	if err != nil {
		s.log.WarnContext(ctx, "no email found for user", slog.String("user_id", e.ExternalUserID))
		return "", err
	}

	p, err := s.store.Upsert(ctx, &domain.Profile{
		ExternalUserID: e.ExternalUserID,
		Email:          email,
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		AvatarURL:      e.AvatarURL,
	})
	if err != nil {
		s.log.ErrorContext(ctx, "upsert profile",
			slog.String("user_id", e.ExternalUserID),
			slog.String("error", err.Error()),
		)
		return "", fmt.Errorf("%w: %w", ErrUpsertFailed, err)
	}

	s.log.InfoContext(ctx, "profile synced",
		slog.String("type", e.Type),
		slog.String("user_id", e.ExternalUserID),
		slog.String("profile_id", p.ID.String()),
	)
	return OutcomeUpserted, nil
}

func (s *Service) delete(ctx context.Context, e identity.UserDeleted) (Outcome, error) {
	existed, err := s.store.DeleteByExternalID(ctx, e.ExternalUserID)
	if err != nil {
		s.log.ErrorContext(ctx, "delete profile",
			slog.String("user_id", e.ExternalUserID),
			slog.String("error", err.Error()),
		)
		return "", fmt.Errorf("%w: %w", ErrDeleteFailed, err)
	}

	s.log.InfoContext(ctx, "profile deleted",
		slog.String("user_id", e.ExternalUserID),
		slog.Bool("existed", existed),
	)
	return OutcomeDeleted, nil
}

// claim returns DeliveryNew when the event should be applied by this call.
// Guard errors fail open: the upsert and delete are idempotent, a lost
// claim is harmless.
func (s *Service) claim(ctx context.Context, deliveryID string, ev identity.Event) domain.DeliveryState {
	if s.guard == nil || deliveryID == "" {
		return domain.DeliveryNew
	}

	state, err := s.guard.Claim(ctx, deliveryID)
	if err != nil {
		s.log.WarnContext(ctx, "delivery guard unavailable, applying event",
			slog.String("delivery_id", deliveryID),
			slog.String("error", err.Error()),
		)
		return domain.DeliveryNew
	}

	switch state {
	case domain.DeliveryDone:
		s.log.InfoContext(ctx, "duplicate delivery acknowledged",
			slog.String("delivery_id", deliveryID),
			slog.String("type", ev.EventType()),
			slog.String("user_id", ev.UserID()),
		)
	case domain.DeliveryPending:
		s.log.WarnContext(ctx, "delivery still in progress, asking for retry",
			slog.String("delivery_id", deliveryID),
			slog.String("type", ev.EventType()),
			slog.String("user_id", ev.UserID()),
		)
	}
	return state
}

// complete marks the delivery done. On failure the pending claim runs out
// with its lease and a later retry re-applies the event.
func (s *Service) complete(ctx context.Context, deliveryID string) {
	if s.guard == nil || deliveryID == "" {
		return
	}
	if err := s.guard.Complete(context.WithoutCancel(ctx), deliveryID); err != nil {
		s.log.WarnContext(ctx, "complete delivery claim",
			slog.String("delivery_id", deliveryID),
			slog.String("error", err.Error()),
		)
	}
}

func (s *Service) release(ctx context.Context, deliveryID string) {
	if s.guard == nil || deliveryID == "" {
		return
	}
	// The request context may already be cancelled; the claim must still go.
	if err := s.guard.Release(context.WithoutCancel(ctx), deliveryID); err != nil {
		s.log.WarnContext(ctx, "release delivery claim",
			slog.String("delivery_id", deliveryID),
			slog.String("error", err.Error()),
		)
	}
}
