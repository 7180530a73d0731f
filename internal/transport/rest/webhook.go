package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	svix "github.com/svix/svix-webhooks/go"

	"github.com/jvedigdev/ai-job-ace/internal/identity"
	"github.com/jvedigdev/ai-job-ace/internal/service/identitysync"
	"github.com/jvedigdev/ai-job-ace/pkg/ctxutil"
)

// Svix delivery headers.
const (
	headerSvixID        = "svix-id"
	headerSvixTimestamp = "svix-timestamp"
	headerSvixSignature = "svix-signature"
)

// Plain-text response bodies the identity provider sees.
const (
	bodyOK                  = "OK"
	bodySecretMissing       = "Webhook secret not configured"
	bodyMissingHeaders      = "Missing svix headers"
	bodyVerificationFailed  = "Webhook verification failed"
	bodyInvalidPayload      = "Invalid webhook payload"
	bodyNoEmail             = "No email found for user"
	bodyUpsertFailed        = "Failed to upsert profile"
	bodyDeleteFailed        = "Failed to delete profile"
	bodyPayloadTooLarge     = "Payload too large"
	bodyInFlight            = "Delivery already in progress"
	bodyInternalServerError = "Internal server error"
)

// Metric results for requests rejected before reaching the service.
const (
	resultNoSecret         = "no_secret"
	resultMissingHeaders   = "missing_headers"
	resultTooLarge         = "too_large"
	resultInvalidSignature = "invalid_signature"
	resultInvalidPayload   = "invalid_payload"
)

// identitySync applies verified events to the profile store.
type identitySync interface {
	Apply(ctx context.Context, deliveryID string, ev identity.Event) (identitysync.Outcome, error)
}

type webhookRecorder interface {
	ObserveWebhookEvent(eventType, result string)
}

// WebhookHandler is the identity provider's notification endpoint.
type WebhookHandler struct {
	svc          identitySync
	verifier     *svix.Webhook
	maxBodyBytes int64
	metrics      webhookRecorder
	log          *slog.Logger
}

// NewWebhookHandler creates a WebhookHandler. A missing or malformed
// signing secret does not fail construction: every POST is answered with
// 500 until the secret is fixed, and the rest of the service keeps serving.
func NewWebhookHandler(svc identitySync, signingSecret string, maxBodyBytes int64, metrics webhookRecorder, logger *slog.Logger) *WebhookHandler {
	h := &WebhookHandler{
		svc:          svc,
		maxBodyBytes: maxBodyBytes,
		metrics:      metrics,
		log:          logger.With("handler", "webhook"),
	}

	if strings.TrimSpace(signingSecret) == "" {
		h.log.Warn("webhook signing secret is not configured")
		return h
	}
	wh, err := svix.NewWebhook(signingSecret)
	if err != nil {
		h.log.Error("webhook signing secret is unusable", slog.String("error", err.Error()))
		return h
	}
	h.verifier = wh
	return h
}

// ServeHTTP handles OPTIONS and POST /webhooks/identity.
func (h *WebhookHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	ctx := r.Context()

	if h.verifier == nil {
		h.log.ErrorContext(ctx, "webhook secret not configured")
		h.observe("", resultNoSecret)
		writeText(w, http.StatusInternalServerError, bodySecretMissing)
		return
	}

	deliveryID := r.Header.Get(headerSvixID)
	if deliveryID == "" || r.Header.Get(headerSvixTimestamp) == "" || r.Header.Get(headerSvixSignature) == "" {
		h.observe("", resultMissingHeaders)
		writeText(w, http.StatusBadRequest, bodyMissingHeaders)
		return
	}
	ctx = ctxutil.WithDeliveryID(ctx, deliveryID)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.log.WarnContext(ctx, "webhook body too large", slog.Int64("limit", tooLarge.Limit))
			h.observe("", resultTooLarge)
			writeText(w, http.StatusRequestEntityTooLarge, bodyPayloadTooLarge)
			return
		}
		h.log.WarnContext(ctx, "read webhook body", slog.String("error", err.Error()))
		h.observe("", resultInvalidPayload)
		writeText(w, http.StatusBadRequest, bodyInvalidPayload)
		return
	}

	if err := h.verifier.Verify(body, r.Header); err != nil {
		h.log.WarnContext(ctx, "webhook verification failed", slog.String("error", err.Error()))
		h.observe("", resultInvalidSignature)
		writeText(w, http.StatusBadRequest, bodyVerificationFailed)
		return
	}

	ev, err := identity.Parse(body)
	if err != nil {
		h.log.WarnContext(ctx, "invalid webhook payload", slog.String("error", err.Error()))
		h.observe("", resultInvalidPayload)
		writeText(w, http.StatusBadRequest, bodyInvalidPayload)
		return
	}

	h.log.InfoContext(ctx, "webhook received",
		slog.String("type", ev.EventType()),
		slog.String("user_id", ev.UserID()),
	)

	if _, err := h.svc.Apply(ctx, deliveryID, ev); err != nil {
		switch {
		case errors.Is(err, identity.ErrNoEmail):
			writeText(w, http.StatusBadRequest, bodyNoEmail)
		case errors.Is(err, identitysync.ErrUpsertFailed):
			writeText(w, http.StatusInternalServerError, bodyUpsertFailed)
		case errors.Is(err, identitysync.ErrDeleteFailed):
			writeText(w, http.StatusInternalServerError, bodyDeleteFailed)
		case errors.Is(err, identitysync.ErrInFlight):
			// Any non-2xx makes the provider redeliver later.
			writeText(w, http.StatusConflict, bodyInFlight)
		default:
			h.log.ErrorContext(ctx, "apply webhook event", slog.String("error", err.Error()))
			writeText(w, http.StatusInternalServerError, bodyInternalServerError)
		}
		return
	}

	writeText(w, http.StatusOK, bodyOK)
}

// observe records requests that never reach the service; the service
// records the rest itself.
func (h *WebhookHandler) observe(eventType, result string) {
	if h.metrics != nil {
		h.metrics.ObserveWebhookEvent(eventType, result)
	}
}
