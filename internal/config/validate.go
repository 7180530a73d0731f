package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return fmt.Errorf("database.dsn must not be empty")
	}

	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Webhook.validate(); err != nil {
		return fmt.Errorf("webhook: %w", err)
	}

	if c.Storage.Dir == "" {
		return fmt.Errorf("storage.dir must not be empty")
	}
	if c.Storage.MaxUploadBytes <= 0 {
		return fmt.Errorf("storage.max_upload_bytes must be > 0 (got %d)", c.Storage.MaxUploadBytes)
	}

	if c.RateLimit.APIPerMinute < 0 {
		return fmt.Errorf("ratelimit.api_per_minute must be >= 0 (got %d)", c.RateLimit.APIPerMinute)
	}

	return nil
}

func (w *WebhookConfig) validate() error {
	if w.MaxBodyBytes <= 0 {
		return fmt.Errorf("max_body_bytes must be > 0 (got %d)", w.MaxBodyBytes)
	}

	w.DedupBackend = strings.ToLower(strings.TrimSpace(w.DedupBackend))
	if w.DedupBackend == "" {
		w.DedupBackend = DedupNone
	}

	switch w.DedupBackend {
	case DedupNone:
	case DedupMemory, DedupRedis:
		if w.DedupTTL <= 0 {
			return fmt.Errorf("dedup_ttl must be > 0 when dedup_backend is %q", w.DedupBackend)
		}
		if w.DedupLease <= 0 || w.DedupLease > w.DedupTTL {
			return fmt.Errorf("dedup_lease must be in (0, dedup_ttl] (got %s)", w.DedupLease)
		}
	default:
		return fmt.Errorf("unknown dedup_backend %q (want none, memory or redis)", w.DedupBackend)
	}

	return nil
}
