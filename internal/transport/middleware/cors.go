package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/jvedigdev/ai-job-ace/internal/config"
)

// CORS handles Cross-Origin Resource Sharing for the /api routes. Allowed
// origins are echoed back, never "*", so credentials keep working with a
// wildcard configuration. Preflight requests are answered with 204 and
// never reach next.
func CORS(cfg config.CORSConfig) Middleware {
	origins := newOriginSet(cfg.AllowedOrigins)
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")

			if origin := r.Header.Get("Origin"); origin != "" && origins.allows(origin) {
				h.Set("Access-Control-Allow-Origin", origin)
				if cfg.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method == http.MethodOptions {
				h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
				h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				h.Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

type originSet struct {
	any   bool
	exact map[string]struct{}
}

func newOriginSet(csv string) originSet {
	s := originSet{exact: make(map[string]struct{})}
	for _, o := range strings.Split(csv, ",") {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		switch o {
		case "":
		case "*":
			s.any = true
		default:
			s.exact[o] = struct{}{}
		}
	}
	return s
}

func (s originSet) allows(origin string) bool {
	if s.any {
		return true
	}
	_, ok := s.exact[origin]
	return ok
}

// Headers the identity provider's webhook endpoint advertises.
const (
	webhookAllowOrigin  = "*"
	webhookAllowHeaders = "authorization, x-client-info, apikey, content-type"
)

// WebhookCORS sets the permissive CORS headers of the webhook endpoint on
// every response. Unlike CORS it does not answer preflight requests itself:
// the webhook handler owns its OPTIONS response.
func WebhookCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", webhookAllowOrigin)
		w.Header().Set("Access-Control-Allow-Headers", webhookAllowHeaders)
		next.ServeHTTP(w, r)
	})
}
