package middleware

import (
	"net/http"
	"time"
)

type httpRecorder interface {
	ObserveHTTPRequest(method, route string, status int, d time.Duration)
}

// Metrics records request count and latency under a fixed route label,
// normally the mux pattern the handler is registered with.
func Metrics(rec httpRecorder, route string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			rec.ObserveHTTPRequest(r.Method, route, sw.status, time.Since(start))
		})
	}
}
