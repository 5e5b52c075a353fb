package http

import (
	"net/http"

	"github.com/MKhiriev/go-day-keeper/internal/app"
	"github.com/MKhiriev/go-day-keeper/internal/logger"
)

// withRateLimit answers 429 for clients that exhausted their token bucket.
// The /metrics endpoint stays reachable for scrapes even under limiting.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.limiter == nil || r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		if !h.limiter.Allow(r.RemoteAddr) {
			h.metrics.IncRateLimited()
			logger.FromRequest(r).Warn().
				Str("remote_addr", r.RemoteAddr).
				Msg("request rate limited")

			w.Header().Set("Retry-After", "1")
			http.Error(w, app.MsgTooManyRequests, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
