package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-day-keeper/internal/logger"
)

// withLogging records one access-log line per request and feeds the same
// status and duration into the Prometheus collectors.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		h.metrics.ObserveRequest(method, lw.Status(), duration)

		log.Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", lw.Status()).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}
