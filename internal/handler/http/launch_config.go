package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-day-keeper/internal/logger"
	"github.com/MKhiriev/go-day-keeper/models"
)

// getLaunchConfig serves the launch-config document consulted by every
// client at startup. An empty RedirectURL is omitted from the envelope,
// which tells clients to run locally.
func (h *Handler) getLaunchConfig(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	envelope := models.LaunchConfig{URL: h.config.RedirectURL}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(envelope); err != nil {
		log.Error().Err(err).Str("func", "Handler.getLaunchConfig").Msg("error encoding launch config")
	}
}
