package http

import (
	"github.com/MKhiriev/go-day-keeper/internal/config"
	"github.com/MKhiriev/go-day-keeper/internal/logger"
)

type Handler struct {
	config config.ServerConfig

	metrics *Metrics
	limiter *IPRateLimiter

	logger *logger.Logger
}

func NewHandler(cfg config.ServerConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		config:  cfg,
		metrics: NewMetrics(),
		limiter: NewIPRateLimiter(cfg.RateLimitQPS, cfg.RateLimitBurst),
		logger:  logger,
	}
}
