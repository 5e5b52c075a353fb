package config

import (
	"fmt"
	"time"
)

// ServerConfig is the gate-service configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	// HTTPAddress is the TCP address the gate service listens on.
	HTTPAddress string
	// RedirectURL is the destination advertised in the launch-config
	// document. Empty means clients run locally.
	RedirectURL string
	// RequestTimeout bounds a single inbound request.
	RequestTimeout time.Duration
	// RateLimitQPS is the sustained per-client request rate before 429.
	// Zero disables rate limiting.
	RateLimitQPS float64
	// RateLimitBurst is the per-client burst capacity.
	RateLimitBurst int
	// Version is the semantic version string of the running application.
	Version string
}

// GetServerConfig builds and validates a gate-service config view from the
// merged structured configuration, the same way [GetClientConfig] does for
// the client runtime.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		HTTPAddress:    cfg.Server.HTTPAddress,
		RedirectURL:    cfg.Server.RedirectURL,
		RequestTimeout: cfg.Server.RequestTimeout,
		RateLimitQPS:   cfg.Server.RateLimitQPS,
		RateLimitBurst: cfg.Server.RateLimitBurst,
		Version:        cfg.App.Version,
	}

	return serverCfg, serverCfg.validate()
}
