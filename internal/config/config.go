// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-day-keeper application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the application version.
	App App `envPrefix:"APP_"`

	// Gate holds settings for the launch-gate handshake performed by the
	// client at startup.
	Gate Gate `envPrefix:"GATE_"`

	// Storage holds configuration for the client's local persistence.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network, redirect, and rate-limit settings for the
	// launch-gate service.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Shown in the settings view and startup log.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Gate holds settings for the launch-gate handshake. All fields are
// optional: the client ships with a built-in endpoint and timeouts, and
// these values exist for tests and self-hosted gates.
type Gate struct {
	// EndpointURL overrides the built-in launch-gate endpoint.
	// Env: GATE_ENDPOINT_URL
	EndpointURL string `env:"ENDPOINT_URL"`

	// RequestTimeout overrides the launch-config fetch timeout.
	// Env: GATE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ProbeTimeout overrides the destination reachability-check timeout.
	// Env: GATE_PROBE_TIMEOUT
	ProbeTimeout time.Duration `env:"PROBE_TIMEOUT"`
}

// Storage groups the configuration for the client's persistence backends.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local database backend.
type DB struct {
	// DSN is the SQLite data source name, normally a file path
	// (e.g. "daykeeper.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds settings for the launch-gate service binary.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RedirectURL is the destination advertised to clients in the
	// launch-config document. Empty means clients run locally.
	// Env: SERVER_REDIRECT_URL
	RedirectURL string `env:"REDIRECT_URL"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimitQPS is the sustained per-client request rate allowed by the
	// gate before it answers 429. Zero disables rate limiting.
	// Env: SERVER_RATE_LIMIT_QPS
	RateLimitQPS float64 `env:"RATE_LIMIT_QPS"`

	// RateLimitBurst is the burst capacity of the per-client rate limiter.
	// Env: SERVER_RATE_LIMIT_BURST
	RateLimitBurst int `env:"RATE_LIMIT_BURST"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win; later sources only fill fields still unset):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
