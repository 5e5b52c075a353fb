package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidGateConfigs indicates invalid launch-gate handshake
	// settings (for example, a negative timeout override).
	ErrInvalidGateConfigs = errors.New("invalid gate configuration")
	// ErrInvalidServerConfigs indicates invalid gate-service settings
	// (for example, missing listen address or negative rate limit).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
