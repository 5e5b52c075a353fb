// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Only cross-source sanity is checked here; role-specific requirements live
// on the narrowed [ClientConfig] and [ServerConfig] views.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Gate.RequestTimeout < 0 || cfg.Gate.ProbeTimeout < 0 {
		return ErrInvalidGateConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.RateLimitQPS < 0 || cfg.RateLimitBurst < 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
