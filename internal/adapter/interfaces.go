// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for the launch-gate
// handshake performed at client startup.
//
// The primary abstractions are [ConfigFetcher], which retrieves and
// classifies the launch-config document, and [DestinationProber], which
// checks whether a remote-supplied destination is reachable. Both ship
// HTTP implementations built on resty ([NewLaunchGateClient],
// [NewDestinationProber]).
//
// Fetch never returns a Go error: every way the handshake can go wrong is
// classified into a [models.FetchOutcome] so the caller has exactly one
// result type to act on.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-day-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ConfigFetcher retrieves the launch-config document from the gate.
type ConfigFetcher interface {
	// Fetch performs a single fetch attempt and classifies the result.
	// It never retries and never caches. The returned outcome is always
	// one of Completed, RateLimited, or Failed.
	Fetch(ctx context.Context) models.FetchOutcome
}

// DestinationProber checks whether a destination URL answers HTTP requests.
type DestinationProber interface {
	// Probe sends a single HEAD request to destination. It returns nil
	// when the destination answers with a success status, and a non-nil
	// error for any other response or transport failure.
	Probe(ctx context.Context, destination string) error
}
