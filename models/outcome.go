// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// OutcomeKind discriminates the variants of [FetchOutcome].
// Exactly one variant is active on any given outcome.
type OutcomeKind int

const (
	// OutcomePending is the zero value: no fetch has produced a result yet.
	// Fetches never return it.
	OutcomePending OutcomeKind = iota

	// OutcomeCompleted means the gate answered successfully.
	// The outcome may or may not carry a destination.
	OutcomeCompleted

	// OutcomeRateLimited means the gate answered HTTP 429.
	// It is deliberately distinct from OutcomeFailed so callers can
	// present temporary throttling differently from real failures.
	OutcomeRateLimited

	// OutcomeFailed means the fetch failed; Cause describes how.
	OutcomeFailed
)

// String returns the kind name for logs.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomePending:
		return "pending"
	case OutcomeCompleted:
		return "completed"
	case OutcomeRateLimited:
		return "rate-limited"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FetchOutcome is the result of a single launch-config fetch.
//
// Destination is meaningful only when Kind is [OutcomeCompleted]; an empty
// Destination on a completed outcome means the gate requested no redirect.
// Cause is meaningful only when Kind is [OutcomeFailed].
type FetchOutcome struct {
	// Kind selects the active variant.
	Kind OutcomeKind `json:"kind"`

	// Destination is the remote destination the gate asked the app to
	// open, or empty when the gate requested none.
	Destination string `json:"destination,omitempty"`

	// Cause describes the failure when Kind is OutcomeFailed.
	Cause ErrorDetail `json:"cause,omitempty"`
}

// NewCompletedOutcome constructs a successful outcome. An empty destination
// is valid and means the gate requested no redirect.
func NewCompletedOutcome(destination string) FetchOutcome {
	return FetchOutcome{
		Kind:        OutcomeCompleted,
		Destination: destination,
	}
}

// NewRateLimitedOutcome constructs the throttled outcome.
func NewRateLimitedOutcome() FetchOutcome {
	return FetchOutcome{Kind: OutcomeRateLimited}
}

// NewFailedOutcome constructs a failed outcome carrying its cause.
func NewFailedOutcome(cause ErrorDetail) FetchOutcome {
	return FetchOutcome{
		Kind:  OutcomeFailed,
		Cause: cause,
	}
}

// HasDestination reports whether the outcome completed with a
// non-empty destination.
func (o FetchOutcome) HasDestination() bool {
	return o.Kind == OutcomeCompleted && o.Destination != ""
}
