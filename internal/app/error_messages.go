// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// DayKeeper client surfaces and gate-service handlers.
//
// All Msg* constants are human-readable message strings that are rendered on
// screen, written into HTTP response bodies, or emitted in log entries to
// describe the outcome of an operation. Keeping them in one place ensures
// consistent wording throughout the application.
package app

const (
	// MsgGateBusy is shown when the launch service answers that it is
	// rate limited. The condition is transient, so the wording invites
	// a manual retry.
	MsgGateBusy = "service is temporarily unavailable, please try again later"

	// MsgRetryHint is appended to every failure screen to point at the
	// retry key.
	MsgRetryHint = "press r to retry"

	// MsgTooManyRequests is written into 429 response bodies by the gate
	// service when a caller exceeds its request quota.
	MsgTooManyRequests = "too many requests"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgEmptyEntryTitle is shown when the user tries to save a journal
	// entry without a title.
	MsgEmptyEntryTitle = "entry title cannot be empty"

	// MsgEntrySaved confirms that a journal entry was persisted.
	MsgEntrySaved = "entry saved"

	// MsgEntryDeleted confirms that a journal entry was removed.
	MsgEntryDeleted = "entry deleted"

	// MsgDestinationCopied confirms that the remote destination URL was
	// placed on the system clipboard.
	MsgDestinationCopied = "link copied to clipboard"

	// MsgClipboardUnavailable is shown when the system clipboard cannot
	// be reached (e.g. no display server on a headless machine).
	MsgClipboardUnavailable = "clipboard unavailable on this system"
)
