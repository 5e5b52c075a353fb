// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-day-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// NavigationResolver decides which top-level surface the app shows: the
// local journal, a remote-supplied destination, or a failure message.
//
// Each call to BeginLoad or Retry starts a fresh load cycle. Cycles may
// overlap; the resolver guarantees that a slow older cycle can never
// overwrite the state produced by a newer one.
type NavigationResolver interface {
	// BeginLoad starts a new load cycle: navigation immediately enters the
	// initial screen, then the launch-config fetch and any follow-up
	// destination probe run in the background. The method itself returns
	// at once.
	BeginLoad(ctx context.Context)

	// Retry is a user-triggered re-entry of the whole flow. It behaves
	// exactly like BeginLoad: no backoff, no attempt limit.
	Retry(ctx context.Context)

	// State returns the current navigation state.
	State() models.NavigationState

	// Updates returns the channel on which every applied state change is
	// delivered. The channel is buffered; when a consumer lags, older
	// states are dropped in favor of the latest one.
	Updates() <-chan models.NavigationState

	// Wait blocks until every load cycle started so far has finished
	// applying or discarding its result. Used on shutdown and in tests.
	Wait()
}

// EntryService manages journal entries.
type EntryService interface {
	// Create stores a new entry for the given day ("" means today).
	// Returns [ErrEmptyTitle] when title is blank and [ErrInvalidDay]
	// when day is not a valid YYYY-MM-DD date.
	Create(ctx context.Context, day, title, note string) (models.Entry, error)

	// List returns up to limit entries, newest first. limit <= 0 means
	// no limit.
	List(ctx context.Context, limit int) ([]models.Entry, error)

	// ListByDay returns the entries recorded on one day, newest first.
	ListByDay(ctx context.Context, day string) ([]models.Entry, error)

	// Delete removes an entry by ID.
	Delete(ctx context.Context, id string) error

	// DayCounts returns per-day entry counts for days in [from, to],
	// both formatted as YYYY-MM-DD.
	DayCounts(ctx context.Context, from, to string) ([]models.DayCount, error)

	// Stats computes journal totals and the current writing streak.
	Stats(ctx context.Context) (models.JournalStats, error)
}

// PrefsService manages the persisted per-installation preferences.
// Every mutator returns the full preferences record as persisted, so
// callers can swap their copy without a follow-up Get.
type PrefsService interface {
	// Get returns the stored preferences, or the defaults when nothing
	// has been persisted yet.
	Get(ctx context.Context) (models.Preferences, error)

	// SetDarkMode persists the color palette choice.
	SetDarkMode(ctx context.Context, dark bool) (models.Preferences, error)

	// SetDisplayName persists the greeting name.
	SetDisplayName(ctx context.Context, name string) (models.Preferences, error)

	// CompleteOnboarding stores the display name chosen during first-run
	// and marks the onboarding flow as seen.
	CompleteOnboarding(ctx context.Context, displayName string) (models.Preferences, error)

	// ResetOnboarding clears the onboarding-seen flag so the first-run
	// flow plays again on next start.
	ResetOnboarding(ctx context.Context) (models.Preferences, error)
}

// AppInfoService exposes application metadata to the presentation layer.
type AppInfoService interface {
	// GetAppVersion returns the configured application version string.
	GetAppVersion(ctx context.Context) string
}
