package store

import (
	"context"

	"github.com/MKhiriev/go-day-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// EntryRepository is the low-level journal entry repository.
type EntryRepository interface {
	// SaveEntry inserts a journal entry.
	SaveEntry(ctx context.Context, entry models.Entry) error

	// GetEntries returns entries newest first. day narrows the result to a
	// single YYYY-MM-DD day when non-empty; limit caps the result when
	// positive.
	GetEntries(ctx context.Context, day string, limit int) ([]models.Entry, error)

	// DeleteEntry removes an entry by ID. Returns [ErrEntryNotFound] when
	// no row matches.
	DeleteEntry(ctx context.Context, id string) error

	// GetDayCounts returns per-day entry counts, newest day first. from and
	// to bound the range inclusively when non-empty.
	GetDayCounts(ctx context.Context, from, to string) ([]models.DayCount, error)
}

// PrefsRepository persists the single per-installation preferences record.
type PrefsRepository interface {
	// GetPreferences loads the stored preferences. Returns
	// [ErrPreferencesNotFound] when nothing has been saved yet.
	GetPreferences(ctx context.Context) (models.Preferences, error)

	// SavePreferences writes the preferences, replacing any previous value.
	SavePreferences(ctx context.Context, prefs models.Preferences) error
}
