package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-day-keeper/internal/logger"
	"github.com/MKhiriev/go-day-keeper/models"
)

type prefsRepository struct {
	*DB
	logger *logger.Logger
}

func NewPrefsRepository(db *DB, logger *logger.Logger) PrefsRepository {
	return &prefsRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *prefsRepository) GetPreferences(ctx context.Context) (models.Preferences, error) {
	log := logger.FromContext(ctx)

	var prefs models.Preferences
	row := r.DB.QueryRowContext(ctx, getPreferences)

	scanErr := row.Scan(
		&prefs.DarkMode,
		&prefs.OnboardingSeen,
		&prefs.DisplayName,
	)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return models.Preferences{}, ErrPreferencesNotFound
	}
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "prefsRepository.GetPreferences").
			Msg("failed to scan preferences row")
		return models.Preferences{}, fmt.Errorf("failed to scan preferences row: %w", scanErr)
	}

	return prefs, nil
}

func (r *prefsRepository) SavePreferences(ctx context.Context, prefs models.Preferences) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, savePreferences,
		prefs.DarkMode,
		prefs.OnboardingSeen,
		prefs.DisplayName,
	)
	if err != nil {
		log.Err(err).
			Str("func", "prefsRepository.SavePreferences").
			Msg("failed to execute upsert for preferences")
		return fmt.Errorf("failed to save preferences: %w", err)
	}

	return nil
}
