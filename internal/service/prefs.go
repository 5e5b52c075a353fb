package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-day-keeper/internal/store"
	"github.com/MKhiriev/go-day-keeper/models"
)

type prefsService struct {
	repository store.PrefsRepository
}

// NewPrefsService creates a PrefsService backed by repository.
func NewPrefsService(repository store.PrefsRepository) PrefsService {
	return &prefsService{repository: repository}
}

// Get implements PrefsService. A missing preferences row is not an error:
// it means the app runs with [models.DefaultPreferences].
func (s *prefsService) Get(ctx context.Context) (models.Preferences, error) {
	prefs, err := s.repository.GetPreferences(ctx)
	if errors.Is(err, store.ErrPreferencesNotFound) {
		return models.DefaultPreferences(), nil
	}
	if err != nil {
		return models.Preferences{}, fmt.Errorf("get preferences: %w", err)
	}
	return prefs, nil
}

func (s *prefsService) SetDarkMode(ctx context.Context, dark bool) (models.Preferences, error) {
	return s.update(ctx, func(prefs *models.Preferences) {
		prefs.DarkMode = dark
	})
}

func (s *prefsService) SetDisplayName(ctx context.Context, name string) (models.Preferences, error) {
	return s.update(ctx, func(prefs *models.Preferences) {
		prefs.DisplayName = strings.TrimSpace(name)
	})
}

func (s *prefsService) CompleteOnboarding(ctx context.Context, displayName string) (models.Preferences, error) {
	return s.update(ctx, func(prefs *models.Preferences) {
		prefs.DisplayName = strings.TrimSpace(displayName)
		prefs.OnboardingSeen = true
	})
}

func (s *prefsService) ResetOnboarding(ctx context.Context) (models.Preferences, error) {
	return s.update(ctx, func(prefs *models.Preferences) {
		prefs.OnboardingSeen = false
	})
}

// update loads the current preferences, applies change and persists the
// result as one read-modify-write step, returning what was written.
func (s *prefsService) update(ctx context.Context, change func(*models.Preferences)) (models.Preferences, error) {
	prefs, err := s.Get(ctx)
	if err != nil {
		return models.Preferences{}, err
	}

	change(&prefs)

	if err := s.repository.SavePreferences(ctx, prefs); err != nil {
		return models.Preferences{}, fmt.Errorf("save preferences: %w", err)
	}
	return prefs, nil
}
