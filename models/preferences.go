// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Preferences holds the per-installation settings persisted between runs.
type Preferences struct {
	// DarkMode selects the dark color palette when true.
	DarkMode bool `json:"dark_mode"`

	// OnboardingSeen records whether the first-run flow has completed.
	OnboardingSeen bool `json:"onboarding_seen"`

	// DisplayName is the name shown in the interface greeting.
	DisplayName string `json:"display_name"`
}

// DefaultPreferences returns the settings used before anything is persisted.
func DefaultPreferences() Preferences {
	return Preferences{
		DarkMode: true,
	}
}
