// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	saveEntry = `
		INSERT INTO entries (
			id,
			day,
			title,
			note,
			created_at,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6);`

	deleteEntry = `
		DELETE FROM entries
		WHERE id = $1;`

	getPreferences = `
		SELECT
			dark_mode,
			onboarding_seen,
			display_name
		FROM preferences
		WHERE id = 1;`

	savePreferences = `
		INSERT INTO preferences (
			id,
			dark_mode,
			onboarding_seen,
			display_name
		) VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			dark_mode       = excluded.dark_mode,
			onboarding_seen = excluded.onboarding_seen,
			display_name    = excluded.display_name;`
)
