package models

// JournalStats aggregates journal activity for the stats tab.
type JournalStats struct {
	// TotalEntries is the number of entries ever recorded.
	TotalEntries int `json:"total_entries"`
	// ActiveDays is the number of distinct days with at least one entry.
	ActiveDays int `json:"active_days"`
	// Last7Days is the number of entries recorded in the last seven days,
	// today included.
	Last7Days int `json:"last_7_days"`
	// CurrentStreak is the length of the unbroken run of consecutive days
	// with entries ending today. A day without entries breaks the run; an
	// empty today does not, as long as yesterday has entries.
	CurrentStreak int `json:"current_streak"`
}
