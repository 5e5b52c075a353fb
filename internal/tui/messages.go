package tui

import (
	"github.com/MKhiriev/go-day-keeper/models"
)

// navStateMsg carries one navigation state from the resolver's update
// channel into the bubbletea loop.
type navStateMsg struct {
	state models.NavigationState
}

type prefsLoadedMsg struct {
	prefs models.Preferences
	err   error
}

type prefsSavedMsg struct {
	prefs models.Preferences
	err   error
}

type entriesLoadedMsg struct {
	entries []models.Entry
	err     error
}

type entrySavedMsg struct {
	err error
}

type entryDeletedMsg struct {
	err error
}

type statsLoadedMsg struct {
	stats models.JournalStats
	err   error
}

type calendarLoadedMsg struct {
	month  string
	counts []models.DayCount
	err    error
}

type copiedMsg struct {
	err error
}
