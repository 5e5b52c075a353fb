package models

import "time"

// DayFormat is the layout used for Entry.Day values.
const DayFormat = "2006-01-02"

// Entry represents a single journal record.
// One day may hold any number of entries.
type Entry struct {
	// ID is the unique identifier of the entry (UUID string).
	ID string `json:"id"`

	// Day is the journal day the entry belongs to,
	// formatted as [DayFormat].
	Day string `json:"day"`

	// Title is the short headline of the entry.
	Title string `json:"title"`

	// Note is the free-form body text.
	Note string `json:"note"`

	// CreatedAt is the timestamp when the entry was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last modification.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Entry model.
func (e *Entry) TableName() string {
	return "entries"
}

// DayCount is the number of entries recorded on one day.
// Used by the calendar and stats views.
type DayCount struct {
	// Day is the journal day, formatted as [DayFormat].
	Day string `json:"day"`

	// Count is the number of entries on that day.
	Count int `json:"count"`
}
