package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEntryNotFound is returned when a query or delete targets a journal
	// entry that does not exist in the database.
	ErrEntryNotFound = errors.New("entry was not found")

	// ErrPreferencesNotFound is returned when the preferences row has never
	// been written. The service layer treats this as "use the defaults".
	ErrPreferencesNotFound = errors.New("preferences were not found")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")
)
