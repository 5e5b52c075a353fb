package models

// LaunchConfig is the JSON document served by the launch gate.
//
// The document is a single optional field: a non-empty URL asks the client
// to open that destination instead of its own interface; null, absent, or
// empty all mean "run locally".
type LaunchConfig struct {
	// URL is the optional redirect destination.
	URL string `json:"url,omitempty"`
}
