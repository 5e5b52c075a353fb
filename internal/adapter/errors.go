package adapter

import "errors"

var (
	// ErrDestinationUnreachable wraps every way a destination probe can
	// fail: transport errors and non-success statuses alike.
	ErrDestinationUnreachable = errors.New("destination unreachable")
)
