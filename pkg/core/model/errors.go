package model

import "errors"

// Sentinel errors shared across the planner core. Callers match them with
// errors.Is; packages wrap them with context via fmt.Errorf("...: %w", ...).
var (
	// ErrDuplicateKey is returned when registering a person or hub whose
	// key already exists.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrNotFound is returned when a person or hub key is unknown.
	ErrNotFound = errors.New("not found")

	// ErrNotConfigured is returned when age intervals, staffing or weekly
	// hours are required but have not been set.
	ErrNotConfigured = errors.New("not configured")

	// ErrInvalidConfiguration is returned for malformed breakpoints,
	// wrong-length hours or out-of-range hour values.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInvalidArgument is returned for out-of-range arguments such as a
	// weekday index outside [0,6].
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNoData is returned by statistics computed over an empty
	// denominator.
	ErrNoData = errors.New("no data")
)
