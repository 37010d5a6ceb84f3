package types

import "errors"

// Sentinel errors for the triage library.
//
// These errors provide type-safe error checking using errors.Is() and errors.As().
// All components should use these sentinel errors for known error conditions
// and wrap external errors with context using fmt.Errorf("%s: %w", msg, err).
//
// Error Naming Convention:
//   - Use descriptive names with Err prefix
//   - Group by component (Engine, Catalog, etc.)
//   - Use consistent messages across similar error types

// Engine errors - Public API errors returned by the Engine.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidUserID is returned when a user ID is empty or malformed.
	ErrInvalidUserID = errors.New("invalid user ID")

	// ErrRosterSource is returned when the configured roster source fails.
	ErrRosterSource = errors.New("roster source failed")
)

// Catalog errors - Errors surfaced by the user catalog.
var (
	// ErrUnknownUser is returned when an operation references an unregistered user.
	ErrUnknownUser = errors.New("unknown user")

	// ErrCapacityExceeded is returned when a reservation would push a user's
	// workload past capacity. The engine pre-filters saturated users under
	// its own lock, so seeing this error indicates a logic bug or an
	// out-of-band capacity change.
	ErrCapacityExceeded = errors.New("capacity exceeded")
)
