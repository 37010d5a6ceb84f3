package triage

import "github.com/medha-scaler/triage/types"

// Sentinel errors returned by the Engine.
//
// These alias the sentinels defined in the types package so that callers
// importing only the root package can match them with errors.Is.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrInvalidUserID is returned when a user ID is empty or malformed.
	ErrInvalidUserID = types.ErrInvalidUserID

	// ErrRosterSource is returned when the configured roster source fails.
	ErrRosterSource = types.ErrRosterSource

	// ErrUnknownUser is returned when an operation references an unregistered user.
	ErrUnknownUser = types.ErrUnknownUser

	// ErrCapacityExceeded is returned when a reservation would push a user's
	// workload past capacity.
	ErrCapacityExceeded = types.ErrCapacityExceeded
)
