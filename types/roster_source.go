package types

import "context"

// RosterSource provides the set of user IDs eligible for assignment.
//
// Implementations can query various backends:
//   - Static: fixed list managed by the embedding application
//   - Custom: on-call schedules, team membership services, feature flags
//
// A source narrows the assignable roster; it does not register users.
// IDs returned by the source that are unknown to the catalog are ignored.
type RosterSource interface {
	// Members returns the user IDs currently eligible for assignment.
	//
	// Implementations should:
	//   - Return consistent results for the same backend state
	//   - Handle context cancellation gracefully
	//   - Return errors for transient failures
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout
	//
	// Returns:
	//   - []string: Eligible user IDs
	//   - error: Lookup error (nil on success)
	Members(ctx context.Context) ([]string, error)
}
