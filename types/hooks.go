package types

import "context"

// Hooks defines callbacks for Engine lifecycle events.
//
// All hooks are optional and called asynchronously in background goroutines
// to avoid blocking the assignment path. Hooks receive the context of the
// operation that triggered them.
//
// IMPORTANT: Hook execution behavior:
//   - Hooks run concurrently and may outlive the triggering call
//   - Hook errors are logged but don't fail engine operations
//
// Best practices for hook implementation:
//   - Complete quickly (< 1 second recommended)
//   - Respect context cancellation
//   - Don't block on long I/O operations
//   - Handle errors gracefully (return error for logging)
//
// Example:
//
//	hooks := &triage.Hooks{
//	    OnAssigned: func(ctx context.Context, userID string, decision triage.Decision) error {
//	        select {
//	        case <-ctx.Done():
//	            return ctx.Err()
//	        case notifyChan <- decision:
//	            return nil
//	        case <-time.After(500 * time.Millisecond):
//	            return errors.New("notify send timeout")
//	        }
//	    },
//	}
type Hooks struct {
	// OnAssigned is called after an issue is assigned to a user.
	OnAssigned func(ctx context.Context, userID string, decision Decision) error

	// OnUnassignable is called when an issue could not be assigned
	// because no registered user had remaining capacity.
	OnUnassignable func(ctx context.Context, decision Decision) error

	// OnUserRegistered is called after a user profile is created or replaced.
	OnUserRegistered func(ctx context.Context, profile Profile) error
}
