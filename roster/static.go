package roster

import (
	"context"
	"sync"

	"github.com/medha-scaler/triage/types"
)

// Static implements a roster source with a fixed list of members.
type Static struct {
	mu      sync.RWMutex
	members []string
}

var _ types.RosterSource = (*Static)(nil)

// NewStatic creates a new static roster source.
//
// The source returns a fixed list of user IDs that only changes through
// Update. Useful for testing and scenarios where the assignable subset
// is managed by the embedding application.
//
// Parameters:
//   - members: Fixed list of user IDs
//
// Returns:
//   - *Static: Initialized static source
//
// Example:
//
//	src := roster.NewStatic([]string{"alice", "bob"})
//	eng, err := triage.New(cfg, triage.WithRosterSource(src))
//	if err != nil { /* handle */ }
func NewStatic(members []string) *Static {
	s := &Static{}
	s.Update(members)

	return s
}

// Members returns the static list of member IDs.
//
// Returns:
//   - []string: Copy of the fixed member list
//   - error: Always nil (never fails)
func (s *Static) Members(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]string, len(s.members))
	copy(result, s.members)

	return result, nil
}

// Update replaces the member list.
//
// This allows the static source to simulate roster changes, which is
// useful for testing on-call rotations or membership churn.
//
// Parameters:
//   - members: New list of user IDs
//
// Example:
//
//	src := roster.NewStatic([]string{"alice"})
//	// Later: bob joins the rotation
//	src.Update([]string{"alice", "bob"})
func (s *Static) Update(members []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.members = make([]string, len(members))
	copy(s.members, members)
}
