// Package catalog maintains the registry of assignable users.
//
// The catalog owns each user's skill profile, capacity, and current
// workload. All accessors return copies; the only mutation paths are
// Register and Reserve. Every entry satisfies 0 <= workload <= capacity
// at all times, and workloads never decrease.
package catalog

import (
	"fmt"
	"sort"
	"sync"

	"github.com/medha-scaler/triage/types"
)

// DefaultCapacity is applied when a registration carries no positive capacity.
const DefaultCapacity = 5

// entry is the mutable per-user record.
type entry struct {
	skills   map[string]struct{}
	ordered  []string // skills in declaration order, deduplicated
	capacity int
	workload int
	position int // registration sequence, used for deterministic ordering
}

// Catalog is an in-memory user registry safe for concurrent use.
type Catalog struct {
	mu         sync.RWMutex
	defaultCap int
	next       int
	byID       map[string]*entry
}

// New creates an empty catalog.
//
// Parameters:
//   - defaultCapacity: Capacity applied to registrations without one
//     (values < 1 become DefaultCapacity)
//
// Returns:
//   - *Catalog: Initialized catalog with no registered users
func New(defaultCapacity int) *Catalog {
	if defaultCapacity < 1 {
		defaultCapacity = DefaultCapacity
	}

	return &Catalog{defaultCap: defaultCapacity, byID: make(map[string]*entry)}
}

// Register creates or replaces a user profile.
//
// Re-registering an existing user replaces the whole profile and resets
// the workload to zero; the user keeps their original roster position.
// Duplicate skills collapse, declaration order is preserved.
//
// Parameters:
//   - userID: Unique user identifier (must be validated by the caller)
//   - skills: Declared skill set (may be empty)
//   - capacity: Maximum concurrent assignments (values < 1 fall back to
//     the catalog's default capacity)
//
// Returns:
//   - bool: true if an existing profile was replaced
func (c *Catalog) Register(userID string, skills []string, capacity int) bool {
	if capacity < 1 {
		capacity = c.defaultCap
	}

	set := make(map[string]struct{}, len(skills))
	ordered := make([]string, 0, len(skills))
	for _, s := range skills {
		if _, ok := set[s]; ok {
			continue
		}
		set[s] = struct{}{}
		ordered = append(ordered, s)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	prev, replaced := c.byID[userID]
	position := c.next
	if replaced {
		position = prev.position
	} else {
		c.next++
	}

	c.byID[userID] = &entry{
		skills:   set,
		ordered:  ordered,
		capacity: capacity,
		workload: 0,
		position: position,
	}

	return replaced
}

// Profile returns a snapshot of one user.
//
// Parameters:
//   - userID: User to look up
//
// Returns:
//   - types.Profile: Copy of the stored profile (zero value if absent)
//   - bool: true if the user is registered
func (c *Catalog) Profile(userID string) (types.Profile, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.byID[userID]
	if !ok {
		return types.Profile{}, false
	}

	return c.snapshot(userID, e), true
}

// Profiles returns snapshots of all users in roster order.
//
// Returns:
//   - []types.Profile: Copies of every registered profile
func (c *Catalog) Profiles() []types.Profile {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.collect(func(*entry) bool { return true })
}

// Candidates returns snapshots of users with remaining capacity, in roster order.
//
// Saturated users are filtered out here and never reach scoring.
//
// Returns:
//   - []types.Profile: Copies of profiles with Workload < Capacity
func (c *Catalog) Candidates() []types.Profile {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.collect(func(e *entry) bool { return e.workload < e.capacity })
}

// Reserve increments a user's workload by one.
//
// Parameters:
//   - userID: User receiving the assignment
//
// Returns:
//   - error: types.ErrUnknownUser if the user is not registered,
//     types.ErrCapacityExceeded if the user is already saturated
func (c *Catalog) Reserve(userID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.byID[userID]
	if !ok {
		return fmt.Errorf("reserve %q: %w", userID, types.ErrUnknownUser)
	}
	if e.workload >= e.capacity {
		return fmt.Errorf("reserve %q (workload %d, capacity %d): %w",
			userID, e.workload, e.capacity, types.ErrCapacityExceeded)
	}

	e.workload++

	return nil
}

// Workload returns a user's current workload and capacity.
//
// Parameters:
//   - userID: User to look up
//
// Returns:
//   - int: Current workload
//   - int: Capacity
//   - error: types.ErrUnknownUser if the user is not registered
func (c *Catalog) Workload(userID string) (int, int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.byID[userID]
	if !ok {
		return 0, 0, fmt.Errorf("workload %q: %w", userID, types.ErrUnknownUser)
	}

	return e.workload, e.capacity, nil
}

// Position returns a user's roster position for tie-breaking.
//
// Parameters:
//   - userID: User to look up
//
// Returns:
//   - int: Registration sequence number
//   - bool: true if the user is registered
func (c *Catalog) Position(userID string) (int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.byID[userID]
	if !ok {
		return 0, false
	}

	return e.position, true
}

// Len returns the number of registered users.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.byID)
}

// collect gathers matching entries sorted by roster position.
// Caller must hold at least the read lock.
func (c *Catalog) collect(match func(*entry) bool) []types.Profile {
	ids := make([]string, 0, len(c.byID))
	for id, e := range c.byID {
		if match(e) {
			ids = append(ids, id)
		}
	}

	sort.Slice(ids, func(i, j int) bool {
		return c.byID[ids[i]].position < c.byID[ids[j]].position
	})

	profiles := make([]types.Profile, 0, len(ids))
	for _, id := range ids {
		profiles = append(profiles, c.snapshot(id, c.byID[id]))
	}

	return profiles
}

// snapshot copies an entry into a detached Profile.
// Caller must hold at least the read lock.
func (c *Catalog) snapshot(userID string, e *entry) types.Profile {
	skills := make([]string, len(e.ordered))
	copy(skills, e.ordered)

	return types.Profile{
		UserID:   userID,
		Skills:   skills,
		Capacity: e.capacity,
		Workload: e.workload,
	}
}
