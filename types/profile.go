package types

// Profile is a snapshot of a registered user.
//
// Profiles returned by the catalog are copies; mutating one does not affect
// the stored entry. Workload never exceeds Capacity and never decreases
// (there is no unassignment operation).
type Profile struct {
	// UserID uniquely identifies the user.
	UserID string `json:"user_id"`

	// Skills is the user's declared skill set, duplicates removed.
	Skills []string `json:"skills"`

	// Capacity is the maximum number of concurrently assigned issues.
	Capacity int `json:"capacity"`

	// Workload is the number of issues currently assigned.
	Workload int `json:"workload"`
}

// HasSkill reports whether the profile declares the given skill.
//
// Returns:
//   - bool: true if skill is present
func (p Profile) HasSkill(skill string) bool {
	for _, s := range p.Skills {
		if s == skill {
			return true
		}
	}

	return false
}

// Remaining returns the number of assignment slots still open.
//
// Returns:
//   - int: Capacity minus Workload (never negative for catalog snapshots)
func (p Profile) Remaining() int {
	return p.Capacity - p.Workload
}

// AtCapacity reports whether the user can accept no further assignments.
//
// Returns:
//   - bool: true if Workload >= Capacity
func (p Profile) AtCapacity() bool {
	return p.Workload >= p.Capacity
}
