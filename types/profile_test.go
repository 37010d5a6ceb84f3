package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProfileHasSkill(t *testing.T) {
	t.Parallel()

	p := Profile{UserID: "alice", Skills: []string{"frontend", "ui", "senior"}}
	require.True(t, p.HasSkill("ui"))
	require.False(t, p.HasSkill("backend"))

	// empty skill set
	p2 := Profile{UserID: "drew"}
	require.False(t, p2.HasSkill("anything"))
}

func TestProfileRemaining(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		p    Profile
		want int
	}{
		{"fresh", Profile{Capacity: 5, Workload: 0}, 5},
		{"partial", Profile{Capacity: 5, Workload: 3}, 2},
		{"full", Profile{Capacity: 4, Workload: 4}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.p.Remaining())
		})
	}
}

func TestProfileAtCapacity(t *testing.T) {
	t.Parallel()

	require.False(t, Profile{Capacity: 3, Workload: 2}.AtCapacity())
	require.True(t, Profile{Capacity: 3, Workload: 3}.AtCapacity())
}

func TestDecisionAssigned(t *testing.T) {
	t.Parallel()

	assigned := Decision{Labels: []string{"bug"}, Assignee: "bob", Score: 0.85}
	require.True(t, assigned.Assigned())

	unassigned := Decision{Labels: []string{"general"}}
	require.False(t, unassigned.Assigned())
}
