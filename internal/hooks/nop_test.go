package hooks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/medha-scaler/triage/types"
)

func TestNewNop(t *testing.T) {
	hooks := NewNop()

	require.NotNil(t, hooks.OnAssigned)
	require.NotNil(t, hooks.OnUnassignable)
	require.NotNil(t, hooks.OnUserRegistered)
}

func TestNopHooks_OnAssigned(t *testing.T) {
	hooks := NewNop()
	ctx := context.Background()

	decision := types.Decision{
		Labels:   []string{"bug", "urgent"},
		Assignee: "alice",
		Score:    0.53,
	}

	err := hooks.OnAssigned(ctx, "alice", decision)
	require.NoError(t, err)
}

func TestNopHooks_OnUnassignable(t *testing.T) {
	hooks := NewNop()
	ctx := context.Background()

	err := hooks.OnUnassignable(ctx, types.Decision{Labels: []string{"general"}})
	require.NoError(t, err)
}

func TestNopHooks_OnUserRegistered(t *testing.T) {
	hooks := NewNop()
	ctx := context.Background()

	profile := types.Profile{
		UserID:   "bob",
		Skills:   []string{"backend", "api"},
		Capacity: 4,
	}

	err := hooks.OnUserRegistered(ctx, profile)
	require.NoError(t, err)
}
