// Package hooks provides hook utilities for the triage library.
package hooks

import (
	"context"

	"github.com/medha-scaler/triage/types"
)

// NopHooks implements Hooks with no-op callbacks.
//
// This is the default implementation used when no custom hooks are provided,
// eliminating the need for nil checks throughout the codebase.
type NopHooks struct{}

// Compile-time assertions that NopHooks implements hook callbacks.
var (
	_ func(context.Context, string, types.Decision) error = (*NopHooks)(nil).OnAssigned
	_ func(context.Context, types.Decision) error         = (*NopHooks)(nil).OnUnassignable
	_ func(context.Context, types.Profile) error          = (*NopHooks)(nil).OnUserRegistered
)

// NewNop creates a new no-op hooks implementation.
//
// Returns:
//   - types.Hooks: Hooks with no-op implementations
func NewNop() types.Hooks {
	h := &NopHooks{}
	return types.Hooks{
		OnAssigned:       h.OnAssigned,
		OnUnassignable:   h.OnUnassignable,
		OnUserRegistered: h.OnUserRegistered,
	}
}

// OnAssigned is a no-op implementation.
func (h *NopHooks) OnAssigned(ctx context.Context, userID string, decision types.Decision) error {
	return nil
}

// OnUnassignable is a no-op implementation.
func (h *NopHooks) OnUnassignable(ctx context.Context, decision types.Decision) error {
	return nil
}

// OnUserRegistered is a no-op implementation.
func (h *NopHooks) OnUserRegistered(ctx context.Context, profile types.Profile) error {
	return nil
}
