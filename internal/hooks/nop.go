// Package hooks provides default Hooks implementations.
package hooks

import (
	"context"

	"github.com/birchmd/bp-shard-assign-poc/types"
)

// NopHooks implements Hooks with no-op callbacks.
//
// This is the default implementation used when no custom hooks are provided,
// eliminating the need for nil checks throughout the codebase.
type NopHooks struct{}

// Compile-time assertions that NopHooks implements hook callbacks.
var (
	_ func(context.Context, *types.AssignmentResult, types.BalanceReport) error = (*NopHooks)(nil).OnAssigned
	_ func(context.Context, error) error                                       = (*NopHooks)(nil).OnError
)

// NewNop creates a new no-op hooks implementation.
func NewNop() types.Hooks {
	h := &NopHooks{}
	return types.Hooks{
		OnAssigned: h.OnAssigned,
		OnError:    h.OnError,
	}
}

// WithDefaults returns a copy of h where every nil callback is replaced by a no-op.
//
// A nil h yields NewNop().
func WithDefaults(h *types.Hooks) types.Hooks {
	defaults := NewNop()
	if h == nil {
		return defaults
	}

	out := *h
	if out.OnAssigned == nil {
		out.OnAssigned = defaults.OnAssigned
	}
	if out.OnError == nil {
		out.OnError = defaults.OnError
	}

	return out
}

// OnAssigned is a no-op implementation.
func (h *NopHooks) OnAssigned(_ context.Context, _ *types.AssignmentResult, _ types.BalanceReport) error {
	return nil
}

// OnError is a no-op implementation.
func (h *NopHooks) OnError(_ context.Context, _ error) error {
	return nil
}
