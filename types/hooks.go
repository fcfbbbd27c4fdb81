package types

import "context"

// Hooks defines callbacks for Assigner events.
//
// All hooks are optional and called synchronously after the assignment has been
// computed, so they observe but never alter the result.
//
// Hook execution behavior:
//   - Hook errors are logged but don't fail the assignment
//   - The context passed to hooks is the caller's context
//
// Example:
//
//	hooks := &shardassign.Hooks{
//	    OnAssigned: func(ctx context.Context, result *shardassign.AssignmentResult, report shardassign.BalanceReport) error {
//	        return store.Save(ctx, epoch, result)
//	    },
//	}
type Hooks struct {
	// OnAssigned is called after a successful assignment with its balance report.
	OnAssigned func(ctx context.Context, result *AssignmentResult, report BalanceReport) error

	// OnError is called when an assignment fails.
	OnError func(ctx context.Context, err error) error
}
