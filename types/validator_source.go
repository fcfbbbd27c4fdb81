package types

import "context"

// ValidatorSource provides the active validator set for the current epoch.
//
// Implementations can query various backends:
//   - Static: fixed list for testing
//   - File: YAML validator-set file
//   - Custom: staking contract, node RPC, ...
//
// The returned set must already be frozen for the epoch: the Assigner
// calls ListValidators once per Assign call.
type ValidatorSource interface {
	// ListValidators returns the validators active in the current epoch.
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout
	//
	// Returns:
	//   - []Validator: Validator set (any order)
	//   - error: Discovery error (nil on success)
	ListValidators(ctx context.Context) ([]Validator, error)
}
