package strategy

import "github.com/birchmd/bp-shard-assign-poc/types"

// Re-exported sentinel errors for callers that only import this package.
var (
	// ErrInvalidInput indicates a non-positive shard count or a malformed validator set.
	ErrInvalidInput = types.ErrInvalidInput

	// ErrInsufficientValidators indicates too few validators to occupy every shard.
	ErrInsufficientValidators = types.ErrInsufficientValidators
)
