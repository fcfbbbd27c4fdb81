package shardassign

import "github.com/birchmd/bp-shard-assign-poc/types"

// Sentinel errors re-exported from the types package.
//
// Check them with errors.Is; returned errors wrap them with context.
var (
	// ErrInvalidInput is returned for a non-positive shard count or a malformed validator set.
	ErrInvalidInput = types.ErrInvalidInput

	// ErrInsufficientValidators is returned when there are too few validators to occupy every shard.
	ErrInsufficientValidators = types.ErrInsufficientValidators

	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrValidatorSourceRequired is returned when the validator source is nil.
	ErrValidatorSourceRequired = types.ErrValidatorSourceRequired

	// ErrUnknownStrategy is returned when a configured strategy name is not recognized.
	ErrUnknownStrategy = types.ErrUnknownStrategy
)

// IsConfigurationError reports whether err needs operator intervention rather than a retry.
func IsConfigurationError(err error) bool {
	return types.IsConfigurationError(err)
}
