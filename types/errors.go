package types

import "errors"

// Sentinel errors for the shard assignment library.
//
// These errors provide type-safe error checking using errors.Is().
// Components wrap them with context using fmt.Errorf("%w: detail", ErrX).
//
// Error Naming Convention:
//   - Use descriptive names with Err prefix
//   - Group by component (Assigner, Strategy, Source)
//   - Use consistent messages across similar error types

// Assignment errors - returned by strategies for degenerate input.
var (
	// ErrInvalidInput is returned for malformed parameters: non-positive shard
	// count, empty validator set, empty or duplicate IDs, stake overflow.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInsufficientValidators is returned when there are fewer validators
	// than the strategy needs to occupy every shard.
	ErrInsufficientValidators = errors.New("insufficient validators")
)

// Assigner errors - returned when building or running an Assigner.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrValidatorSourceRequired is returned when the validator source is nil.
	ErrValidatorSourceRequired = errors.New("validator source is required")

	// ErrUnknownStrategy is returned when a strategy name is not recognized.
	ErrUnknownStrategy = errors.New("unknown assignment strategy")
)

// IsConfigurationError reports whether err is a terminal configuration error.
//
// Assignment is a pure computation: these errors cannot be resolved by retrying
// with the same inputs and need operator intervention (for example a shard count
// misconfigured relative to the validator set size).
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrInsufficientValidators) ||
		errors.Is(err, ErrInvalidConfig) ||
		errors.Is(err, ErrUnknownStrategy)
}
