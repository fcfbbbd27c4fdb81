package shardassign

import "github.com/birchmd/bp-shard-assign-poc/types"

// Re-export types from the types package.
//
// This file provides a stable public API for the library's core types and
// interfaces. It uses type aliases to re-export definitions from the `types`
// subpackage, which contains the actual implementations.
//
// This pattern avoids import cycles by allowing subpackages such as strategy
// and balance to depend on `types` without depending on the root package,
// while still providing a convenient `shardassign.Validator`,
// `shardassign.Logger`, etc. for users.
type (
	Validator        = types.Validator
	ShardAssignment  = types.ShardAssignment
	AssignmentResult = types.AssignmentResult
	BalanceReport    = types.BalanceReport
	StakeStats       = types.StakeStats
	CountStats       = types.CountStats
)

// Re-export interfaces from the types package for convenience.
type (
	AssignmentStrategy = types.AssignmentStrategy
	ValidatorSource    = types.ValidatorSource
	MetricsCollector   = types.MetricsCollector
	Logger             = types.Logger
	Hooks              = types.Hooks
)

// NewValidator creates a validator with a stake that fits in 64 bits.
func NewValidator(id string, stake uint64) Validator {
	return types.NewValidator(id, stake)
}
