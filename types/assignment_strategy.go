package types

// AssignmentStrategy calculates shard assignments for a validator set.
//
// Strategies implement different placement algorithms:
//   - Greedy: Lightest-stake-shard placement in canonical order (default)
//   - SeatFilling: Minimum seats per shard first, then lightest-stake placement
//   - RoundRobin: Count-only distribution
//
// Strategy implementations must:
//   - Be deterministic (same validator set in any order → same output)
//   - Use exact integer arithmetic for stake comparisons
//   - Be stateless (no side effects, safe for concurrent use)
//   - Return no partial result on error
type AssignmentStrategy interface {
	// Name returns the strategy's configuration name (e.g. "greedy").
	Name() string

	// Assign calculates the shard assignment for the given validators.
	//
	// Parameters:
	//   - validators: Validator set for the epoch (any order)
	//   - numShards: Number of shards fixed by protocol configuration
	//
	// Returns:
	//   - *AssignmentResult: One ShardAssignment per shard
	//   - error: ErrInvalidInput or ErrInsufficientValidators (wrapped)
	Assign(validators []Validator, numShards int) (*AssignmentResult, error)
}
