package strategy

import "github.com/birchmd/bp-shard-assign-poc/types"

// NameRoundRobin is the configuration name of the RoundRobin strategy.
const NameRoundRobin = "round-robin"

// RoundRobin implements simple round-robin shard assignment.
type RoundRobin struct{}

var _ types.AssignmentStrategy = (*RoundRobin)(nil)

// NewRoundRobin creates a new round-robin strategy.
//
// The strategy distributes validators evenly across shards by count in a
// simple round-robin fashion. Stake is ignored, which makes it a useful
// baseline when comparing balance reports.
//
// Returns:
//   - *RoundRobin: Initialized round-robin strategy
//
// Example:
//
//	assigner, err := shardassign.NewAssigner(&cfg, src, shardassign.WithStrategy(strategy.NewRoundRobin()))
func NewRoundRobin() *RoundRobin {
	return &RoundRobin{}
}

// Name returns "round-robin".
func (rr *RoundRobin) Name() string {
	return NameRoundRobin
}

// Assign calculates shard assignments using round-robin distribution.
//
// The algorithm:
//  1. Sort validators by stake descending, ties by ID ascending
//  2. Place sorted validator i on shard i mod numShards
//
// Parameters:
//   - validators: Validator set (any order, unique non-empty IDs)
//   - numShards: Number of shards, 1 <= numShards <= len(validators)
//
// Returns:
//   - *types.AssignmentResult: Partition with per-shard counts differing by at most one
//   - error: ErrInvalidInput or ErrInsufficientValidators (wrapped)
func (rr *RoundRobin) Assign(validators []types.Validator, numShards int) (*types.AssignmentResult, error) {
	sorted, total, err := prepare(validators, numShards)
	if err != nil {
		return nil, err
	}

	result := types.NewAssignmentResult(rr.Name(), numShards)
	result.TotalStake = total

	for i, v := range sorted {
		result.Place(i%numShards, v)
	}

	return result, nil
}
