package strategy

import (
	"fmt"

	"github.com/holiman/uint256"

	"github.com/birchmd/bp-shard-assign-poc/types"
)

// treeDegree is the btree degree used for shard load ordering.
const treeDegree = 8

// checkShardCount rejects non-positive shard counts.
func checkShardCount(numShards int) error {
	if numShards <= 0 {
		return fmt.Errorf("%w: shard count must be positive, got %d", types.ErrInvalidInput, numShards)
	}

	return nil
}

// prepare validates input for partitioning strategies and returns the validators in canonical order.
//
// Partitioning strategies need one validator per shard, so numShards must not exceed
// the validator count.
//
// Returns:
//   - []types.Validator: Sorted copy of validators
//   - uint256.Int: Exact total stake
//   - error: ErrInvalidInput or ErrInsufficientValidators (wrapped)
func prepare(validators []types.Validator, numShards int) ([]types.Validator, uint256.Int, error) {
	if err := checkShardCount(numShards); err != nil {
		return nil, uint256.Int{}, err
	}

	total, err := types.CheckValidators(validators)
	if err != nil {
		return nil, uint256.Int{}, err
	}

	if numShards > len(validators) {
		return nil, uint256.Int{}, fmt.Errorf("%w: %d validators cannot occupy %d shards",
			types.ErrInsufficientValidators, len(validators), numShards)
	}

	return types.SortValidators(validators), total, nil
}
