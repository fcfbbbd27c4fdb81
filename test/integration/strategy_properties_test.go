//go:build integration
// +build integration

package integration_test

import (
	"fmt"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/birchmd/bp-shard-assign-poc/strategy"
	"github.com/birchmd/bp-shard-assign-poc/test/testutil"
	"github.com/birchmd/bp-shard-assign-poc/types"
)

// stakeSpread returns max - min of the per-shard stake sums.
func stakeSpread(result *types.AssignmentResult) uint256.Int {
	sums := result.StakeSums()
	lo, hi := sums[0], sums[0]
	for i := 1; i < len(sums); i++ {
		if sums[i].Lt(&lo) {
			lo = sums[i]
		}
		if sums[i].Gt(&hi) {
			hi = sums[i]
		}
	}

	var spread uint256.Int
	spread.Sub(&hi, &lo)

	return spread
}

func maxStake(validators []types.Validator) uint256.Int {
	var m uint256.Int
	for i := range validators {
		if validators[i].Stake.Gt(&m) {
			m = validators[i].Stake
		}
	}

	return m
}

// TestGreedy_RandomSets checks greedy placement over many random validator sets.
//
// The final heaviest shard received its last validator while it was the
// lightest, so the stake spread never exceeds the largest single stake.
func TestGreedy_RandomSets(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	t.Parallel()

	greedy := strategy.NewGreedy()

	for seed := uint64(1); seed <= 200; seed++ {
		n := int(seed%97) + 8
		numShards := int(seed%7) + 1
		validators := testutil.RandomValidators(seed, n, 1, 1_000_000)

		t.Run(fmt.Sprintf("seed=%d/n=%d/shards=%d", seed, n, numShards), func(t *testing.T) {
			result, err := greedy.Assign(validators, numShards)
			require.NoError(t, err)

			testutil.AssertPartition(t, validators, result)
			testutil.AssertStakeSums(t, validators, result)

			spread := stakeSpread(result)
			largest := maxStake(validators)
			require.False(t, spread.Gt(&largest), "spread %s exceeds largest stake %s", spread.Dec(), largest.Dec())

			shuffled, err := greedy.Assign(testutil.Shuffled(seed, validators), numShards)
			require.NoError(t, err)
			testutil.AssertSameAssignment(t, result, shuffled)
		})
	}
}

func TestSeatFilling_RandomSets(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	t.Parallel()

	for seed := uint64(1); seed <= 200; seed++ {
		n := int(seed%31) + 4
		numShards := int(seed%5) + 1
		minSeats := int(seed%4) + 1
		validators := testutil.RandomValidators(seed, n, 1, 1_000_000)
		seats := strategy.NewSeatFilling(strategy.WithMinSeats(minSeats))

		t.Run(fmt.Sprintf("seed=%d/n=%d/shards=%d/seats=%d", seed, n, numShards, minSeats), func(t *testing.T) {
			result, err := seats.Assign(validators, numShards)
			require.NoError(t, err)

			testutil.AssertMinOccupancy(t, result, minSeats)
			testutil.AssertNoDuplicatesWithinShard(t, result)
			testutil.AssertStakeSums(t, validators, result)

			for _, v := range validators {
				_, ok := result.ShardOf(v.ID)
				require.True(t, ok, "validator %s unassigned", v.ID)
			}

			if n >= numShards*minSeats {
				testutil.AssertPartition(t, validators, result)
			}

			shuffled, err := seats.Assign(testutil.Shuffled(seed, validators), numShards)
			require.NoError(t, err)
			testutil.AssertSameAssignment(t, result, shuffled)
		})
	}
}

func TestRoundRobin_RandomSets(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	t.Parallel()

	rr := strategy.NewRoundRobin()

	for seed := uint64(1); seed <= 100; seed++ {
		n := int(seed%53) + 10
		numShards := int(seed%9) + 1
		validators := testutil.RandomValidators(seed, n, 0, 1<<40)

		t.Run(fmt.Sprintf("seed=%d/n=%d/shards=%d", seed, n, numShards), func(t *testing.T) {
			result, err := rr.Assign(validators, numShards)
			require.NoError(t, err)

			testutil.AssertPartition(t, validators, result)
			testutil.AssertStakeSums(t, validators, result)
			testutil.AssertCountSpread(t, result, 1)
		})
	}
}
