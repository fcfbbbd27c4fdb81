package testutil

import (
	"testing"

	"github.com/holiman/uint256"

	"github.com/birchmd/bp-shard-assign-poc/types"
)

// AssertPartition verifies that every input validator appears on exactly one shard
// and that nothing else was placed.
//
// Parameters:
//   - t: testing handle
//   - validators: the input validator set
//   - result: assignment to check
func AssertPartition(t *testing.T, validators []types.Validator, result *types.AssignmentResult) {
	t.Helper()

	expected := make(map[string]struct{}, len(validators))
	for _, v := range validators {
		expected[v.ID] = struct{}{}
	}

	seen := make(map[string]int, len(validators))
	for _, shard := range result.Shards {
		for _, v := range shard.Validators {
			if _, ok := expected[v.ID]; !ok {
				t.Fatalf("shard %d holds unknown validator %q", shard.Shard, v.ID)
			}
			if prev, ok := seen[v.ID]; ok {
				t.Fatalf("validator %q assigned to shards %d and %d", v.ID, prev, shard.Shard)
			}
			seen[v.ID] = shard.Shard
		}
	}

	if len(seen) != len(expected) {
		t.Fatalf("assigned validator count (%d) does not equal input size (%d)", len(seen), len(expected))
	}
}

// AssertNoDuplicatesWithinShard verifies that no shard holds the same validator twice.
func AssertNoDuplicatesWithinShard(t *testing.T, result *types.AssignmentResult) {
	t.Helper()

	for _, shard := range result.Shards {
		seen := make(map[string]struct{}, len(shard.Validators))
		for _, v := range shard.Validators {
			if _, ok := seen[v.ID]; ok {
				t.Fatalf("validator %q appears twice in shard %d", v.ID, shard.Shard)
			}
			seen[v.ID] = struct{}{}
		}
	}
}

// AssertMinOccupancy verifies that every shard holds at least minSeats validators.
func AssertMinOccupancy(t *testing.T, result *types.AssignmentResult, minSeats int) {
	t.Helper()

	for _, shard := range result.Shards {
		if len(shard.Validators) < minSeats {
			t.Fatalf("shard %d holds %d validators, want at least %d", shard.Shard, len(shard.Validators), minSeats)
		}
	}
}

// AssertStakeSums verifies that each shard's reported stake equals the sum of
// its validators' stakes, and that the result's total equals the input total.
func AssertStakeSums(t *testing.T, validators []types.Validator, result *types.AssignmentResult) {
	t.Helper()

	var inputTotal uint256.Int
	for _, v := range validators {
		inputTotal.Add(&inputTotal, &v.Stake)
	}
	if !result.TotalStake.Eq(&inputTotal) {
		t.Fatalf("result total stake %s does not equal input total %s", result.TotalStake.Dec(), inputTotal.Dec())
	}

	for _, shard := range result.Shards {
		var sum uint256.Int
		for _, v := range shard.Validators {
			sum.Add(&sum, &v.Stake)
		}
		if !shard.Stake.Eq(&sum) {
			t.Fatalf("shard %d reports stake %s, validators sum to %s", shard.Shard, shard.Stake.Dec(), sum.Dec())
		}
	}
}

// AssertCountSpread verifies that per-shard validator counts differ by at most maxSpread.
func AssertCountSpread(t *testing.T, result *types.AssignmentResult, maxSpread int) {
	t.Helper()

	counts := result.Counts()
	if len(counts) == 0 {
		return
	}

	lo, hi := counts[0], counts[0]
	for _, c := range counts[1:] {
		lo = min(lo, c)
		hi = max(hi, c)
	}

	if hi-lo > maxSpread {
		t.Fatalf("count spread %d exceeds %d (counts %v)", hi-lo, maxSpread, counts)
	}
}

// AssertSameAssignment verifies that two results place identical validators on identical shards.
func AssertSameAssignment(t *testing.T, want, got *types.AssignmentResult) {
	t.Helper()

	if want.NumShards() != got.NumShards() {
		t.Fatalf("shard count differs: %d vs %d", want.NumShards(), got.NumShards())
	}

	for i := range want.Shards {
		w, g := want.Shards[i].IDs(), got.Shards[i].IDs()
		if len(w) != len(g) {
			t.Fatalf("shard %d differs: %v vs %v", i, w, g)
		}
		for j := range w {
			if w[j] != g[j] {
				t.Fatalf("shard %d differs: %v vs %v", i, w, g)
			}
		}
	}

	if want.Fingerprint() != got.Fingerprint() {
		t.Fatalf("fingerprint differs: %x vs %x", want.Fingerprint(), got.Fingerprint())
	}
}
