package strategy

import (
	"slices"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/birchmd/bp-shard-assign-poc/internal/logger"
	"github.com/birchmd/bp-shard-assign-poc/test/testutil"
	shardtest "github.com/birchmd/bp-shard-assign-poc/testing"
	"github.com/birchmd/bp-shard-assign-poc/types"
)

func stakesOf(result *types.AssignmentResult) []uint64 {
	out := make([]uint64, 0, result.NumShards())
	for _, s := range result.Shards {
		out = append(out, s.Stake.Uint64())
	}

	return out
}

func idsOf(result *types.AssignmentResult) [][]string {
	out := make([][]string, 0, result.NumShards())
	for _, s := range result.Shards {
		out = append(out, s.IDs())
	}

	return out
}

func TestGreedy_Name(t *testing.T) {
	require.Equal(t, "greedy", NewGreedy().Name())
}

func TestGreedy_Scenarios(t *testing.T) {
	g := NewGreedy(WithGreedyLogger(logger.NewTest(t)))

	t.Run("equal stakes pair up", func(t *testing.T) {
		validators := shardtest.EqualStakes(4, 100)

		result, err := g.Assign(validators, 2)
		require.NoError(t, err)

		require.Equal(t, []uint64{200, 200}, stakesOf(result))
		require.Equal(t, []int{2, 2}, result.Counts())
		require.Equal(t, [][]string{{"A", "C"}, {"B", "D"}}, idsOf(result))
		testutil.AssertPartition(t, validators, result)
	})

	t.Run("dominant validator sits alone", func(t *testing.T) {
		validators := shardtest.MakeValidators(500, 10, 10, 10, 10)

		result, err := g.Assign(validators, 2)
		require.NoError(t, err)

		require.Equal(t, [][]string{{"A"}, {"B", "C", "D", "E"}}, idsOf(result))
		require.Equal(t, []uint64{500, 40}, stakesOf(result))
		testutil.AssertPartition(t, validators, result)
	})

	t.Run("more shards than validators", func(t *testing.T) {
		result, err := g.Assign(shardtest.MakeValidators(30, 20, 10), 4)
		require.ErrorIs(t, err, types.ErrInsufficientValidators)
		require.Nil(t, result)
	})

	t.Run("empty validator set", func(t *testing.T) {
		result, err := g.Assign(nil, 2)
		require.ErrorIs(t, err, types.ErrInvalidInput)
		require.Nil(t, result)
	})

	t.Run("six equal stakes on three shards", func(t *testing.T) {
		validators := shardtest.EqualStakes(6, 100)

		result, err := g.Assign(validators, 3)
		require.NoError(t, err)

		require.Equal(t, []int{2, 2, 2}, result.Counts())
		require.Equal(t, []uint64{200, 200, 200}, stakesOf(result))
		require.Equal(t, [][]string{{"A", "D"}, {"B", "E"}, {"C", "F"}}, idsOf(result))
	})
}

func TestGreedy_InvalidShardCount(t *testing.T) {
	g := NewGreedy()
	validators := shardtest.EqualStakes(3, 10)

	for _, n := range []int{0, -1} {
		_, err := g.Assign(validators, n)
		require.ErrorIs(t, err, types.ErrInvalidInput)
	}
}

func TestGreedy_EmptySetBeatsShardCheck(t *testing.T) {
	// An empty set is malformed input even when the shard count is also too large.
	_, err := NewGreedy().Assign([]types.Validator{}, 5)
	require.ErrorIs(t, err, types.ErrInvalidInput)
	require.NotErrorIs(t, err, types.ErrInsufficientValidators)
}

func TestGreedy_RejectsMalformedSets(t *testing.T) {
	g := NewGreedy()

	_, err := g.Assign([]types.Validator{types.NewValidator("a", 1), types.NewValidator("a", 2)}, 1)
	require.ErrorIs(t, err, types.ErrInvalidInput)

	_, err = g.Assign([]types.Validator{types.NewValidator("", 1)}, 1)
	require.ErrorIs(t, err, types.ErrInvalidInput)
}

func TestGreedy_ExponentialStakes(t *testing.T) {
	validators := shardtest.MakeValidators(shardtest.ExponentialStakes...)

	result, err := NewGreedy().Assign(validators, 3)
	require.NoError(t, err)

	require.Equal(t, [][]string{
		{"A", "F", "I", "J"},
		{"B", "E", "H", "K"},
		{"C", "D", "G", "L"},
	}, idsOf(result))
	require.Equal(t, []uint64{241, 239, 238}, stakesOf(result))
	require.Equal(t, uint64(718), result.TotalStake.Uint64())
	testutil.AssertStakeSums(t, validators, result)
}

func TestGreedy_SingleShardGetsEverything(t *testing.T) {
	validators := shardtest.MakeValidators(5, 4, 3)

	result, err := NewGreedy().Assign(validators, 1)
	require.NoError(t, err)

	require.Equal(t, [][]string{{"A", "B", "C"}}, idsOf(result))
	require.Equal(t, []uint64{12}, stakesOf(result))
}

func TestGreedy_ZeroStakesSpreadByCount(t *testing.T) {
	result, err := NewGreedy().Assign(shardtest.EqualStakes(5, 0), 2)
	require.NoError(t, err)

	require.Equal(t, [][]string{{"A", "C", "E"}, {"B", "D"}}, idsOf(result))
}

func TestGreedy_DeterministicUnderShuffle(t *testing.T) {
	validators := testutil.RandomValidators(42, 64, 1, 1_000_000)
	g := NewGreedy()

	want, err := g.Assign(validators, 7)
	require.NoError(t, err)

	for seed := range uint64(10) {
		got, err := g.Assign(testutil.Shuffled(seed, validators), 7)
		require.NoError(t, err)
		testutil.AssertSameAssignment(t, want, got)
	}
}

func TestGreedy_DoesNotModifyInput(t *testing.T) {
	validators := shardtest.MakeValidators(1, 2, 3, 4)
	before := append([]types.Validator(nil), validators...)

	_, err := NewGreedy().Assign(validators, 2)
	require.NoError(t, err)
	require.Equal(t, before, validators)
}

func TestGreedy_Properties(t *testing.T) {
	g := NewGreedy()

	for seed := range uint64(20) {
		n := 10 + int(seed)*7
		validators := testutil.RandomValidators(seed, n, 0, 10_000)

		for _, shards := range []int{1, 2, 5, n} {
			result, err := g.Assign(validators, shards)
			require.NoError(t, err)

			testutil.AssertPartition(t, validators, result)
			testutil.AssertMinOccupancy(t, result, 1)
			testutil.AssertStakeSums(t, validators, result)
		}
	}
}

func TestGreedy_EqualStakesCountSpread(t *testing.T) {
	g := NewGreedy()

	for n := 1; n <= 40; n++ {
		for shards := 1; shards <= n; shards++ {
			result, err := g.Assign(shardtest.EqualStakes(n, 7), shards)
			require.NoError(t, err)
			testutil.AssertCountSpread(t, result, 1)
		}
	}
}

// requireLightestShardPlacement replays the canonical placement order and checks
// that every validator landed on the shard with the lowest running stake, ties
// going to the fewest validators and then the lowest index.
func requireLightestShardPlacement(t *testing.T, validators []types.Validator, result *types.AssignmentResult) {
	t.Helper()

	numShards := result.NumShards()
	stakes := make([]uint256.Int, numShards)
	counts := make([]int, numShards)
	placed := make([][]string, numShards)
	for i := range placed {
		placed[i] = []string{}
	}

	for _, v := range types.SortValidators(validators) {
		shard, ok := result.ShardOf(v.ID)
		require.True(t, ok, "validator %s unassigned", v.ID)

		for other := range numShards {
			if other == shard {
				continue
			}
			switch c := stakes[other].Cmp(&stakes[shard]); {
			case c < 0:
				t.Fatalf("%s placed on shard %d (stake %s) while shard %d held only %s",
					v, shard, stakes[shard].Dec(), other, stakes[other].Dec())
			case c == 0 && counts[other] < counts[shard]:
				t.Fatalf("%s placed on shard %d (%d validators) while equal-stake shard %d held %d",
					v, shard, counts[shard], other, counts[other])
			case c == 0 && counts[other] == counts[shard] && other < shard:
				t.Fatalf("%s placed on shard %d while identical shard %d has a lower index", v, shard, other)
			}
		}

		stakes[shard].Add(&stakes[shard], &v.Stake)
		counts[shard]++
		placed[shard] = append(placed[shard], v.ID)
	}

	require.Equal(t, placed, idsOf(result), "placement order within shards")
}

func TestGreedy_StakeMonotonicity(t *testing.T) {
	g := NewGreedy()

	for seed := range uint64(50) {
		validators := testutil.RandomValidators(seed, 30+int(seed), 1, 1_000)
		numShards := 2 + int(seed%5)

		result, err := g.Assign(validators, numShards)
		require.NoError(t, err)
		requireLightestShardPlacement(t, validators, result)

		// Raising one stake while holding the rest fixed still places every
		// validator on the lightest shard at its turn.
		k := int(seed) % len(validators)
		for _, delta := range []uint64{1, 250, 100_000} {
			raised := slices.Clone(validators)
			raised[k].Stake.AddUint64(&raised[k].Stake, delta)

			bumped, err := g.Assign(raised, numShards)
			require.NoError(t, err)

			testutil.AssertPartition(t, raised, bumped)
			testutil.AssertStakeSums(t, raised, bumped)
			requireLightestShardPlacement(t, raised, bumped)
		}
	}
}

func TestGreedy_LightestShardPlacement(t *testing.T) {
	for name, validators := range map[string][]types.Validator{
		"exponential": shardtest.MakeValidators(shardtest.ExponentialStakes...),
		"step":        shardtest.StepStakes(100, 10, 10),
		"equal":       shardtest.EqualStakes(13, 5),
		"zero":        shardtest.EqualStakes(7, 0),
	} {
		t.Run(name, func(t *testing.T) {
			for shards := 1; shards <= len(validators); shards++ {
				result, err := NewGreedy().Assign(validators, shards)
				require.NoError(t, err)
				requireLightestShardPlacement(t, validators, result)
			}
		})
	}
}

func TestGreedy_OverweightWarning(t *testing.T) {
	rec := &recordingLogger{}
	g := NewGreedy(WithGreedyLogger(rec))

	_, err := g.Assign(shardtest.MakeValidators(500, 10, 10, 10, 10), 2)
	require.NoError(t, err)
	require.Contains(t, rec.warns, "validator stake exceeds mean shard stake")

	rec.warns = nil
	_, err = g.Assign(shardtest.EqualStakes(4, 100), 2)
	require.NoError(t, err)
	require.Empty(t, rec.warns)
}

func TestNewGreedy_NilLogger(t *testing.T) {
	g := NewGreedy(WithGreedyLogger(nil), nil)

	_, err := g.Assign(shardtest.MakeValidators(500, 10), 2)
	require.NoError(t, err)
}

type recordingLogger struct {
	logger.NopLogger
	warns []string
	infos []string
}

func (r *recordingLogger) Info(msg string, _ ...any) {
	r.infos = append(r.infos, msg)
}

func (r *recordingLogger) Warn(msg string, _ ...any) {
	r.warns = append(r.warns, msg)
}
