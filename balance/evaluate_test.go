package balance

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/birchmd/bp-shard-assign-poc/types"
)

func resultWith(shards ...[]uint64) *types.AssignmentResult {
	r := types.NewAssignmentResult("test", len(shards))
	id := 0
	for i, stakes := range shards {
		for _, s := range stakes {
			r.Place(i, types.NewValidator(string(rune('a'+id)), s))
			id++
		}
	}

	return r
}

func TestEvaluate(t *testing.T) {
	t.Run("balanced assignment", func(t *testing.T) {
		report := Evaluate(resultWith([]uint64{100, 100}, []uint64{100, 100}))

		require.Equal(t, 2, report.Shards)
		require.Equal(t, uint64(200), report.Stake.Min.Uint64())
		require.Equal(t, uint64(200), report.Stake.Max.Uint64())
		require.True(t, report.Stake.Spread.IsZero())
		require.Equal(t, uint64(400), report.Stake.Total.Uint64())
		require.InDelta(t, 200.0, report.Stake.Mean, 1e-9)
		require.InDelta(t, 0.0, report.Stake.Variance, 1e-9)

		require.Equal(t, 2, report.Count.Min)
		require.Equal(t, 2, report.Count.Max)
		require.Zero(t, report.Count.Spread)
		require.InDelta(t, 2.0, report.Count.Mean, 1e-9)
		require.InDelta(t, 0.0, report.Count.Variance, 1e-9)
	})

	t.Run("skewed assignment", func(t *testing.T) {
		report := Evaluate(resultWith([]uint64{500}, []uint64{10, 10, 10, 10}))

		require.Equal(t, uint64(40), report.Stake.Min.Uint64())
		require.Equal(t, uint64(500), report.Stake.Max.Uint64())
		require.Equal(t, uint64(460), report.Stake.Spread.Uint64())
		require.InDelta(t, 270.0, report.Stake.Mean, 1e-9)
		// population variance of {500, 40}: 230^2
		require.InDelta(t, 52900.0, report.Stake.Variance, 1e-6)

		require.Equal(t, 1, report.Count.Min)
		require.Equal(t, 4, report.Count.Max)
		require.Equal(t, 3, report.Count.Spread)
		require.InDelta(t, 2.5, report.Count.Mean, 1e-9)
		require.InDelta(t, 2.25, report.Count.Variance, 1e-9)
	})

	t.Run("empty shard is the minimum", func(t *testing.T) {
		report := Evaluate(resultWith([]uint64{7}, nil, []uint64{3}))

		require.True(t, report.Stake.Min.IsZero())
		require.Equal(t, 0, report.Count.Min)
		require.Equal(t, uint64(7), report.Stake.Spread.Uint64())
	})

	t.Run("nil and empty results", func(t *testing.T) {
		require.Equal(t, types.BalanceReport{}, Evaluate(nil))
		require.Equal(t, types.BalanceReport{}, Evaluate(types.NewAssignmentResult("test", 0)))
	})
}

func TestStakeVariance(t *testing.T) {
	t.Run("zero for equal sums", func(t *testing.T) {
		require.Zero(t, StakeVariance(resultWith([]uint64{5, 5}, []uint64{10})).Sign())
	})

	t.Run("matches scaled population variance", func(t *testing.T) {
		// sums {500, 40}: S*sum(x^2) - (sum x)^2 = 2*(250000+1600) - 540^2 = 211600 = 4 * 52900
		require.Equal(t, big.NewInt(211600), StakeVariance(resultWith([]uint64{500}, []uint64{10, 10, 10, 10})))
	})

	t.Run("exact beyond float precision", func(t *testing.T) {
		r := types.NewAssignmentResult("test", 2)
		huge := new(uint256.Int).Lsh(uint256.NewInt(1), 200)
		r.Place(0, types.Validator{ID: "a", Stake: *huge})
		r.Place(1, types.Validator{ID: "b", Stake: *new(uint256.Int).AddUint64(huge, 1)})

		// sums differ by 1: 2*(x^2 + (x+1)^2) - (2x+1)^2 = 1
		require.Equal(t, big.NewInt(1), StakeVariance(r))
	})

	t.Run("nil result", func(t *testing.T) {
		require.Zero(t, StakeVariance(nil).Sign())
	})
}

func TestEvaluate_JSONRoundTrip(t *testing.T) {
	report := Evaluate(resultWith([]uint64{100}, []uint64{10, 10, 10, 10}))

	data, err := json.Marshal(report)
	require.NoError(t, err)
	require.Contains(t, string(data), `"min":"40"`)
	require.Contains(t, string(data), `"max":"100"`)

	var decoded types.BalanceReport
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, report, decoded)
}
