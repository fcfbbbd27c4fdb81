package balance

import (
	"math/big"

	"gonum.org/v1/gonum/stat"

	"github.com/birchmd/bp-shard-assign-poc/types"
)

// Evaluate computes the balance report of an assignment.
//
// A nil result or a result without shards yields a zero report.
func Evaluate(result *types.AssignmentResult) types.BalanceReport {
	if result == nil || len(result.Shards) == 0 {
		return types.BalanceReport{}
	}

	report := types.BalanceReport{Shards: len(result.Shards)}

	stakes := make([]float64, len(result.Shards))
	counts := make([]float64, len(result.Shards))

	first := &result.Shards[0]
	report.Stake.Min.Set(&first.Stake)
	report.Stake.Max.Set(&first.Stake)
	report.Count.Min = first.Count()
	report.Count.Max = first.Count()

	for i := range result.Shards {
		s := &result.Shards[i]

		if s.Stake.Lt(&report.Stake.Min) {
			report.Stake.Min.Set(&s.Stake)
		}
		if s.Stake.Gt(&report.Stake.Max) {
			report.Stake.Max.Set(&s.Stake)
		}
		report.Stake.Total.Add(&report.Stake.Total, &s.Stake)

		report.Count.Min = min(report.Count.Min, s.Count())
		report.Count.Max = max(report.Count.Max, s.Count())

		stakes[i] = s.Stake.Float64()
		counts[i] = float64(s.Count())
	}

	report.Stake.Spread.Sub(&report.Stake.Max, &report.Stake.Min)
	report.Count.Spread = report.Count.Max - report.Count.Min

	report.Stake.Mean, report.Stake.Variance = stat.PopMeanVariance(stakes, nil)
	report.Count.Mean, report.Count.Variance = stat.PopMeanVariance(counts, nil)

	return report
}

// StakeVariance returns the exact population variance of shard stake sums scaled by S².
//
// The value is S·Σx² − (Σx)² for S shards with stake sums x, which equals
// S² times the population variance. Comparing it between two assignments with the
// same shard count ranks them by stake balance without floating point.
func StakeVariance(result *types.AssignmentResult) *big.Int {
	if result == nil || len(result.Shards) == 0 {
		return new(big.Int)
	}

	sum := new(big.Int)
	sumSq := new(big.Int)
	for i := range result.Shards {
		x := result.Shards[i].Stake.ToBig()
		sum.Add(sum, x)
		sumSq.Add(sumSq, new(big.Int).Mul(x, x))
	}

	n := big.NewInt(int64(len(result.Shards)))
	scaled := new(big.Int).Mul(n, sumSq)

	return scaled.Sub(scaled, sum.Mul(sum, sum))
}
