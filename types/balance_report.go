package types

import "github.com/holiman/uint256"

// BalanceReport summarizes how evenly an assignment spreads stake and validators.
//
// Integer fields are exact. Mean and Variance are float64 diagnostics and
// must not be used for placement decisions.
type BalanceReport struct {
	// Shards is the number of shards evaluated.
	Shards int `json:"shards"`

	// Stake describes the per-shard stake sums.
	Stake StakeStats `json:"stake"`

	// Count describes the per-shard validator counts.
	Count CountStats `json:"count"`
}

// StakeStats holds statistics over per-shard stake sums.
type StakeStats struct {
	Min    uint256.Int `json:"min"`
	Max    uint256.Int `json:"max"`
	Spread uint256.Int `json:"spread"` // Max - Min
	Total  uint256.Int `json:"total"`

	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"` // population variance
}

// CountStats holds statistics over per-shard validator counts.
type CountStats struct {
	Min    int `json:"min"`
	Max    int `json:"max"`
	Spread int `json:"spread"` // Max - Min

	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"` // population variance
}
