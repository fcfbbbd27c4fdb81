package types

import (
	"encoding/json"

	"github.com/holiman/uint256"
)

// uint256.Int implements json.Marshaler on its pointer only. The value-receiver
// marshalers below keep stakes encoded as decimal strings however the value is
// passed; decoding already targets addressable fields.

// MarshalJSON implements json.Marshaler.
func (v Validator) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID    string       `json:"id"`
		Stake *uint256.Int `json:"stake"`
	}{
		ID:    v.ID,
		Stake: &v.Stake,
	})
}

// MarshalJSON implements json.Marshaler.
func (s ShardAssignment) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Shard      int          `json:"shard"`
		Validators []Validator  `json:"validators"`
		Stake      *uint256.Int `json:"stake"`
	}{
		Shard:      s.Shard,
		Validators: s.Validators,
		Stake:      &s.Stake,
	})
}

// MarshalJSON implements json.Marshaler.
func (r AssignmentResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Strategy   string            `json:"strategy"`
		Shards     []ShardAssignment `json:"shards"`
		TotalStake *uint256.Int      `json:"totalStake"`
	}{
		Strategy:   r.Strategy,
		Shards:     r.Shards,
		TotalStake: &r.TotalStake,
	})
}

// MarshalJSON implements json.Marshaler.
func (s StakeStats) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Min      *uint256.Int `json:"min"`
		Max      *uint256.Int `json:"max"`
		Spread   *uint256.Int `json:"spread"`
		Total    *uint256.Int `json:"total"`
		Mean     float64      `json:"mean"`
		Variance float64      `json:"variance"`
	}{
		Min:      &s.Min,
		Max:      &s.Max,
		Spread:   &s.Spread,
		Total:    &s.Total,
		Mean:     s.Mean,
		Variance: s.Variance,
	})
}
