package types

import (
	"encoding/binary"

	"github.com/holiman/uint256"
	"github.com/zeebo/xxh3"
)

// ShardAssignment contains the validators placed on one shard.
type ShardAssignment struct {
	// Shard is the zero-based shard index.
	Shard int `json:"shard"`

	// Validators lists the validators in placement order.
	// The order is used by the surrounding protocol for block-production duty rotation.
	Validators []Validator `json:"validators"`

	// Stake is the exact sum of Validators' stakes.
	Stake uint256.Int `json:"stake"`
}

// Count returns the number of validators on the shard.
func (s ShardAssignment) Count() int {
	return len(s.Validators)
}

// IDs returns the validator identities in placement order.
func (s ShardAssignment) IDs() []string {
	ids := make([]string, len(s.Validators))
	for i, v := range s.Validators {
		ids[i] = v.ID
	}

	return ids
}

// Contains reports whether the validator ID is placed on the shard.
func (s ShardAssignment) Contains(id string) bool {
	for _, v := range s.Validators {
		if v.ID == id {
			return true
		}
	}

	return false
}

// AssignmentResult is the assignment of every shard for one epoch.
//
// Shards[i].Shard == i for every i.
type AssignmentResult struct {
	// Strategy names the strategy that produced the result.
	Strategy string `json:"strategy"`

	// Shards holds one entry per shard, indexed by shard ID.
	Shards []ShardAssignment `json:"shards"`

	// TotalStake is the exact stake of the distinct input validators.
	TotalStake uint256.Int `json:"totalStake"`
}

// NewAssignmentResult creates a result with numShards empty shards.
func NewAssignmentResult(strategy string, numShards int) *AssignmentResult {
	shards := make([]ShardAssignment, numShards)
	for i := range shards {
		shards[i].Shard = i
		shards[i].Validators = []Validator{}
	}

	return &AssignmentResult{Strategy: strategy, Shards: shards}
}

// Place appends a validator to a shard and updates the shard's stake sum.
func (r *AssignmentResult) Place(shard int, v Validator) {
	s := &r.Shards[shard]
	s.Validators = append(s.Validators, v)
	s.Stake.Add(&s.Stake, &v.Stake)
}

// NumShards returns the number of shards.
func (r *AssignmentResult) NumShards() int {
	return len(r.Shards)
}

// NumValidators returns the number of placements across all shards.
//
// For partitioning strategies this equals the size of the validator set.
func (r *AssignmentResult) NumValidators() int {
	n := 0
	for _, s := range r.Shards {
		n += len(s.Validators)
	}

	return n
}

// ShardOf returns the first shard holding the validator.
//
// Returns:
//   - int: Shard index (-1 if not found)
//   - bool: true when the validator is assigned
func (r *AssignmentResult) ShardOf(id string) (int, bool) {
	for _, s := range r.Shards {
		if s.Contains(id) {
			return s.Shard, true
		}
	}

	return -1, false
}

// StakeSums returns the stake sum of every shard, indexed by shard ID.
func (r *AssignmentResult) StakeSums() []uint256.Int {
	sums := make([]uint256.Int, len(r.Shards))
	for i, s := range r.Shards {
		sums[i] = s.Stake
	}

	return sums
}

// Counts returns the validator count of every shard, indexed by shard ID.
func (r *AssignmentResult) Counts() []int {
	counts := make([]int, len(r.Shards))
	for i, s := range r.Shards {
		counts[i] = len(s.Validators)
	}

	return counts
}

// Fingerprint returns a 64-bit digest of the assignment.
//
// The digest covers shard indices, validator IDs and stakes in placement order,
// so two nodes that computed the same assignment produce the same fingerprint.
// The strategy name is not part of the digest.
func (r *AssignmentResult) Fingerprint() uint64 {
	h := xxh3.New()

	var buf [8]byte
	for _, s := range r.Shards {
		binary.BigEndian.PutUint64(buf[:], uint64(s.Shard)) //nolint:gosec
		_, _ = h.Write(buf[:])
		binary.BigEndian.PutUint64(buf[:], uint64(len(s.Validators))) //nolint:gosec
		_, _ = h.Write(buf[:])

		for _, v := range s.Validators {
			binary.BigEndian.PutUint64(buf[:], uint64(len(v.ID))) //nolint:gosec
			_, _ = h.Write(buf[:])
			_, _ = h.WriteString(v.ID)
			stake := v.Stake.Bytes32()
			_, _ = h.Write(stake[:])
		}
	}

	return h.Sum64()
}
