package balance

import (
	"github.com/google/btree"
	"github.com/holiman/uint256"

	"github.com/birchmd/bp-shard-assign-poc/types"
)

var (
	_ btree.LessFunc[*Load] = (*Load).Less
	_ btree.LessFunc[*Load] = (*Load).LessByCount
)

// Load is the running stake sum and validator count of one shard.
type Load struct {
	Shard int
	Stake uint256.Int
	Count int
}

// NewLoads creates one empty Load per shard.
func NewLoads(numShards int) []*Load {
	loads := make([]*Load, numShards)
	for i := range loads {
		loads[i] = &Load{Shard: i}
	}

	return loads
}

// Add accounts a validator placed on the shard.
func (l *Load) Add(v types.Validator) {
	l.Stake.Add(&l.Stake, &v.Stake)
	l.Count++
}

// A *Load is considered to be less than another *Load when:
//
//  1. Its stake sum is lower.
//  2. If the stakes are the same, it holds fewer validators.
//  3. If the counts are also the same, its shard index is lower.
func (l *Load) Less(than *Load) bool {
	if c := l.Stake.Cmp(&than.Stake); c != 0 {
		return c < 0
	}
	if l.Count != than.Count {
		return l.Count < than.Count
	}

	return l.Shard < than.Shard
}

// LessByCount orders loads by validator count, then stake sum, then shard index.
//
// Used to fill under-occupied shards before balancing stake.
func (l *Load) LessByCount(than *Load) bool {
	if l.Count != than.Count {
		return l.Count < than.Count
	}
	if c := l.Stake.Cmp(&than.Stake); c != 0 {
		return c < 0
	}

	return l.Shard < than.Shard
}
