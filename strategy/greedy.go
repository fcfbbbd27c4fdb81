package strategy

import (
	"github.com/google/btree"
	"github.com/holiman/uint256"

	"github.com/birchmd/bp-shard-assign-poc/balance"
	"github.com/birchmd/bp-shard-assign-poc/internal/logger"
	"github.com/birchmd/bp-shard-assign-poc/types"
)

// NameGreedy is the configuration name of the Greedy strategy.
const NameGreedy = "greedy"

// Greedy implements balanced partitioning by lightest-shard placement.
//
// This is the "longest processing time first" heuristic for multi-way
// partitioning: validators are visited heaviest first and each goes to the
// shard whose running stake sum is smallest.
type Greedy struct {
	logger types.Logger
}

var _ types.AssignmentStrategy = (*Greedy)(nil)

// GreedyOption configures a Greedy strategy.
type GreedyOption func(*Greedy)

// WithGreedyLogger sets the logger used for overload warnings and debug diagnostics.
func WithGreedyLogger(l types.Logger) GreedyOption {
	return func(g *Greedy) {
		g.logger = l
	}
}

// NewGreedy creates a new greedy strategy.
//
// Parameters:
//   - opts: Optional configuration (WithGreedyLogger)
//
// Returns:
//   - *Greedy: Initialized greedy strategy ready for use.
func NewGreedy(opts ...GreedyOption) *Greedy {
	g := &Greedy{logger: logger.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	if g.logger == nil {
		g.logger = logger.NewNop()
	}

	return g
}

// Name returns "greedy".
func (g *Greedy) Name() string {
	return NameGreedy
}

// Assign calculates the shard assignment.
//
// The algorithm:
//  1. Sort validators by stake descending, ties by ID ascending
//  2. Start every shard with stake 0 and no validators
//  3. Place each validator on the least shard load ordered by (stake, count, shard index)
//  4. Report per-shard stake sums and counts
//
// A validator heavier than all others combined still lands on the lightest shard;
// nothing is rebalanced afterwards. Zero-stake validators are spread by the count
// tie-break. Every shard receives at least one validator: an empty shard has the
// least possible load, so it is chosen before any occupied shard.
//
// Parameters:
//   - validators: Validator set (any order, unique non-empty IDs)
//   - numShards: Number of shards, 1 <= numShards <= len(validators)
//
// Returns:
//   - *types.AssignmentResult: Partition of validators into numShards shards
//   - error: ErrInvalidInput or ErrInsufficientValidators (wrapped)
//
// Example:
//
//	result, err := strategy.NewGreedy().Assign(validators, 4)
//	if err != nil {
//	    return err
//	}
//	for _, shard := range result.Shards {
//	    fmt.Println(shard.Shard, shard.IDs(), shard.Stake.Dec())
//	}
func (g *Greedy) Assign(validators []types.Validator, numShards int) (*types.AssignmentResult, error) {
	sorted, total, err := prepare(validators, numShards)
	if err != nil {
		return nil, err
	}

	warnOverweight(g.logger, sorted[0], total, numShards)

	result := types.NewAssignmentResult(g.Name(), numShards)
	result.TotalStake = total

	tree := btree.NewG(treeDegree, (*balance.Load).Less)
	for _, l := range balance.NewLoads(numShards) {
		tree.ReplaceOrInsert(l)
	}

	for _, v := range sorted {
		lightest, _ := tree.DeleteMin()
		lightest.Add(v)
		result.Place(lightest.Shard, v)
		tree.ReplaceOrInsert(lightest)
	}

	g.logger.Debug("greedy assignment computed",
		"validators", len(sorted),
		"shards", numShards,
		"totalStake", total.Dec(),
	)

	return result, nil
}

// warnOverweight logs when the heaviest validator alone exceeds the mean shard stake.
//
// Such a validator dominates whichever shard it lands on, and no placement can fix that.
func warnOverweight(log types.Logger, heaviest types.Validator, total uint256.Int, numShards int) {
	if numShards < 2 {
		return
	}

	mean := new(uint256.Int).Div(&total, uint256.NewInt(uint64(numShards)))
	if heaviest.Stake.Gt(mean) {
		log.Warn("validator stake exceeds mean shard stake",
			"validator", heaviest.ID,
			"stake", heaviest.Stake.Dec(),
			"meanShardStake", mean.Dec(),
		)
	}
}
