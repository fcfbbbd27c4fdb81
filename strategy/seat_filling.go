package strategy

import (
	"fmt"

	"github.com/google/btree"

	"github.com/birchmd/bp-shard-assign-poc/balance"
	"github.com/birchmd/bp-shard-assign-poc/internal/logger"
	"github.com/birchmd/bp-shard-assign-poc/types"
)

// NameSeatFilling is the configuration name of the SeatFilling strategy.
const NameSeatFilling = "seat-filling"

// SeatFilling guarantees every shard a minimum number of validators before balancing stake.
//
// When there are fewer validators than shards*MinSeats, validators are reused
// across shards, so the result may be a cover instead of a partition. A
// validator never appears twice in the same shard.
type SeatFilling struct {
	minSeats int
	logger   types.Logger
}

var _ types.AssignmentStrategy = (*SeatFilling)(nil)

// SeatFillingOption configures a SeatFilling strategy.
type SeatFillingOption func(*SeatFilling)

// WithMinSeats sets the minimum number of validators per shard (default: 1).
//
// Values below 1 are rejected by Assign.
func WithMinSeats(n int) SeatFillingOption {
	return func(s *SeatFilling) {
		s.minSeats = n
	}
}

// WithSeatFillingLogger sets the logger.
func WithSeatFillingLogger(l types.Logger) SeatFillingOption {
	return func(s *SeatFilling) {
		s.logger = l
	}
}

// NewSeatFilling creates a new seat-filling strategy.
//
// Parameters:
//   - opts: Optional configuration (WithMinSeats, WithSeatFillingLogger)
//
// Returns:
//   - *SeatFilling: Initialized strategy ready for use.
//
// Example:
//
//	s := strategy.NewSeatFilling(strategy.WithMinSeats(4))
//	result, err := s.Assign(validators, 16)
func NewSeatFilling(opts ...SeatFillingOption) *SeatFilling {
	s := &SeatFilling{
		minSeats: 1,
		logger:   logger.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.logger == nil {
		s.logger = logger.NewNop()
	}

	return s
}

// Name returns "seat-filling".
func (s *SeatFilling) Name() string {
	return NameSeatFilling
}

// MinSeats returns the configured minimum number of validators per shard.
func (s *SeatFilling) MinSeats() int {
	return s.minSeats
}

// Assign calculates the shard assignment in two phases.
//
// Phase 1 orders shards by (count, stake, shard index) and cycles through the
// sorted validators, placing each on the first shard in that order that does
// not already hold it, until every shard holds MinSeats validators. Phase 2
// places the validators the first pass did not reach on the lightest-stake
// shard, as Greedy does.
//
// With MinSeats 1 and numShards <= len(validators) the result equals Greedy's.
//
// Parameters:
//   - validators: Validator set (any order, unique non-empty IDs)
//   - numShards: Number of shards (must be positive)
//
// Returns:
//   - *types.AssignmentResult: Assignment with at least MinSeats validators per shard
//   - error: ErrInvalidInput or ErrInsufficientValidators (wrapped)
func (s *SeatFilling) Assign(validators []types.Validator, numShards int) (*types.AssignmentResult, error) {
	if s.minSeats < 1 {
		return nil, fmt.Errorf("%w: minimum seats per shard must be positive, got %d", types.ErrInvalidInput, s.minSeats)
	}
	if err := checkShardCount(numShards); err != nil {
		return nil, err
	}

	total, err := types.CheckValidators(validators)
	if err != nil {
		return nil, err
	}

	if len(validators) < s.minSeats {
		return nil, fmt.Errorf("%w: %d validators cannot fill %d seats per shard",
			types.ErrInsufficientValidators, len(validators), s.minSeats)
	}

	sorted := types.SortValidators(validators)
	warnOverweight(s.logger, sorted[0], total, numShards)

	result := types.NewAssignmentResult(s.Name(), numShards)
	result.TotalStake = total

	loads := balance.NewLoads(numShards)
	next := s.fillSeats(sorted, loads, result)

	if next < len(sorted) {
		tree := btree.NewG(treeDegree, (*balance.Load).Less)
		for _, l := range loads {
			tree.ReplaceOrInsert(l)
		}

		for _, v := range sorted[next:] {
			lightest, _ := tree.DeleteMin()
			lightest.Add(v)
			result.Place(lightest.Shard, v)
			tree.ReplaceOrInsert(lightest)
		}
	}

	if next > len(sorted) {
		s.logger.Info("validators reused across shards to fill seats",
			"validators", len(sorted),
			"shards", numShards,
			"minSeats", s.minSeats,
			"seats", next,
		)
	}

	s.logger.Debug("seat-filling assignment computed",
		"validators", len(sorted),
		"shards", numShards,
		"totalStake", total.Dec(),
	)

	return result, nil
}

// fillSeats runs phase 1 and returns how many positions of the validator cycle it consumed.
//
// The returned value may exceed len(sorted) when validators were reused.
func (s *SeatFilling) fillSeats(sorted []types.Validator, loads []*balance.Load, result *types.AssignmentResult) int {
	tree := btree.NewG(treeDegree, (*balance.Load).LessByCount)
	for _, l := range loads {
		tree.ReplaceOrInsert(l)
	}

	members := make([]map[string]struct{}, len(loads))
	for i := range members {
		members[i] = make(map[string]struct{})
	}

	next := 0
	for {
		lowest, _ := tree.Min()
		if lowest.Count >= s.minSeats {
			return next
		}

		v := sorted[next%len(sorted)]
		next++

		var target *balance.Load
		tree.Ascend(func(l *balance.Load) bool {
			if _, ok := members[l.Shard][v.ID]; ok {
				return true
			}
			target = l

			return false
		})

		// Every shard already holds v.
		if target == nil {
			continue
		}

		tree.Delete(target)
		target.Add(v)
		members[target.Shard][v.ID] = struct{}{}
		result.Place(target.Shard, v)
		tree.ReplaceOrInsert(target)
	}
}
