package source

import (
	"context"
	"slices"
	"sync"

	"github.com/birchmd/bp-shard-assign-poc/types"
)

// Static implements a validator source with a fixed list of validators.
type Static struct {
	mu         sync.RWMutex
	validators []types.Validator
}

var _ types.ValidatorSource = (*Static)(nil)

// NewStatic creates a new static validator source.
//
// The source returns a fixed list of validators until Update replaces it.
// Useful for testing and for callers that already hold the validator set in memory.
//
// Parameters:
//   - validators: Fixed list of validators
//
// Returns:
//   - *Static: Initialized static source
//
// Example:
//
//	validators := []types.Validator{
//	    types.NewValidator("alice", 100),
//	    types.NewValidator("bob", 90),
//	}
//	src := source.NewStatic(validators)
//	assigner, err := shardassign.NewAssigner(&cfg, src)
//	if err != nil { /* handle */ }
func NewStatic(validators []types.Validator) *Static {
	return &Static{
		validators: slices.Clone(validators),
	}
}

// ListValidators returns a copy of the current validator list.
//
// Returns:
//   - []types.Validator: The validator list
//   - error: Always nil (never fails)
func (s *Static) ListValidators(_ context.Context) ([]types.Validator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]types.Validator, len(s.validators))
	copy(result, s.validators)

	return result, nil
}

// Update replaces the validator list.
//
// This allows the static source to model validator set changes between
// epochs, which is useful for testing reassignment.
//
// Parameters:
//   - validators: New list of validators
//
// Example:
//
//	src := source.NewStatic(epoch1)
//	// Next epoch:
//	src.Update(epoch2)
func (s *Static) Update(validators []types.Validator) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.validators = make([]types.Validator, len(validators))
	copy(s.validators, validators)
}
