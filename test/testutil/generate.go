package testutil

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/birchmd/bp-shard-assign-poc/types"
)

// RandomValidators generates n validators with stakes in [minStake, maxStake].
//
// The same seed always yields the same set. IDs are "validator-000", "validator-001", ...
//
// Parameters:
//   - seed: PCG seed
//   - n: number of validators
//   - minStake: smallest stake (inclusive)
//   - maxStake: largest stake (inclusive)
//
// Returns:
//   - []types.Validator: generated validators in ID order
func RandomValidators(seed uint64, n int, minStake, maxStake uint64) []types.Validator {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	validators := make([]types.Validator, n)
	for i := range validators {
		stake := minStake
		if maxStake > minStake {
			stake += rng.Uint64N(maxStake - minStake + 1)
		}
		validators[i] = types.NewValidator(fmt.Sprintf("validator-%03d", i), stake)
	}

	return validators
}

// Shuffled returns a shuffled copy of validators.
//
// The input slice is not modified.
func Shuffled(seed uint64, validators []types.Validator) []types.Validator {
	rng := rand.New(rand.NewPCG(seed, seed+1))

	out := slices.Clone(validators)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})

	return out
}
