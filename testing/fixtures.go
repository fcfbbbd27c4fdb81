package testing

import (
	"fmt"

	"github.com/birchmd/bp-shard-assign-poc/types"
)

// ExponentialStakes holds twelve stakes, each roughly 90% of the previous one.
var ExponentialStakes = []uint64{100, 90, 81, 73, 66, 59, 53, 48, 43, 39, 35, 31}

// ValidatorName returns the fixture name of the i-th validator.
//
// The first 26 names are single letters "A" through "Z"; later ones are "V26", "V27", ...
func ValidatorName(i int) string {
	if i >= 0 && i < 26 {
		return string(rune('A' + i))
	}

	return fmt.Sprintf("V%d", i)
}

// MakeValidators builds validators named by ValidatorName with the given stakes, in order.
func MakeValidators(stakes ...uint64) []types.Validator {
	validators := make([]types.Validator, len(stakes))
	for i, stake := range stakes {
		validators[i] = types.NewValidator(ValidatorName(i), stake)
	}

	return validators
}

// EqualStakes builds n validators that all carry the given stake.
func EqualStakes(n int, stake uint64) []types.Validator {
	stakes := make([]uint64, n)
	for i := range stakes {
		stakes[i] = stake
	}

	return MakeValidators(stakes...)
}

// StepStakes builds one heavy validator followed by n light ones.
func StepStakes(heavy uint64, n int, light uint64) []types.Validator {
	stakes := make([]uint64, 0, n+1)
	stakes = append(stakes, heavy)
	for range n {
		stakes = append(stakes, light)
	}

	return MakeValidators(stakes...)
}
