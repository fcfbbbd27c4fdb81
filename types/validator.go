package types

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/holiman/uint256"
)

// Validator is a block producer eligible for shard duty.
//
// Validators are value objects: strategies never modify the Stake of a
// validator they receive.
type Validator struct {
	// ID uniquely identifies the validator (account ID, node ID, ...).
	ID string `json:"id" yaml:"id"`

	// Stake is the validator's stake weight for the epoch.
	Stake uint256.Int `json:"stake" yaml:"stake"`
}

// NewValidator creates a validator with a stake that fits in 64 bits.
//
// Parameters:
//   - id: Validator identity
//   - stake: Stake amount
//
// Returns:
//   - Validator: Initialized validator
func NewValidator(id string, stake uint64) Validator {
	return Validator{ID: id, Stake: *uint256.NewInt(stake)}
}

// Compare orders validators by stake descending, then by ID ascending.
//
// This is the canonical total order used by every strategy before placement.
// Two validators compare equal only when both stake and ID are equal.
//
// Returns:
//   - int: -1 if v sorts before w, 0 if equal, +1 if v sorts after w
func (v Validator) Compare(w Validator) int {
	if c := w.Stake.Cmp(&v.Stake); c != 0 {
		return c
	}

	return cmp.Compare(v.ID, w.ID)
}

// String implements fmt.Stringer.
func (v Validator) String() string {
	return fmt.Sprintf("%s(%s)", v.ID, v.Stake.Dec())
}

// SortValidators returns a copy of validators sorted in canonical order.
//
// The input slice is not modified.
func SortValidators(validators []Validator) []Validator {
	sorted := slices.Clone(validators)
	slices.SortFunc(sorted, Validator.Compare)

	return sorted
}

// ValidatorsFromMap materializes an id->stake mapping into a canonically sorted slice.
//
// Map iteration order never reaches the caller: the result is sorted before it is returned.
func ValidatorsFromMap(stakes map[string]uint256.Int) []Validator {
	validators := make([]Validator, 0, len(stakes))
	for id, stake := range stakes {
		validators = append(validators, Validator{ID: id, Stake: stake})
	}
	slices.SortFunc(validators, Validator.Compare)

	return validators
}

// CheckValidators verifies that a validator set is usable for assignment.
//
// Rules:
//   - the set is not empty
//   - every ID is non-empty and unique
//   - the total stake fits in 256 bits
//
// Returns:
//   - uint256.Int: Total stake of the set
//   - error: ErrInvalidInput wrapped with details, nil if valid
func CheckValidators(validators []Validator) (uint256.Int, error) {
	var total uint256.Int
	if len(validators) == 0 {
		return total, fmt.Errorf("%w: empty validator set", ErrInvalidInput)
	}

	seen := make(map[string]struct{}, len(validators))
	for i := range validators {
		v := &validators[i]
		if v.ID == "" {
			return total, fmt.Errorf("%w: validator at index %d has empty ID", ErrInvalidInput, i)
		}
		if _, dup := seen[v.ID]; dup {
			return total, fmt.Errorf("%w: duplicate validator ID %q", ErrInvalidInput, v.ID)
		}
		seen[v.ID] = struct{}{}

		if _, overflow := total.AddOverflow(&total, &v.Stake); overflow {
			return uint256.Int{}, fmt.Errorf("%w: total stake overflows at validator %q", ErrInvalidInput, v.ID)
		}
	}

	return total, nil
}
