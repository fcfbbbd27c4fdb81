package source

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/birchmd/bp-shard-assign-poc/types"
)

// ValidatorSet is the on-disk validator set document.
//
// Example:
//
//	validators:
//	  - id: alice
//	    stake: 1000000000000000000000
//	  - id: bob
//	    stake: 0x3635c9adc5dea00000
type ValidatorSet struct {
	Validators []types.Validator `yaml:"validators" json:"validators"`
}

// File implements a validator source backed by a YAML document.
//
// The file is read on every ListValidators call, so edits take effect at the
// next assignment. JSON documents are accepted as well since YAML is a superset.
type File struct {
	path string
}

var _ types.ValidatorSource = (*File)(nil)

// NewFile creates a validator source reading from path.
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the file path.
func (f *File) Path() string {
	return f.path
}

// ListValidators reads and decodes the validator set.
//
// Stakes may be written as decimal or 0x-prefixed hexadecimal integers.
// The set is returned as written; validation happens in the strategy.
//
// Returns:
//   - []types.Validator: Validators in file order
//   - error: Read or decode failure, wrapped with the file path
func (f *File) ListValidators(ctx context.Context) ([]types.Validator, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read validator set %s: %w", f.path, err)
	}

	set, err := ParseValidatorSet(data)
	if err != nil {
		return nil, fmt.Errorf("parse validator set %s: %w", f.path, err)
	}

	return set.Validators, nil
}

// ParseValidatorSet decodes a validator set document.
func ParseValidatorSet(data []byte) (*ValidatorSet, error) {
	var set ValidatorSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, err
	}

	return &set, nil
}
