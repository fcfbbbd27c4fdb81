// Package source provides built-in validator source implementations.
//
// Validator sources supply the validator set an Assigner partitions.
// The package includes:
//
//   - Static: Fixed list of validators, replaceable with Update
//   - File: YAML (or JSON) document re-read on every call
//
// Custom sources can be implemented by satisfying the types.ValidatorSource interface.
package source
