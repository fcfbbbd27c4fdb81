// Package testutil provides shared test utilities for strategy and integration tests.
//
// This package contains assertion helpers that check assignment invariants
// and generators that build reproducible validator sets.
//
// Examples of utilities that belong here:
//   - Assertion helpers (partition completeness, minimum occupancy, balance bounds)
//   - Test data generators (random stakes, shuffled copies)
//
// Note: For fixed fixtures such as named validator sets, use the
// github.com/birchmd/bp-shard-assign-poc/testing package.
package testutil
