// Package testing provides test utilities for the shard assignment library.
//
// This package offers fixed validator sets and a test logger for use in
// tests of code built on top of the assigner. It follows Go's convention
// of providing testing utilities in a dedicated package (similar to net/http/httptest).
//
// Key utilities:
//   - MakeValidators: Validators named "A", "B", ... with the given stakes
//   - EqualStakes: n validators with identical stake
//   - ExponentialStakes: Twelve geometrically decreasing stakes
//   - NewTestLogger: Logger that writes through t.Logf
//
// Example usage:
//
//	import (
//	    "testing"
//	    shardtest "github.com/birchmd/bp-shard-assign-poc/testing"
//	)
//
//	func TestMyComponent(t *testing.T) {
//	    validators := shardtest.MakeValidators(100, 90, 81)
//	    // Use validators in your tests
//	}
package testing
