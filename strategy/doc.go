// Package strategy provides built-in shard assignment strategies.
//
// Strategies determine how validators are distributed across shards. Every
// strategy sorts the validator set into canonical order (stake descending, ID
// ascending) before placement and uses exact integer stake arithmetic, so the
// same validator set in any input order yields the same assignment on every node.
//
// The package includes three built-in strategies:
//
//   - Greedy: Lightest-stake-shard placement (recommended)
//   - SeatFilling: Guarantees a minimum number of validators per shard, reusing validators when the set is small
//   - RoundRobin: Count-only distribution, a baseline for balance comparisons
//
// # Strategy Selection Guide
//
// Greedy:
//   - Each validator, heaviest first, goes to the shard with the lowest stake sum
//   - Ties go to the shard with fewer validators, then the lower shard index
//   - Produces a partition: every validator lands on exactly one shard
//   - Requires at least as many validators as shards
//
// SeatFilling:
//   - First fills every shard up to MinSeats validators, lowest count first
//   - Then places the rest like Greedy
//   - When the set is smaller than shards*MinSeats, validators serve on several shards (never twice on one)
//
// RoundRobin:
//   - Validator i of the sorted set goes to shard i mod S
//   - Counts differ by at most one; stake is ignored
//
// Custom strategies can be implemented by satisfying the types.AssignmentStrategy interface.
package strategy
