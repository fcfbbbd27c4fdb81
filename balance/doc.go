// Package balance evaluates how evenly an assignment spreads stake and
// validators across shards.
//
// Load is the running per-shard state used by strategies to score candidate
// placements. Evaluate produces a BalanceReport for a finished assignment.
//
// Placing each validator on the least Load in Less order is the greedy step
// that keeps the running variance of shard stake sums as small as possible.
package balance
