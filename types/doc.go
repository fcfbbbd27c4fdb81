// Package types provides core type definitions and interfaces for the shard assignment library.
//
// This package contains shared types that are used across multiple packages in the
// library. By keeping these types in a separate package, we avoid import cycles
// between the root shardassign package, the strategies and the balance evaluator.
//
// Key types:
//   - Validator: Block producer identity and stake
//   - ShardAssignment: Ordered validators placed on one shard
//   - AssignmentResult: Assignment of every shard for one epoch
//   - BalanceReport: Stake and count statistics of an assignment
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
