// Package shardassign provides deterministic assignment of block-producing
// validators to shards.
//
// Given a validator set with stakes and a shard count, the library produces a
// partition of validators into shards such that every shard is occupied and
// total stake is spread as evenly as a greedy placement allows. The result is
// a pure function of its inputs: every node that feeds in the same validator
// set, in any order, computes the same assignment bit for bit, and can compare
// results cheaply with AssignmentResult.Fingerprint.
//
// # Quick Start
//
// One-shot assignment:
//
//	import "github.com/birchmd/bp-shard-assign-poc"
//
//	validators := []shardassign.Validator{
//	    shardassign.NewValidator("alice", 500),
//	    shardassign.NewValidator("bob", 10),
//	    shardassign.NewValidator("carol", 10),
//	}
//
//	result, err := shardassign.AssignShards(validators, 2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report := shardassign.Evaluate(result)
//
// # Key Features
//
//   - Exact stake arithmetic: 256-bit unsigned integers, no floating point in placement
//   - Deterministic: canonical ordering (stake descending, ID ascending) fixes every tie
//   - Pluggable strategies: Greedy (default), SeatFilling, RoundRobin
//   - Balance reports: min/max/spread/mean/variance of stake and validator counts
//
// # Assigner
//
// For repeated use, an Assigner combines a Config, a ValidatorSource, and
// optional logging, metrics and hooks:
//
//	import (
//	    "github.com/birchmd/bp-shard-assign-poc"
//	    "github.com/birchmd/bp-shard-assign-poc/source"
//	)
//
//	cfg := shardassign.DefaultConfig()
//	cfg.NumShards = 8
//
//	assigner, err := shardassign.NewAssigner(&cfg, source.NewFile("validators.yaml"),
//	    shardassign.WithLogger(logger),
//	    shardassign.WithMetrics(shardassign.NewPrometheusMetrics(prometheus.DefaultRegisterer, "")),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	outcome, err := assigner.Assign(ctx)
//
// See the examples/ directory and cmd/shardassign for complete programs.
package shardassign
