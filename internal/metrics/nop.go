// Package metrics provides MetricsCollector implementations.
package metrics

import "github.com/birchmd/bp-shard-assign-poc/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Used by default when no collector is configured.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Example:
//
//	a, _ := shardassign.NewAssigner(&cfg, src, shardassign.WithMetrics(metrics.NewNop()))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordAssignment discards the assignment metric.
func (n *NopMetrics) RecordAssignment(_ /* strategy */ string, _ /* duration */ float64, _ /* validators */, _ /* shards */ int) {
	// No-op
}

// RecordAssignmentError discards the assignment error metric.
func (n *NopMetrics) RecordAssignmentError(_ /* strategy */, _ /* reason */ string) {
	// No-op
}

// RecordBalance discards the balance report.
func (n *NopMetrics) RecordBalance(_ /* strategy */ string, _ /* report */ types.BalanceReport) {
	// No-op
}
