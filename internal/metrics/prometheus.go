package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/birchmd/bp-shard-assign-poc/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Collectors are created and registered lazily on first use.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	assignments        *prometheus.CounterVec
	assignmentErrors   *prometheus.CounterVec
	assignmentDuration *prometheus.HistogramVec
	validators         *prometheus.GaugeVec
	shards             *prometheus.GaugeVec

	stakeMin      *prometheus.GaugeVec
	stakeMax      *prometheus.GaugeVec
	stakeMean     *prometheus.GaugeVec
	stakeVariance *prometheus.GaugeVec
	countSpread   *prometheus.GaugeVec
	countVariance *prometheus.GaugeVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "shardassign" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "shardassign"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) gauge(name, help string) *prometheus.GaugeVec {
	return prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: p.namespace,
		Subsystem: "balance",
		Name:      name,
		Help:      help,
	}, []string{"strategy"})
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.assignments = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "assigner",
			Name:      "assignments_total",
			Help:      "Total successful shard assignments by strategy.",
		}, []string{"strategy"})

		p.assignmentErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "assigner",
			Name:      "assignment_errors_total",
			Help:      "Total failed shard assignments by strategy and reason.",
		}, []string{"strategy", "reason"})

		p.assignmentDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "assigner",
			Name:      "assignment_duration_seconds",
			Help:      "Time spent computing a shard assignment.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8), // 100µs .. ~1.6s
		}, []string{"strategy"})

		p.validators = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "assigner",
			Name:      "validators",
			Help:      "Validator set size of the latest assignment.",
		}, []string{"strategy"})

		p.shards = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "assigner",
			Name:      "shards",
			Help:      "Shard count of the latest assignment.",
		}, []string{"strategy"})

		p.stakeMin = p.gauge("stake_min", "Smallest per-shard stake sum of the latest assignment.")
		p.stakeMax = p.gauge("stake_max", "Largest per-shard stake sum of the latest assignment.")
		p.stakeMean = p.gauge("stake_mean", "Mean per-shard stake sum of the latest assignment.")
		p.stakeVariance = p.gauge("stake_variance", "Population variance of per-shard stake sums.")
		p.countSpread = p.gauge("count_spread", "Max minus min validators per shard.")
		p.countVariance = p.gauge("count_variance", "Population variance of validators per shard.")

		for _, c := range []prometheus.Collector{
			p.assignments, p.assignmentErrors, p.assignmentDuration, p.validators, p.shards,
			p.stakeMin, p.stakeMax, p.stakeMean, p.stakeVariance, p.countSpread, p.countVariance,
		} {
			p.reg.MustRegister(c)
		}
	})
}

// RecordAssignment records a successful assignment.
func (p *PrometheusCollector) RecordAssignment(strategy string, duration float64, validators, shards int) {
	p.ensureRegistered()
	p.assignments.WithLabelValues(strategy).Inc()
	p.assignmentDuration.WithLabelValues(strategy).Observe(duration)
	p.validators.WithLabelValues(strategy).Set(float64(validators))
	p.shards.WithLabelValues(strategy).Set(float64(shards))
}

// RecordAssignmentError records a failed assignment.
func (p *PrometheusCollector) RecordAssignmentError(strategy, reason string) {
	p.ensureRegistered()
	p.assignmentErrors.WithLabelValues(strategy, reason).Inc()
}

// RecordBalance records the balance report of the latest assignment.
//
// Stake sums are exported as float64, which is lossy above 2^53; the gauges are
// for dashboards only.
func (p *PrometheusCollector) RecordBalance(strategy string, report types.BalanceReport) {
	p.ensureRegistered()
	p.stakeMin.WithLabelValues(strategy).Set(report.Stake.Min.Float64())
	p.stakeMax.WithLabelValues(strategy).Set(report.Stake.Max.Float64())
	p.stakeMean.WithLabelValues(strategy).Set(report.Stake.Mean)
	p.stakeVariance.WithLabelValues(strategy).Set(report.Stake.Variance)
	p.countSpread.WithLabelValues(strategy).Set(float64(report.Count.Spread))
	p.countVariance.WithLabelValues(strategy).Set(report.Count.Variance)
}
