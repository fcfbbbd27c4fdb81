package shardassign

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/birchmd/bp-shard-assign-poc/internal/logging"
	"github.com/birchmd/bp-shard-assign-poc/internal/metrics"
)

// NewSlogLogger creates a text logger backed by log/slog.
//
// Parameters:
//   - w: Destination (typically os.Stderr)
//   - level: "debug", "info", "warn" or "error" (empty means info)
//
// Returns:
//   - Logger: Logger writing to w
//   - error: Unknown level name
func NewSlogLogger(w io.Writer, level string) (Logger, error) {
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	return logging.NewSlogText(w, lvl), nil
}

// NewZapLogger creates a JSON logger with zap's production encoding.
//
// Parameters:
//   - w: Destination (typically os.Stderr)
//   - level: zap level name ("debug", "info", "warn", "error", ...)
//
// Returns:
//   - Logger: Logger backed by zap.SugaredLogger
//   - error: Unknown level name
func NewZapLogger(w io.Writer, level string) (Logger, error) {
	l, err := logging.NewZapProduction(w, level)
	if err != nil {
		return nil, err
	}

	return l, nil
}

// NewPrometheusMetrics creates a MetricsCollector that exports Prometheus metrics.
//
// Metrics are registered with reg on first use. A nil reg means
// prometheus.DefaultRegisterer and an empty namespace means "shardassign".
//
// Parameters:
//   - reg: Registerer to register collectors with
//   - namespace: Metric name prefix
//
// Returns:
//   - MetricsCollector: Prometheus-backed collector
func NewPrometheusMetrics(reg prometheus.Registerer, namespace string) MetricsCollector {
	return metrics.NewPrometheus(reg, namespace)
}
