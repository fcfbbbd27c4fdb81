package shardassign

// Option configures an Assigner with optional dependencies.
type Option func(*assignerOptions)

// assignerOptions holds optional Assigner configuration.
type assignerOptions struct {
	strategy AssignmentStrategy
	hooks    *Hooks
	metrics  MetricsCollector
	logger   Logger
}

// WithStrategy overrides the strategy selected by Config.Strategy.
//
// Parameters:
//   - strategy: AssignmentStrategy implementation
//
// Returns:
//   - Option: Functional option for NewAssigner
//
// Example:
//
//	assigner, err := shardassign.NewAssigner(&cfg, src, shardassign.WithStrategy(strategy.NewRoundRobin()))
func WithStrategy(strategy AssignmentStrategy) Option {
	return func(o *assignerOptions) {
		o.strategy = strategy
	}
}

// WithHooks sets assignment event hooks.
//
// Parameters:
//   - hooks: Hooks structure with callback functions
//
// Returns:
//   - Option: Functional option for NewAssigner
//
// Example:
//
//	hooks := &shardassign.Hooks{
//	    OnAssigned: func(ctx context.Context, result *shardassign.AssignmentResult, report shardassign.BalanceReport) error {
//	        return publish(result)
//	    },
//	}
//	assigner, err := shardassign.NewAssigner(&cfg, src, shardassign.WithHooks(hooks))
func WithHooks(hooks *Hooks) Option {
	return func(o *assignerOptions) {
		o.hooks = hooks
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewAssigner
//
// Example:
//
//	metrics := shardassign.NewPrometheusMetrics(prometheus.DefaultRegisterer, "")
//	assigner, err := shardassign.NewAssigner(&cfg, src, shardassign.WithMetrics(metrics))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *assignerOptions) {
		o.metrics = metrics
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for NewAssigner
//
// Example:
//
//	logger := zap.NewExample().Sugar()
//	assigner, err := shardassign.NewAssigner(&cfg, src, shardassign.WithLogger(logger))
func WithLogger(logger Logger) Option {
	return func(o *assignerOptions) {
		o.logger = logger
	}
}
