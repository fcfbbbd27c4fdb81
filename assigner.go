package shardassign

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/birchmd/bp-shard-assign-poc/balance"
	"github.com/birchmd/bp-shard-assign-poc/internal/hooks"
	"github.com/birchmd/bp-shard-assign-poc/internal/logger"
	"github.com/birchmd/bp-shard-assign-poc/internal/metrics"
	"github.com/birchmd/bp-shard-assign-poc/strategy"
	"github.com/birchmd/bp-shard-assign-poc/types"
)

// Error reasons reported to MetricsCollector.RecordAssignmentError.
const (
	reasonInvalidInput           = "invalid_input"
	reasonInsufficientValidators = "insufficient_validators"
	reasonSource                 = "source"
	reasonOther                  = "other"
)

// AssignShards assigns validators to numShards shards with the greedy strategy.
//
// Validators are placed heaviest first on the shard with the smallest stake
// sum, ties broken by validator count and then shard index. The result is a
// partition of the input and every shard holds at least one validator.
//
// Parameters:
//   - validators: Validator set (any order, unique non-empty IDs)
//   - numShards: Number of shards, 1 <= numShards <= len(validators)
//
// Returns:
//   - *AssignmentResult: Per-shard validators and stake sums
//   - error: ErrInvalidInput or ErrInsufficientValidators (wrapped)
//
// Example:
//
//	result, err := shardassign.AssignShards(validators, 4)
//	if errors.Is(err, shardassign.ErrInsufficientValidators) {
//	    // fewer validators than shards
//	}
func AssignShards(validators []Validator, numShards int) (*AssignmentResult, error) {
	return strategy.NewGreedy().Assign(validators, numShards)
}

// Evaluate summarizes how evenly an assignment spreads stake and validators.
//
// A nil or empty result yields a zero report.
func Evaluate(result *AssignmentResult) BalanceReport {
	return balance.Evaluate(result)
}

// NewStrategy builds the strategy named by cfg.Strategy.
//
// Parameters:
//   - cfg: Configuration (Strategy and MinSeatsPerShard are used)
//
// Returns:
//   - AssignmentStrategy: Configured strategy
//   - error: ErrUnknownStrategy (wrapped) for unrecognized names
func NewStrategy(cfg *Config) (AssignmentStrategy, error) {
	return newStrategy(cfg, logger.NewNop())
}

func newStrategy(cfg *Config, log Logger) (AssignmentStrategy, error) {
	switch cfg.Strategy {
	case StrategyGreedy, "":
		return strategy.NewGreedy(strategy.WithGreedyLogger(log)), nil
	case StrategySeatFilling:
		return strategy.NewSeatFilling(
			strategy.WithMinSeats(max(cfg.MinSeatsPerShard, 1)),
			strategy.WithSeatFillingLogger(log),
		), nil
	case StrategyRoundRobin:
		return strategy.NewRoundRobin(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, cfg.Strategy)
	}
}

// Outcome is the result of one Assigner run.
type Outcome struct {
	// Result is the computed assignment.
	Result *AssignmentResult

	// Balance summarizes Result.
	Balance BalanceReport

	// Duration is the time spent in the strategy.
	Duration time.Duration
}

// Assigner runs the configured strategy against a validator source.
//
// Assigner is the main entry point of the library for long-running callers.
// It handles:
//   - Pulling the validator set from a ValidatorSource
//   - Running the configured AssignmentStrategy
//   - Evaluating balance of the result
//   - Logging, metrics and hooks around each run
//
// Thread Safety:
//   - All public methods are safe for concurrent use
//   - The Assigner holds configuration only; no state is kept between runs
type Assigner struct {
	cfg    Config
	source ValidatorSource

	strategy AssignmentStrategy
	hooks    Hooks
	metrics  MetricsCollector
	logger   Logger
}

// NewAssigner creates a new Assigner instance with the provided configuration.
//
// Missing configuration values are filled with defaults before validation;
// cfg itself is not modified.
//
// Parameters:
//   - cfg: Configuration
//   - source: Validator source consulted on every Assign call
//   - opts: Optional configuration (strategy, hooks, metrics, logger)
//
// Returns:
//   - *Assigner: Initialized assigner
//   - error: ErrInvalidConfig or ErrValidatorSourceRequired (wrapped)
//
// Example:
//
//	cfg := shardassign.DefaultConfig()
//	src := source.NewStatic(validators)
//	assigner, err := shardassign.NewAssigner(&cfg, src)
func NewAssigner(cfg *Config, source ValidatorSource, opts ...Option) (*Assigner, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if source == nil {
		return nil, ErrValidatorSourceRequired
	}

	c := *cfg
	SetDefaults(&c)

	if err := c.Validate(); err != nil {
		return nil, err
	}

	options := &assignerOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(options)
		}
	}

	// Provide safe defaults for optional dependencies to avoid nil checks everywhere
	metricsCollector := options.metrics
	if metricsCollector == nil {
		metricsCollector = metrics.NewNop()
	}

	loggerInstance := options.logger
	if loggerInstance == nil {
		loggerInstance = logger.NewNop()
	}

	// Validate with warnings after logger is available
	c.ValidateWithWarnings(loggerInstance)

	strategyInstance := options.strategy
	if strategyInstance == nil {
		var err error
		strategyInstance, err = newStrategy(&c, loggerInstance)
		if err != nil {
			return nil, err
		}
	}

	return &Assigner{
		cfg:      c,
		source:   source,
		strategy: strategyInstance,
		hooks:    hooks.WithDefaults(options.hooks),
		metrics:  metricsCollector,
		logger:   loggerInstance,
	}, nil
}

// Config returns a copy of the effective configuration (defaults applied).
func (a *Assigner) Config() Config {
	return a.cfg
}

// Strategy returns the strategy in use.
func (a *Assigner) Strategy() AssignmentStrategy {
	return a.strategy
}

// Assign lists validators from the source and assigns them to Config.NumShards shards.
//
// Parameters:
//   - ctx: Context for cancellation, passed to the source and hooks
//
// Returns:
//   - *Outcome: Assignment, balance report and strategy duration
//   - error: Source, input or context error (wrapped)
func (a *Assigner) Assign(ctx context.Context) (*Outcome, error) {
	validators, err := a.source.ListValidators(ctx)
	if err != nil {
		return nil, a.fail(ctx, reasonSource, fmt.Errorf("list validators: %w", err))
	}

	return a.AssignValidators(ctx, validators)
}

// AssignValidators assigns the given validators to Config.NumShards shards.
//
// On success the balance report is recorded and Hooks.OnAssigned is called.
// On failure an error metric is recorded and Hooks.OnError is called. Hook
// errors are logged and never change the returned value.
//
// Parameters:
//   - ctx: Context for cancellation, passed to hooks
//   - validators: Validator set (any order)
//
// Returns:
//   - *Outcome: Assignment, balance report and strategy duration
//   - error: ErrInvalidInput, ErrInsufficientValidators or context error (wrapped)
func (a *Assigner) AssignValidators(ctx context.Context, validators []Validator) (*Outcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, a.fail(ctx, reasonOther, err)
	}

	name := a.strategy.Name()

	start := time.Now()
	result, err := a.strategy.Assign(validators, a.cfg.NumShards)
	elapsed := time.Since(start)
	if err != nil {
		return nil, a.fail(ctx, errorReason(err), fmt.Errorf("assign %d validators to %d shards: %w",
			len(validators), a.cfg.NumShards, err))
	}

	report := balance.Evaluate(result)

	a.metrics.RecordAssignment(name, elapsed.Seconds(), len(validators), a.cfg.NumShards)
	a.metrics.RecordBalance(name, report)

	a.logger.Info("shard assignment computed",
		"strategy", name,
		"validators", len(validators),
		"shards", a.cfg.NumShards,
		"stakeSpread", report.Stake.Spread.Dec(),
		"countSpread", report.Count.Spread,
		"fingerprint", fmt.Sprintf("%016x", result.Fingerprint()),
		"duration", elapsed,
	)

	if err := a.hooks.OnAssigned(ctx, result, report); err != nil {
		a.logger.Error("OnAssigned hook failed", "error", err)
	}

	return &Outcome{Result: result, Balance: report, Duration: elapsed}, nil
}

// fail records and reports an assignment failure, returning err unchanged.
func (a *Assigner) fail(ctx context.Context, reason string, err error) error {
	a.metrics.RecordAssignmentError(a.strategy.Name(), reason)
	a.logger.Error("shard assignment failed", "strategy", a.strategy.Name(), "reason", reason, "error", err)

	if hookErr := a.hooks.OnError(ctx, err); hookErr != nil {
		a.logger.Error("OnError hook failed", "error", hookErr)
	}

	return err
}

func errorReason(err error) string {
	switch {
	case errors.Is(err, types.ErrInvalidInput):
		return reasonInvalidInput
	case errors.Is(err, types.ErrInsufficientValidators):
		return reasonInsufficientValidators
	default:
		return reasonOther
	}
}
