package shardassign

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/birchmd/bp-shard-assign-poc/strategy"
)

// Strategy names accepted in Config.Strategy.
const (
	StrategyGreedy      = strategy.NameGreedy
	StrategySeatFilling = strategy.NameSeatFilling
	StrategyRoundRobin  = strategy.NameRoundRobin
)

// strategyNames lists the accepted strategy names in documentation order.
var strategyNames = []string{StrategyGreedy, StrategySeatFilling, StrategyRoundRobin}

// largeShardCount is the shard count above which ValidateWithWarnings advises caution.
const largeShardCount = 1024

// MetricsConfig controls metric naming.
type MetricsConfig struct {
	// Namespace prefixes every metric name (e.g. "shardassign_assigner_assignments_total").
	Namespace string `yaml:"namespace"`
}

// Config is the configuration for the Assigner.
type Config struct {
	// NumShards is the number of shards validators are assigned to.
	// Must be positive. Partitioning strategies also require it to be at
	// most the validator set size, which is checked per assignment.
	NumShards int `yaml:"numShards"`

	// Strategy selects the assignment algorithm: "greedy" (default),
	// "seat-filling" or "round-robin".
	Strategy string `yaml:"strategy"`

	// MinSeatsPerShard is the minimum number of validators per shard.
	// Only the seat-filling strategy honours values above 1.
	// Default: 1
	MinSeatsPerShard int `yaml:"minSeatsPerShard"`

	// Metrics controls metric naming.
	Metrics MetricsConfig `yaml:"metrics"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		NumShards:        4,
		Strategy:         StrategyGreedy,
		MinSeatsPerShard: 1,
		Metrics: MetricsConfig{
			Namespace: "shardassign",
		},
	}
}

// SetDefaults fills in missing configuration values with defaults.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.NumShards == 0 {
		cfg.NumShards = defaults.NumShards
	}
	if cfg.Strategy == "" {
		cfg.Strategy = defaults.Strategy
	}
	if cfg.MinSeatsPerShard == 0 {
		cfg.MinSeatsPerShard = defaults.MinSeatsPerShard
	}
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = defaults.Metrics.Namespace
	}
}

// Validate checks configuration constraints and returns error for invalid values.
//
// Hard Validation Rules:
//   - NumShards > 0
//   - MinSeatsPerShard > 0
//   - Strategy is one of the known names
//
// Returns:
//   - error: ErrInvalidConfig (wrapped) with a clear explanation, nil if valid
func (cfg *Config) Validate() error {
	if cfg.NumShards <= 0 {
		return fmt.Errorf("%w: numShards must be > 0, got %d", ErrInvalidConfig, cfg.NumShards)
	}

	if cfg.MinSeatsPerShard <= 0 {
		return fmt.Errorf("%w: minSeatsPerShard must be > 0, got %d", ErrInvalidConfig, cfg.MinSeatsPerShard)
	}

	if !slices.Contains(strategyNames, cfg.Strategy) {
		return fmt.Errorf("%w: %w %q (want one of %v)", ErrInvalidConfig, ErrUnknownStrategy, cfg.Strategy, strategyNames)
	}

	return nil
}

// ValidateWithWarnings logs warnings for valid but non-recommended values.
//
// This is called after Validate() in NewAssigner() to provide operator guidance.
//
// Parameters:
//   - logger: Logger instance for warning output
func (cfg *Config) ValidateWithWarnings(logger Logger) {
	if cfg.MinSeatsPerShard > 1 && cfg.Strategy != StrategySeatFilling {
		logger.Warn(
			"minSeatsPerShard is ignored by this strategy",
			"strategy", cfg.Strategy,
			"minSeatsPerShard", cfg.MinSeatsPerShard,
			"recommended", StrategySeatFilling,
		)
	}

	if cfg.NumShards > largeShardCount {
		logger.Warn(
			"numShards is very large, each shard will hold few validators",
			"numShards", cfg.NumShards,
		)
	}
}

// LoadConfig reads a YAML configuration file, applies defaults and validates it.
//
// Unknown keys are rejected so typos do not silently fall back to defaults.
// An empty file yields DefaultConfig().
//
// Parameters:
//   - path: Path to the YAML file
//
// Returns:
//   - *Config: Loaded configuration
//   - error: Read, decode or validation error
//
// Example:
//
//	# shardassign.yaml
//	numShards: 8
//	strategy: seat-filling
//	minSeatsPerShard: 4
//	metrics:
//	  namespace: chain
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := ParseConfig(f)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// ParseConfig decodes a YAML configuration, applies defaults and validates it.
func ParseConfig(r io.Reader) (*Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	SetDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// TestConfig returns a small configuration for tests.
//
// Returns:
//   - Config: Two greedy shards
//
// Example:
//
//	cfg := shardassign.TestConfig()
//	assigner, err := shardassign.NewAssigner(&cfg, source.NewStatic(validators))
func TestConfig() Config {
	cfg := DefaultConfig()
	cfg.NumShards = 2
	cfg.Metrics.Namespace = "shardassign_test"

	return cfg
}
