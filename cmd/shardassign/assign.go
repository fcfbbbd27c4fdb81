package main

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	shardassign "github.com/birchmd/bp-shard-assign-poc"
	"github.com/birchmd/bp-shard-assign-poc/source"
)

const (
	ValidatorsKey  = "validators"
	ConfigKey      = "config"
	ShardsKey      = "shards"
	StrategyKey    = "strategy"
	MinSeatsKey    = "min-seats"
	FormatKey      = "format"
	MetricsFileKey = "metrics-file"

	formatText = "text"
	formatJSON = "json"
)

func assignCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "assign",
		Short: "Assigns validators to shards and prints the result",
		Args:  cobra.NoArgs,
		RunE:  assignFunc,
	}
	addAssignFlags(c.Flags())

	return c
}

func addAssignFlags(flags *pflag.FlagSet) {
	flags.String(ValidatorsKey, "", "Path to the validator-set YAML file (required)")
	flags.String(ConfigKey, "", "Path to a YAML config file")
	flags.Int(ShardsKey, 0, "Number of shards (overrides config)")
	flags.String(StrategyKey, "", "Strategy: greedy, seat-filling or round-robin (overrides config)")
	flags.Int(MinSeatsKey, 0, "Minimum validators per shard for seat-filling (overrides config)")
	flags.String(FormatKey, formatText, "Output format: text or json")
	flags.String(MetricsFileKey, "", "Write Prometheus metrics in text exposition format to this file")
}

type assignFlags struct {
	ValidatorsPath string
	Format         string
	MetricsFile    string
	Config         shardassign.Config
}

func parseAssignFlags(flags *pflag.FlagSet) (*assignFlags, error) {
	validatorsPath, err := flags.GetString(ValidatorsKey)
	if err != nil {
		return nil, err
	}
	if validatorsPath == "" {
		return nil, errors.New("--validators is required")
	}

	format, err := flags.GetString(FormatKey)
	if err != nil {
		return nil, err
	}
	if format != formatText && format != formatJSON {
		return nil, fmt.Errorf("unknown output format %q (want %s or %s)", format, formatText, formatJSON)
	}

	metricsFile, err := flags.GetString(MetricsFileKey)
	if err != nil {
		return nil, err
	}

	cfg, err := configFromFlags(flags)
	if err != nil {
		return nil, err
	}

	return &assignFlags{
		ValidatorsPath: validatorsPath,
		Format:         format,
		MetricsFile:    metricsFile,
		Config:         *cfg,
	}, nil
}

// configFromFlags loads --config (or defaults) and applies explicit flag overrides.
func configFromFlags(flags *pflag.FlagSet) (*shardassign.Config, error) {
	configPath, err := flags.GetString(ConfigKey)
	if err != nil {
		return nil, err
	}

	cfg := shardassign.DefaultConfig()
	if configPath != "" {
		loaded, err := shardassign.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = *loaded
	}

	if flags.Changed(ShardsKey) {
		if cfg.NumShards, err = flags.GetInt(ShardsKey); err != nil {
			return nil, err
		}
	}
	if flags.Changed(StrategyKey) {
		if cfg.Strategy, err = flags.GetString(StrategyKey); err != nil {
			return nil, err
		}
	}
	if flags.Changed(MinSeatsKey) {
		if cfg.MinSeatsPerShard, err = flags.GetInt(MinSeatsKey); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func assignFunc(c *cobra.Command, _ []string) error {
	parsed, err := parseAssignFlags(c.Flags())
	if err != nil {
		return err
	}

	logger, closeLogger, err := newLogger(c.Flags(), c.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLogger()

	reg := prometheus.NewRegistry()
	assigner, err := shardassign.NewAssigner(&parsed.Config, source.NewFile(parsed.ValidatorsPath),
		shardassign.WithLogger(logger),
		shardassign.WithMetrics(shardassign.NewPrometheusMetrics(reg, parsed.Config.Metrics.Namespace)),
	)
	if err != nil {
		return err
	}

	outcome, err := assigner.Assign(c.Context())
	if err != nil {
		return err
	}

	if parsed.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(parsed.MetricsFile, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	if parsed.Format == formatJSON {
		return writeJSON(c.OutOrStdout(), newAssignmentJSON(outcome))
	}

	return writeText(c.OutOrStdout(), outcome)
}
