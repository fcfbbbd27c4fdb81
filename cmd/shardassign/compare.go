package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	shardassign "github.com/birchmd/bp-shard-assign-poc"
	"github.com/birchmd/bp-shard-assign-poc/source"
)

// compareStrategies lists the strategies compared side by side.
var compareStrategies = []string{
	shardassign.StrategyGreedy,
	shardassign.StrategySeatFilling,
	shardassign.StrategyRoundRobin,
}

func compareCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "compare",
		Short: "Runs every strategy on a validator set and compares balance",
		Args:  cobra.NoArgs,
		RunE:  compareFunc,
	}
	addCompareFlags(c.Flags())

	return c
}

func addCompareFlags(flags *pflag.FlagSet) {
	flags.String(ValidatorsKey, "", "Path to the validator-set YAML file (required)")
	flags.String(ConfigKey, "", "Path to a YAML config file")
	flags.Int(ShardsKey, 0, "Number of shards (overrides config)")
	flags.Int(MinSeatsKey, 0, "Minimum validators per shard for seat-filling (overrides config)")
	flags.String(FormatKey, formatText, "Output format: text or json")
}

func compareFunc(c *cobra.Command, _ []string) error {
	flags := c.Flags()

	validatorsPath, err := flags.GetString(ValidatorsKey)
	if err != nil {
		return err
	}
	if validatorsPath == "" {
		return fmt.Errorf("--%s is required", ValidatorsKey)
	}

	format, err := flags.GetString(FormatKey)
	if err != nil {
		return err
	}

	cfg, err := configFromFlags(flags)
	if err != nil {
		return err
	}

	logger, closeLogger, err := newLogger(flags, c.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLogger()

	validators, err := source.NewFile(validatorsPath).ListValidators(c.Context())
	if err != nil {
		return err
	}

	outcomes := make([]*shardassign.Outcome, 0, len(compareStrategies))
	for _, name := range compareStrategies {
		run := *cfg
		run.Strategy = name

		assigner, err := shardassign.NewAssigner(&run, source.NewStatic(validators), shardassign.WithLogger(logger))
		if err != nil {
			return err
		}

		outcome, err := assigner.Assign(c.Context())
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		outcomes = append(outcomes, outcome)
	}

	switch format {
	case formatJSON:
		out := make([]assignmentJSON, 0, len(outcomes))
		for _, o := range outcomes {
			out = append(out, newAssignmentJSON(o))
		}

		return writeJSON(c.OutOrStdout(), out)
	case formatText:
		return writeComparison(c.OutOrStdout(), outcomes)
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)", format, formatText, formatJSON)
	}
}
