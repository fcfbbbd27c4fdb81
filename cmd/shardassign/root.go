package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	shardassign "github.com/birchmd/bp-shard-assign-poc"
)

const (
	LogFormatKey = "log-format"
	LogLevelKey  = "log-level"

	logFormatText = "text"
	logFormatJSON = "json"
)

func newRootCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "shardassign",
		Short: "Deterministic validator-to-shard assignment",
		Long: `shardassign distributes block-producing validators across shards.

Validators are read from a YAML validator-set file:

  validators:
    - id: alice
      stake: 1000
    - id: bob
      stake: 0x3e8

The same validator set always produces the same assignment, whatever
order the file lists validators in.`,
		SilenceUsage: true,
	}

	addLogFlags(c.PersistentFlags())

	c.AddCommand(assignCommand(), compareCommand())

	return c
}

func addLogFlags(flags *pflag.FlagSet) {
	flags.String(LogFormatKey, logFormatText, "Log format: text (slog) or json (zap)")
	flags.String(LogLevelKey, "warn", "Log level: debug, info, warn or error")
}

// newLogger builds the logger selected by the persistent log flags.
//
// The returned close function flushes buffered output.
func newLogger(flags *pflag.FlagSet, stderr io.Writer) (shardassign.Logger, func(), error) {
	format, err := flags.GetString(LogFormatKey)
	if err != nil {
		return nil, nil, err
	}

	level, err := flags.GetString(LogLevelKey)
	if err != nil {
		return nil, nil, err
	}

	switch format {
	case logFormatText:
		l, err := shardassign.NewSlogLogger(stderr, level)
		if err != nil {
			return nil, nil, err
		}

		return l, func() {}, nil
	case logFormatJSON:
		l, err := shardassign.NewZapLogger(stderr, level)
		if err != nil {
			return nil, nil, err
		}

		return l, func() {
			if s, ok := l.(interface{ Sync() error }); ok {
				_ = s.Sync()
			}
		}, nil
	default:
		return nil, nil, fmt.Errorf("unknown log format %q (want %s or %s)", format, logFormatText, logFormatJSON)
	}
}
