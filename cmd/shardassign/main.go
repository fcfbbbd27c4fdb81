// Command shardassign assigns validators from a validator-set file to shards
// and prints the assignment with its balance report.
//
// Usage:
//
//	shardassign assign --validators set.yaml --shards 4
//	shardassign assign --validators set.yaml --config shardassign.yaml --format json
//	shardassign compare --validators set.yaml --shards 4
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
