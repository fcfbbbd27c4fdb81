package testing

import (
	"testing"

	"github.com/birchmd/bp-shard-assign-poc/internal/logger"
	"github.com/birchmd/bp-shard-assign-poc/types"
)

// NewTestLogger returns a Logger that writes through tb.Logf, so assigner and
// strategy logs show up next to the failing assertion.
//
// Example:
//
//	assigner, err := shardassign.NewAssigner(&cfg, src,
//	    shardassign.WithLogger(assigntest.NewTestLogger(t)))
func NewTestLogger(tb testing.TB) types.Logger {
	return logger.NewTest(tb)
}
