//go:build !pprof

package cli

import (
	"context"

	"github.com/alecthomas/kong"
)

// pprofConfig is a stub used when built without the pprof tag; the flags it
// would contribute are hidden entirely.
type pprofConfig struct{}

func (pprofConfig) vars() kong.Vars { return kong.Vars{} }

func (pprofConfig) group() kong.Group {
	var group kong.Group

	group.Key = "pprof"
	group.Title = "Profiling (pprof; requires build tag)"

	return group
}

func (pprofConfig) start(context.Context) (stop func()) {
	return func() {}
}
