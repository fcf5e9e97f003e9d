package cmd

import (
	"context"

	"github.com/DiscreteTom/clonesure/cli/cmd/repl"
	"github.com/DiscreteTom/clonesure/log"
)

// Repl starts the interactive expansion preview.
type Repl struct {
	Macro string `help:"Macro name recognized in full invocations." default:"cc"`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) error {
	return repl.Run(ctx, r.Macro, log.Default())
}
