package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/DiscreteTom/clonesure/cli/cmd"
	"github.com/DiscreteTom/clonesure/pkg"
)

// CLI is the top-level command-line interface for clonesure.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Expand  cmd.Expand  `cmd:"" default:"withargs" help:"Expand closure capture invocations in source files"`
	Spec    cmd.Spec    `cmd:""                    help:"Parse one closure literal and dump its structured form"`
	Repl    cmd.Repl    `cmd:""                    help:"Interactively preview closure expansions"`
	Version cmd.Version `cmd:""                    help:"Print version information"`
}

// Run executes the clonesure CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		cli.Pprof.vars(),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact: true,
				Summary: true,
			}),
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	ctx = cmd.WithContext(ctx, ktx)

	// Finalize logger configuration with all parsed values, including flags
	// that don't configure the logger through TextUnmarshaler side effects.
	cli.Log.start(ctx)

	// No-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	// Execute the selected command.
	return ktx.Run(ctx, &cli)
}
