package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/DiscreteTom/clonesure/lang"
	"github.com/DiscreteTom/clonesure/log"
	"github.com/DiscreteTom/clonesure/pkg"
)

// Expand rewrites every closure capture invocation in the given sources.
type Expand struct {
	Write bool   `help:"Rewrite files in place instead of writing to stdout."      short:"w"`
	Watch bool   `help:"Watch input files and re-expand on change (implies -w)."`
	Where string `help:"Expression selecting which invocations to expand."                   placeholder:"EXPR"`
	Macro string `help:"Macro name to expand."                                               default:"cc"`

	Sources []string `arg:"" optional:"" default:"-" help:"Source input file(s) or '-' for stdin." name:"source"`
}

// Run executes the expand command.
func (e *Expand) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	logger := log.Default()

	filter, err := compileWhere(e.Where, logger)
	if err != nil {
		return err
	}

	opts := []lang.Option{
		lang.WithMacroName(e.Macro),
		lang.WithFilter(filter),
		lang.WithLogger(logger),
	}

	if e.Watch {
		return e.watch(ctx, logger, opts)
	}

	for _, source := range e.Sources {
		if err := e.expandOne(ctx, source, opts); err != nil {
			return err
		}
	}

	return nil
}

// expandOne reads one source, expands it, and writes the result to stdout or
// back to the file when --write is given.
func (e *Expand) expandOne(
	ctx context.Context,
	source string,
	opts []lang.Option,
) error {
	src, err := readSource(source)
	if err != nil {
		return err
	}

	out, err := lang.Expand(ctx, src, opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", source, err)
	}

	if e.Write && source != stdinSource {
		info, err := os.Stat(source)
		if err != nil {
			return fmt.Errorf("%w: %w", pkg.ErrWriteOutput, err)
		}

		if err := os.WriteFile(source, []byte(out), info.Mode().Perm()); err != nil {
			return fmt.Errorf("%w: %w", pkg.ErrWriteOutput, err)
		}

		return nil
	}

	_, err = os.Stdout.WriteString(out)
	if err != nil {
		return fmt.Errorf("%w: %w", pkg.ErrWriteOutput, err)
	}

	return nil
}
