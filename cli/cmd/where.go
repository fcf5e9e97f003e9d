package cmd

import (
	"fmt"
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/DiscreteTom/clonesure/lang"
	"github.com/DiscreteTom/clonesure/log"
	"github.com/DiscreteTom/clonesure/pkg"
)

// whereEnv is the metadata one --where predicate sees per invocation.
// Example predicates:
//
//	mutable > 0                      # at least one @mut capture
//	"s1" in captures                 # captures a specific name
//	line < 100 && len(params) == 0   # location and arity
type whereEnv struct {
	Name     string   `expr:"name"`     // macro name as written
	Line     int      `expr:"line"`     // 1-based invocation line
	Captures []string `expr:"captures"` // captured identifiers, source order
	Mutable  int      `expr:"mutable"`  // count of mutable captures
	Params   []string `expr:"params"`   // pass-through parameter texts
	Move     bool     `expr:"move"`     // explicit move qualifier written
}

func makeWhereEnv(inv *lang.Invocation) whereEnv {
	captures := make([]string, len(inv.Spec.Captures))
	for i, capture := range inv.Spec.Captures {
		captures[i] = capture.Name
	}

	return whereEnv{
		Name:     inv.Macro,
		Line:     inv.Span.Start.Line,
		Captures: captures,
		Mutable:  inv.Spec.MutableCount(),
		Params:   inv.Spec.ParamTexts(),
		Move:     inv.Spec.ExplicitMove,
	}
}

// compileWhere compiles a --where predicate into an invocation filter.
// An empty predicate returns a nil filter, which accepts everything.
func compileWhere(src string, logger log.Logger) (func(*lang.Invocation) bool, error) {
	if src == "" {
		return nil, nil
	}

	program, err := expr.Compile(src,
		expr.Env(whereEnv{}),
		expr.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", pkg.ErrExprCompile, err)
	}

	return func(inv *lang.Invocation) bool {
		return runWhere(program, inv, logger)
	}, nil
}

// runWhere evaluates the predicate for one invocation. Evaluation errors
// reject the invocation, leaving it unexpanded, and are logged rather than
// propagated so one odd invocation cannot abort a whole file.
func runWhere(program *vm.Program, inv *lang.Invocation, logger log.Logger) bool {
	result, err := expr.Run(program, makeWhereEnv(inv))
	if err != nil {
		logger.Warn("predicate evaluation failed, skipping invocation",
			slog.Int("line", inv.Span.Start.Line),
			slog.Any("error", fmt.Errorf("%w: %w", pkg.ErrExprEvaluate, err)),
		)

		return false
	}

	accept, ok := result.(bool)

	return ok && accept
}
