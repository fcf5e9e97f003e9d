package lang

import (
	"context"
	"log/slog"
	"strings"
)

// ErrExpansionDepth is returned by Expand when nested invocations exceed the
// rewrite pass limit. Reaching it requires pathological input; ordinary
// nesting is bounded by the depth of the source program.
var ErrExpansionDepth = NewError("macro expansion depth limit exceeded")

// maxExpandPasses bounds nested rewriting. Each pass expands every top-level
// invocation, so the pass count is bounded by the nesting depth of the input.
const maxExpandPasses = 64

// Invocation is one macro-style occurrence of the closure grammar found in
// source text, e.g. cc!(|@s1| s1).
type Invocation struct {
	// Macro is the invocation name as written.
	Macro string

	// Span covers the whole invocation, name through closing delimiter.
	Span Span

	// Inner covers the content between the delimiters.
	Inner Span

	// Spec is the parsed closure. Its spans index into the scanned source.
	Spec *ClosureSpec
}

// Invocations scans source text and returns every top-level invocation of
// the configured macro name, each with its parsed ClosureSpec. Invocations
// nested inside another invocation's body are not returned; they surface
// after the enclosing body is expanded.
func Invocations(ctx context.Context, src string, opts ...Option) ([]*Invocation, error) {
	cfg := makeConfig(opts...)

	invs, err := scanInvocations(src, cfg)
	if err != nil {
		return nil, err
	}

	cfg.logger.TraceContext(ctx, "scan complete",
		slog.String("macro", cfg.macro),
		slog.Int("invocations", len(invs)),
	)

	return invs, nil
}

// Expand is the host boundary: given source text, it replaces every
// invocation of the configured macro with its generated expansion and returns
// the rewritten text. The result contains no extended syntax.
//
// Expansion is all-or-nothing: any grammar error aborts the whole call and
// nothing is emitted. Errors carry positions in the scanned text at call-site
// granularity.
func Expand(ctx context.Context, src string, opts ...Option) (string, error) {
	cfg := makeConfig(opts...)

	out := src

	for pass := 0; pass < maxExpandPasses; pass++ {
		result, spliced, err := expandOnce(out, cfg)
		if err != nil {
			return "", err
		}

		if spliced == 0 {
			cfg.logger.DebugContext(ctx, "expand complete",
				slog.String("macro", cfg.macro),
				slog.Int("passes", pass),
			)

			return result, nil
		}

		out = result
	}

	return "", ErrExpansionDepth
}

// expandOnce rewrites every top-level invocation in src, returning the new
// text and the number of invocations spliced. Invocations rejected by the
// filter are reproduced verbatim and do not count as spliced.
func expandOnce(src string, cfg config) (string, int, error) {
	invs, err := scanInvocations(src, cfg)
	if err != nil {
		return "", 0, err
	}

	if len(invs) == 0 {
		return src, 0, nil
	}

	var sb strings.Builder

	spliced := 0
	last := 0

	for _, inv := range invs {
		sb.WriteString(src[last:inv.Span.Start.Offset])

		if cfg.filter != nil && !cfg.filter(inv) {
			sb.WriteString(inv.Span.Text(src))
		} else {
			sb.WriteString(Generate(inv.Spec))
			spliced++
		}

		last = inv.Span.End
	}

	sb.WriteString(src[last:])

	return sb.String(), spliced, nil
}

// scanInvocations tokenizes the whole source and walks the token stream for
// the pattern: macro-name "!" open-delimiter … close-delimiter. Strings and
// comments never produce spurious matches because the scanner already
// discarded them. The delimiter may be any of (), [], or {}.
func scanInvocations(src string, cfg config) ([]*Invocation, error) {
	toks := newLexer(src, Pos{Offset: 0, Line: 1, Column: 1}, len(src)).scan()

	var invs []*Invocation

	for i := 0; i < len(toks); i++ {
		if !toks[i].isIdent(cfg.macro) {
			continue
		}

		if i+2 >= len(toks) || !toks[i+1].is("!") || !toks[i+2].opens() {
			continue
		}

		open := toks[i+2]

		// Find the matching close, balancing all delimiter kinds.
		depth := 1
		j := i + 3

		for ; j < len(toks); j++ {
			if toks[j].opens() {
				depth++
			} else if toks[j].closes() {
				if depth--; depth == 0 {
					break
				}
			}
		}

		if j >= len(toks) {
			return nil, errorAt(ErrUnterminatedParamList, open.Pos(), src)
		}

		closer := toks[j]

		inner := Span{Start: closer.Pos(), End: closer.Span.Start.Offset}
		if j > i+3 {
			inner = Span{Start: toks[i+3].Pos(), End: toks[j-1].Span.End}
		}

		spec, err := parseRegion(src, inner.Start, inner.End)
		if err != nil {
			return nil, err
		}

		invs = append(invs, &Invocation{
			Macro: toks[i].Text,
			Span:  Span{Start: toks[i].Pos(), End: closer.Span.End},
			Inner: inner,
			Spec:  spec,
		})

		i = j
	}

	return invs, nil
}
