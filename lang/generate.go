package lang

import "strings"

// GenOption configures output rendering. Rendering choices are cosmetic:
// every layout produces the same program.
type GenOption func(genConfig) genConfig

type genConfig struct {
	indent int // spaces per level; negative renders on a single line
}

// WithIndent renders the expansion across multiple lines, indented by width
// spaces per level. Without it the expansion is a single line, which splices
// cleanly into surrounding code.
func WithIndent(width int) GenOption {
	return func(cfg genConfig) genConfig {
		cfg.indent = width

		return cfg
	}
}

// Generate renders the expanded form of spec: an enclosing block containing
// one clone binding per capture, in source order, followed by the rewritten
// closure expression. The block evaluates to the closure.
//
// The closure's parameter list is exactly the pass-through parameters, in
// order, with no insertions, deletions, or renaming. Its qualifier is forced
// to "move" whenever captures exist, so the closure takes ownership of the
// freshly cloned bindings; with no captures the source qualifier (or its
// absence) is preserved untouched. Return type and body are reproduced
// verbatim.
//
// Generate is total: it cannot fail on a spec produced by a successful parse.
func Generate(spec *ClosureSpec, opts ...GenOption) string {
	cfg := genConfig{indent: -1}
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	var sb strings.Builder

	sep, pad := " ", ""
	if cfg.indent >= 0 {
		sep = "\n"
		pad = strings.Repeat(" ", cfg.indent)
	}

	sb.WriteString("{")
	sb.WriteString(sep)

	// Each binding shadows the outer name inside the block, so the body
	// refers to the clone under the original name without any rewriting.
	for _, capture := range spec.Captures {
		sb.WriteString(pad)
		sb.WriteString("let ")

		if capture.Mutable {
			sb.WriteString("mut ")
		}

		sb.WriteString(capture.Name)
		sb.WriteString(" = ")
		sb.WriteString(capture.Name)
		sb.WriteString(".clone();")
		sb.WriteString(sep)
	}

	sb.WriteString(pad)

	if len(spec.Captures) > 0 || spec.ExplicitMove {
		sb.WriteString("move ")
	}

	sb.WriteString("|")
	sb.WriteString(strings.Join(spec.ParamTexts(), ", "))
	sb.WriteString("|")

	if ret := spec.ReturnTypeText(); ret != "" {
		sb.WriteString(" -> ")
		sb.WriteString(ret)
	}

	sb.WriteString(" ")
	sb.WriteString(spec.BodyText())
	sb.WriteString(sep)
	sb.WriteString("}")

	return sb.String()
}
