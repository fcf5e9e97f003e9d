package lang

import (
	"context"
	"io"
	"log/slog"
	"strconv"
)

// ParseString parses one capture-annotated closure literal into its
// structured form. The parse is pure and all-or-nothing: it consumes the
// entire input or fails with a [ParseError] wrapping one of the sentinel
// errors in this package.
func ParseString(ctx context.Context, src string, opts ...Option) (*ClosureSpec, error) {
	cfg := makeConfig(opts...)

	spec, err := parseRegion(src, Pos{Offset: 0, Line: 1, Column: 1}, len(src))
	if err != nil {
		return nil, err
	}

	cfg.logger.TraceContext(ctx, "parse complete",
		slog.Int("captures", len(spec.Captures)),
		slog.Int("params", len(spec.Params)),
		slog.Bool("explicit_move", spec.ExplicitMove),
	)

	return spec, nil
}

// ParseReader parses a closure literal from an io.Reader.
func ParseReader(ctx context.Context, r io.Reader, opts ...Option) (*ClosureSpec, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, WrapError(err)
	}

	return ParseString(ctx, string(data), opts...)
}

// parseRegion parses src[base.Offset:end]. Offsets in the resulting spec are
// relative to src itself, so Expand can parse a slice of a larger file and
// still report file-accurate positions.
func parseRegion(src string, base Pos, end int) (*ClosureSpec, error) {
	lex := newLexer(src, base, end)

	p := &parser{
		src:  src,
		toks: lex.scan(),
		head: base,
	}

	return p.parse()
}

// parser holds the parser state: a token slice and a cursor.
type parser struct {
	src  string
	toks []Token
	idx  int
	head Pos // position of the region start, used for empty-input errors
}

func (p *parser) eof() bool { return p.idx >= len(p.toks) }

// current returns the token under the cursor. The caller checks eof first.
func (p *parser) current() Token { return p.toks[p.idx] }

// pos returns the position of the token under the cursor, or of the region
// start when the input is exhausted.
func (p *parser) pos() Pos {
	if p.eof() {
		if len(p.toks) > 0 {
			return p.toks[len(p.toks)-1].Pos()
		}

		return p.head
	}

	return p.current().Pos()
}

// parse recognizes: [ "move" ] "|" param_list "|" [ "->" return_type ] body.
func (p *parser) parse() (*ClosureSpec, error) {
	spec := &ClosureSpec{Source: p.src}

	if !p.eof() && p.current().isIdent("move") {
		spec.ExplicitMove = true
		p.idx++
	}

	if p.eof() || !p.current().is("|") {
		return nil, errorAt(ErrMissingParamList, p.pos(), p.src)
	}

	open := p.current()
	p.idx++

	if err := p.parseParamList(spec, open); err != nil {
		return nil, err
	}

	if !p.eof() && p.current().is("->") {
		if err := p.parseReturnType(spec); err != nil {
			return nil, err
		}
	}

	return spec, p.parseBody(spec)
}

// parseParamList consumes entries up to and including the closing "|".
//
// Capture entries are recognized only as a strict leading run. The first
// entry that does not begin with the capture marker ends the run permanently;
// every later entry is an opaque pass-through parameter even when it begins
// with "@". This is the grammar's fixed positional rule, not a recovery
// heuristic.
func (p *parser) parseParamList(spec *ClosureSpec, open Token) error {
	capturing := true
	seen := make(map[string]bool)

	for {
		if p.eof() {
			return errorAt(ErrUnterminatedParamList, open.Pos(), p.src)
		}

		tok := p.current()

		switch {
		case tok.is("|"):
			p.idx++

			return nil

		case tok.is(","):
			// Bare separators, including empty entries, are eaten.
			p.idx++

		case capturing && tok.is("@"):
			if err := p.parseCapture(spec, seen); err != nil {
				return err
			}

		default:
			capturing = false

			p.parseOpaqueParam(spec)
		}
	}
}

// parseCapture recognizes: "@" [ "mut" ] identifier, terminated by "," or the
// closing "|".
func (p *parser) parseCapture(spec *ClosureSpec, seen map[string]bool) error {
	marker := p.current()
	p.idx++ // "@"

	mutable := false
	if !p.eof() && p.current().isIdent("mut") {
		mutable = true
		p.idx++
	}

	if p.eof() || p.current().Kind != KindIdent {
		return errorAt(ErrMalformedCapture, p.pos(), p.src)
	}

	name := p.current()
	p.idx++

	// The entry must end here; trailing tokens such as a type annotation
	// make the whole entry malformed rather than partially captured.
	if p.eof() || !(p.current().is(",") || p.current().is("|")) {
		return errorAt(ErrMalformedCapture, p.pos(), p.src)
	}

	if seen[name.Text] {
		err := errorAt(ErrDuplicateCapture, name.Pos(), p.src)
		err.Detail = strconv.Quote(name.Text)

		return err
	}

	seen[name.Text] = true

	spec.Captures = append(spec.Captures, CaptureEntry{
		Name:    name.Text,
		Mutable: mutable,
		Pos:     marker.Pos(),
	})

	return nil
}

// parseOpaqueParam consumes one pass-through parameter: everything up to the
// next "," or "|" at nesting depth zero. The tokens are never interpreted,
// only recorded as a span of the original source.
func (p *parser) parseOpaqueParam(spec *ClosureSpec) {
	start := p.current().Span.Start
	end := start.Offset
	depth := 0

	for !p.eof() {
		tok := p.current()

		if depth == 0 && (tok.is(",") || tok.is("|")) {
			break
		}

		if tok.opens() {
			depth++
		} else if tok.closes() && depth > 0 {
			depth--
		}

		end = tok.Span.End
		p.idx++
	}

	spec.Params = append(spec.Params, Span{Start: start, End: end})
}

// parseReturnType consumes "->" and the annotation span, which extends to the
// first "{" at nesting depth zero. The block that begins there is the body;
// a return type without a following block has no body to attach to.
func (p *parser) parseReturnType(spec *ClosureSpec) error {
	arrow := p.current()
	p.idx++ // "->"

	var span Span

	depth := 0

	for !p.eof() {
		tok := p.current()

		if depth == 0 && tok.is("{") {
			spec.ReturnType = span

			return nil
		}

		if tok.opens() {
			depth++
		} else if tok.closes() && depth > 0 {
			depth--
		}

		if span.Start.IsZero() {
			span.Start = tok.Span.Start
		}

		span.End = tok.Span.End
		p.idx++
	}

	return errorAt(ErrMissingBody, arrow.Pos(), p.src)
}

// parseBody claims every remaining token as the body span. The body is a
// single opaque span regardless of its internal structure; it is never
// parsed. An exhausted input here means the closure has no body.
func (p *parser) parseBody(spec *ClosureSpec) error {
	if p.eof() {
		return errorAt(ErrMissingBody, p.pos(), p.src)
	}

	first := p.current()
	last := p.toks[len(p.toks)-1]

	spec.Body = Span{Start: first.Span.Start, End: last.Span.End}
	p.idx = len(p.toks)

	return nil
}
