package lang

import (
	"unicode"
	"unicode/utf8"
)

// lexer scans a bounded region of source text into tokens. Offsets in the
// emitted tokens are relative to the full source string, so spans sliced from
// them reproduce the original text exactly even when the region is embedded
// in a larger file (see Expand).
type lexer struct {
	src string
	off int // current byte offset into src
	end int // scan stops at this offset
	pos Pos // line/column of off
}

// newLexer returns a lexer over src[base.Offset:end], positioned at base.
func newLexer(src string, base Pos, end int) *lexer {
	return &lexer{
		src: src,
		off: base.Offset,
		end: end,
		pos: base,
	}
}

// scan consumes the entire region and returns its tokens.
// Whitespace and comments are skipped, never emitted.
func (l *lexer) scan() []Token {
	var tokens []Token

	for {
		l.skipSpaceAndComments()

		if l.eof() {
			return tokens
		}

		tokens = append(tokens, l.next())
	}
}

func (l *lexer) eof() bool { return l.off >= l.end }

// peek returns the rune at the current offset without consuming it.
func (l *lexer) peek() (rune, int) {
	if l.eof() {
		return 0, 0
	}

	return utf8.DecodeRuneInString(l.src[l.off:l.end])
}

// advance consumes one rune, maintaining line/column bookkeeping.
func (l *lexer) advance() rune {
	r, size := l.peek()
	l.off += size

	if r == '\n' {
		l.pos.Line++
		l.pos.Column = 1
	} else {
		l.pos.Column++
	}

	l.pos.Offset = l.off

	return r
}

// position returns the position of the current offset.
func (l *lexer) position() Pos {
	p := l.pos
	p.Offset = l.off

	return p
}

func (l *lexer) skipSpaceAndComments() {
	for !l.eof() {
		r, _ := l.peek()

		switch {
		case unicode.IsSpace(r):
			l.advance()

		case r == '/' && l.lookahead(1) == '/':
			for !l.eof() {
				if l.advance() == '\n' {
					break
				}
			}

		case r == '/' && l.lookahead(1) == '*':
			l.skipBlockComment()

		default:
			return
		}
	}
}

// skipBlockComment consumes a block comment, honoring nesting as the host
// language does. An unterminated comment consumes the rest of the region.
func (l *lexer) skipBlockComment() {
	l.advance() // '/'
	l.advance() // '*'

	depth := 1
	for depth > 0 && !l.eof() {
		r, _ := l.peek()

		switch {
		case r == '/' && l.lookahead(1) == '*':
			l.advance()
			l.advance()

			depth++

		case r == '*' && l.lookahead(1) == '/':
			l.advance()
			l.advance()

			depth--

		default:
			l.advance()
		}
	}
}

// lookahead returns the rune n runes past the current offset, or 0 at EOF.
func (l *lexer) lookahead(n int) rune {
	off := l.off
	for ; n > 0 && off < l.end; n-- {
		_, size := utf8.DecodeRuneInString(l.src[off:l.end])
		off += size
	}

	if off >= l.end {
		return 0
	}

	r, _ := utf8.DecodeRuneInString(l.src[off:l.end])

	return r
}

// next scans a single token. The caller ensures the region is not exhausted
// and that the current rune is not whitespace or a comment opener.
func (l *lexer) next() Token {
	start := l.position()
	r, _ := l.peek()

	switch {
	case isIdentStart(r):
		return l.scanIdent(start)

	case unicode.IsDigit(r):
		return l.scanNumber(start)

	case r == '"':
		return l.scanString(start, '"')

	case r == '\'':
		return l.scanCharOrQuote(start)

	case r == '-' && l.lookahead(1) == '>':
		l.advance()
		l.advance()

		return l.token(KindPunct, start)
	}

	l.advance()

	kind := KindPunct
	if !unicode.IsGraphic(r) {
		kind = KindInvalid
	}

	return l.token(kind, start)
}

// token builds a token of the given kind spanning start to the current
// offset.
func (l *lexer) token(kind Kind, start Pos) Token {
	return Token{
		Kind: kind,
		Text: l.src[start.Offset:l.off],
		Span: Span{Start: start, End: l.off},
	}
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func (l *lexer) scanIdent(start Pos) Token {
	for !l.eof() {
		r, _ := l.peek()
		if !isIdentPart(r) {
			break
		}

		l.advance()
	}

	return l.token(KindIdent, start)
}

// scanNumber consumes a numeric literal: digits, one fractional dot, and any
// trailing suffix characters. Precision does not matter here; numbers only
// ever travel inside opaque spans.
func (l *lexer) scanNumber(start Pos) Token {
	sawDot := false

	for !l.eof() {
		r, _ := l.peek()

		switch {
		case unicode.IsDigit(r) || isIdentPart(r):
			l.advance()

		case r == '.' && !sawDot && unicode.IsDigit(l.lookahead(1)):
			sawDot = true

			l.advance()

		default:
			return l.token(KindNumber, start)
		}
	}

	return l.token(KindNumber, start)
}

// scanString consumes a quoted literal including both quotes. Backslash
// escapes are honored but not decoded; the token text is the raw source.
// An unterminated literal yields KindInvalid spanning the rest of the region.
func (l *lexer) scanString(start Pos, quote rune) Token {
	l.advance() // opening quote

	for !l.eof() {
		r := l.advance()

		switch r {
		case '\\':
			if !l.eof() {
				l.advance()
			}

		case quote:
			return l.token(KindString, start)
		}
	}

	return l.token(KindInvalid, start)
}

// scanCharOrQuote distinguishes a character literal from a bare quote. The
// host language also spells lifetimes with a leading quote, so a quote that
// does not close within one (possibly escaped) rune is emitted alone as
// punctuation and the trailing identifier is scanned normally.
func (l *lexer) scanCharOrQuote(start Pos) Token {
	if l.lookahead(1) == '\\' || (l.lookahead(1) != 0 && l.lookahead(1) != '\'' && l.lookahead(2) == '\'') {
		return l.scanString(start, '\'')
	}

	l.advance()

	return l.token(KindPunct, start)
}
