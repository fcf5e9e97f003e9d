package lang

// Pos identifies a location in the source text.
type Pos struct {
	Offset int // byte offset, 0-based
	Line   int // 1-based
	Column int // 1-based, counted in runes
}

// IsZero reports whether the position is the zero value (no location).
func (p Pos) IsZero() bool { return p.Line == 0 }

// Span is a half-open byte range into the source text.
// Start carries the line/column of the first byte for error reporting;
// End is the byte offset just past the last byte.
type Span struct {
	Start Pos
	End   int
}

// IsZero reports whether the span is empty and carries no location.
func (s Span) IsZero() bool { return s.Start.IsZero() && s.End == 0 }

// Len returns the length of the span in bytes.
func (s Span) Len() int { return s.End - s.Start.Offset }

// Text returns the verbatim source text covered by the span.
func (s Span) Text(src string) string {
	if s.Len() <= 0 {
		return ""
	}

	return src[s.Start.Offset:s.End]
}

// Kind classifies a lexical token.
type Kind uint8

const (
	// KindInvalid marks input the scanner could not classify, such as an
	// unterminated string literal. Invalid tokens are legal inside opaque
	// spans; the parser never interprets them.
	KindInvalid Kind = iota

	// KindIdent is an identifier or keyword.
	KindIdent

	// KindNumber is a numeric literal, including any suffix characters.
	KindNumber

	// KindString is a string or character literal, quotes included.
	KindString

	// KindPunct is a punctuation token. All punctuators are a single
	// character except the return-type arrow "->".
	KindPunct
)

// Token is one lexical token with its source span.
type Token struct {
	Kind Kind
	Text string
	Span Span
}

// Pos returns the position of the token's first byte.
func (t Token) Pos() Pos { return t.Span.Start }

// is reports whether the token is a punctuator with the given text.
func (t Token) is(punct string) bool {
	return t.Kind == KindPunct && t.Text == punct
}

// isIdent reports whether the token is an identifier with the given text.
func (t Token) isIdent(name string) bool {
	return t.Kind == KindIdent && t.Text == name
}

// opens reports whether the token opens a nesting delimiter.
func (t Token) opens() bool {
	return t.is("(") || t.is("[") || t.is("{")
}

// closes reports whether the token closes a nesting delimiter.
func (t Token) closes() bool {
	return t.is(")") || t.is("]") || t.is("}")
}
