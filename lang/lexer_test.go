package lang

import "testing"

func scanAll(src string) []Token {
	return newLexer(src, Pos{Offset: 0, Line: 1, Column: 1}, len(src)).scan()
}

func TestLexer_Kinds(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		kinds []Kind
		texts []string
	}{
		{
			name:  "identifiers and punctuation",
			src:   "|@mut s1|",
			kinds: []Kind{KindPunct, KindPunct, KindIdent, KindIdent, KindPunct},
			texts: []string{"|", "@", "mut", "s1", "|"},
		},
		{
			name:  "arrow is one token",
			src:   "-> u32",
			kinds: []Kind{KindPunct, KindIdent},
			texts: []string{"->", "u32"},
		},
		{
			name:  "minus alone stays minus",
			src:   "a - b",
			kinds: []Kind{KindIdent, KindPunct, KindIdent},
			texts: []string{"a", "-", "b"},
		},
		{
			name:  "numbers with suffix and fraction",
			src:   "42u32 3.25",
			kinds: []Kind{KindNumber, KindNumber},
			texts: []string{"42u32", "3.25"},
		},
		{
			name:  "method call after integer",
			src:   "1.clone()",
			kinds: []Kind{KindNumber, KindPunct, KindIdent, KindPunct, KindPunct},
			texts: []string{"1", ".", "clone", "(", ")"},
		},
		{
			name:  "string literal with escape",
			src:   `"a\"b" x`,
			kinds: []Kind{KindString, KindIdent},
			texts: []string{`"a\"b"`, "x"},
		},
		{
			name:  "char literal",
			src:   "'a' x",
			kinds: []Kind{KindString, KindIdent},
			texts: []string{"'a'", "x"},
		},
		{
			name:  "escaped char literal",
			src:   `'\n'`,
			kinds: []Kind{KindString},
			texts: []string{`'\n'`},
		},
		{
			name:  "lifetime quote stands alone",
			src:   "&'a str",
			kinds: []Kind{KindPunct, KindPunct, KindIdent, KindIdent},
			texts: []string{"&", "'", "a", "str"},
		},
		{
			name:  "unterminated string is invalid",
			src:   `"oops`,
			kinds: []Kind{KindInvalid},
			texts: []string{`"oops`},
		},
		{
			name:  "line comment skipped",
			src:   "a // b c\nd",
			kinds: []Kind{KindIdent, KindIdent},
			texts: []string{"a", "d"},
		},
		{
			name:  "nested block comment skipped",
			src:   "a /* x /* y */ z */ b",
			kinds: []Kind{KindIdent, KindIdent},
			texts: []string{"a", "b"},
		},
		{
			name:  "comment markers inside string kept",
			src:   `"// not a comment"`,
			kinds: []Kind{KindString},
			texts: []string{`"// not a comment"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := scanAll(tt.src)

			if len(toks) != len(tt.kinds) {
				t.Fatalf("expected %d tokens, got %d: %+v", len(tt.kinds), len(toks), toks)
			}

			for i, tok := range toks {
				if tok.Kind != tt.kinds[i] {
					t.Errorf("token %d: expected kind %v, got %v", i, tt.kinds[i], tok.Kind)
				}

				if tok.Text != tt.texts[i] {
					t.Errorf("token %d: expected text %q, got %q", i, tt.texts[i], tok.Text)
				}
			}
		})
	}
}

func TestLexer_Positions(t *testing.T) {
	toks := scanAll("ab\n  cd")

	if len(toks) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(toks))
	}

	first := toks[0].Pos()
	if first.Line != 1 || first.Column != 1 || first.Offset != 0 {
		t.Errorf("expected 1:1@0, got %d:%d@%d", first.Line, first.Column, first.Offset)
	}

	second := toks[1].Pos()
	if second.Line != 2 || second.Column != 3 || second.Offset != 5 {
		t.Errorf("expected 2:3@5, got %d:%d@%d", second.Line, second.Column, second.Offset)
	}
}

func TestLexer_ColumnsCountRunes(t *testing.T) {
	// Multi-byte identifier: columns advance per rune, offsets per byte.
	toks := scanAll("héllo x")

	if len(toks) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(toks))
	}

	pos := toks[1].Pos()
	if pos.Column != 7 {
		t.Errorf("expected column 7, got %d", pos.Column)
	}

	if pos.Offset != 7 {
		t.Errorf("expected offset 7, got %d", pos.Offset)
	}
}

func TestLexer_SpansSliceSource(t *testing.T) {
	const src = "  |@s1| { s1 }  "

	for _, tok := range scanAll(src) {
		if got := tok.Span.Text(src); got != tok.Text {
			t.Errorf("span text %q does not match token text %q", got, tok.Text)
		}
	}
}

func TestLexer_BoundedRegion(t *testing.T) {
	const src = "aa bb cc"

	// Scan only "bb": base at offset 3, end at 5.
	base := Pos{Offset: 3, Line: 1, Column: 4}

	toks := newLexer(src, base, 5).scan()
	if len(toks) != 1 {
		t.Fatalf("expected 1 token, got %d", len(toks))
	}

	if toks[0].Text != "bb" {
		t.Errorf("expected text bb, got %q", toks[0].Text)
	}

	if pos := toks[0].Pos(); pos.Offset != 3 || pos.Column != 4 {
		t.Errorf("expected offset 3 column 4, got offset %d column %d", pos.Offset, pos.Column)
	}
}
