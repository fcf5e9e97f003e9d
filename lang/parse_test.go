package lang

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type captureWant struct {
	name    string
	mutable bool
}

func TestParseString_Accepts(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		move     bool
		captures []captureWant
		params   []string
		ret      string
		body     string
	}{
		{
			name:   "no captures",
			src:    "|x| x + 1",
			params: []string{"x"},
			body:   "x + 1",
		},
		{
			name:     "single capture",
			src:      "|@s1| s1",
			captures: []captureWant{{"s1", false}},
			body:     "s1",
		},
		{
			name:     "mutable capture",
			src:      "|@mut s1| s1",
			captures: []captureWant{{"s1", true}},
			body:     "s1",
		},
		{
			name:     "captures then params",
			src:      "|@s1, @mut s2, x, y| { x }",
			captures: []captureWant{{"s1", false}, {"s2", true}},
			params:   []string{"x", "y"},
			body:     "{ x }",
		},
		{
			name:     "capture run ends at first plain param",
			src:      "|@a, b, @c| b",
			captures: []captureWant{{"a", false}},
			params:   []string{"b", "@c"},
			body:     "b",
		},
		{
			name:     "repeated name after run end is opaque",
			src:      "|@a, b, @a| a",
			captures: []captureWant{{"a", false}},
			params:   []string{"b", "@a"},
			body:     "a",
		},
		{
			name:     "mut marker after run end is opaque",
			src:      "|x, @mut z| x",
			params:   []string{"x", "@mut z"},
			body:     "x",
		},
		{
			name:   "explicit move",
			src:    "move |x| x",
			move:   true,
			params: []string{"x"},
			body:   "x",
		},
		{
			name:     "move with captures",
			src:      "move |@s1| s1",
			move:     true,
			captures: []captureWant{{"s1", false}},
			body:     "s1",
		},
		{
			name:   "return type",
			src:    "|x| -> u32 { x }",
			params: []string{"x"},
			ret:    "u32",
			body:   "{ x }",
		},
		{
			name:   "generic return type",
			src:    "|x| -> Vec<String> { x }",
			params: []string{"x"},
			ret:    "Vec<String>",
			body:   "{ x }",
		},
		{
			name: "empty parameter list",
			src:  "|| 1",
			body: "1",
		},
		{
			name:     "trailing comma",
			src:      "|@s1,| s1",
			captures: []captureWant{{"s1", false}},
			body:     "s1",
		},
		{
			name:   "empty entries eaten",
			src:    "|,,x| x",
			params: []string{"x"},
			body:   "x",
		},
		{
			name:   "typed parameter with nested commas",
			src:    "|f: fn(i32, i32) -> i32| f",
			params: []string{"f: fn(i32, i32) -> i32"},
			body:   "f",
		},
		{
			name:     "comment between header and body",
			src:      "|@s1| /* note */ s1",
			captures: []captureWant{{"s1", false}},
			body:     "s1",
		},
		{
			name:     "multiline body",
			src:      "|@s1, x| {\n\ts1.push_str(x);\n\ts1\n}",
			captures: []captureWant{{"s1", false}},
			params:   []string{"x"},
			body:     "{\n\ts1.push_str(x);\n\ts1\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := ParseString(context.Background(), tt.src)
			if err != nil {
				t.Fatalf("ParseString(%q) failed: %v", tt.src, err)
			}

			if spec.ExplicitMove != tt.move {
				t.Errorf("explicit move: expected %v, got %v", tt.move, spec.ExplicitMove)
			}

			if len(spec.Captures) != len(tt.captures) {
				t.Fatalf(
					"expected %d captures, got %d",
					len(tt.captures),
					len(spec.Captures),
				)
			}

			for i, want := range tt.captures {
				got := spec.Captures[i]
				if got.Name != want.name || got.Mutable != want.mutable {
					t.Errorf(
						"capture %d: expected {%s %v}, got {%s %v}",
						i, want.name, want.mutable, got.Name, got.Mutable,
					)
				}
			}

			params := spec.ParamTexts()
			if len(params) != len(tt.params) {
				t.Fatalf("expected params %v, got %v", tt.params, params)
			}

			for i, want := range tt.params {
				if params[i] != want {
					t.Errorf("param %d: expected %q, got %q", i, want, params[i])
				}
			}

			if got := spec.ReturnTypeText(); got != tt.ret {
				t.Errorf("return type: expected %q, got %q", tt.ret, got)
			}

			if got := spec.BodyText(); got != tt.body {
				t.Errorf("body: expected %q, got %q", tt.body, got)
			}
		})
	}
}

func TestParseString_Rejects(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"empty input", "", ErrMissingParamList},
		{"no parameter list", "foo", ErrMissingParamList},
		{"move without list", "move", ErrMissingParamList},
		{"unterminated list", "|@s1, x", ErrUnterminatedParamList},
		{"bare marker", "|@| x", ErrMalformedCapture},
		{"marker before number", "|@1| x", ErrMalformedCapture},
		{"capture with type annotation", "|@s1: u32| s1", ErrMalformedCapture},
		{"mut without name", "|@mut| x", ErrMalformedCapture},
		{"duplicate capture", "|@s1, @s1| s1", ErrDuplicateCapture},
		{"duplicate mutable capture", "|@mut a, @a| a", ErrDuplicateCapture},
		{"missing body", "|x|", ErrMissingBody},
		{"return type without block", "|x| -> u32", ErrMissingBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(context.Background(), tt.src)
			if err == nil {
				t.Fatalf("ParseString(%q) succeeded, expected %v", tt.src, tt.want)
			}

			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestParseString_DuplicatePosition(t *testing.T) {
	_, err := ParseString(context.Background(), "|@s1, @s1| s1")
	if err == nil {
		t.Fatal("expected duplicate capture error")
	}

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %T", err)
	}

	// The position points at the second occurrence's name token.
	if pe.Pos.Line != 1 || pe.Pos.Column != 8 {
		t.Errorf("expected position 1:8, got %d:%d", pe.Pos.Line, pe.Pos.Column)
	}

	if pe.Detail != `"s1"` {
		t.Errorf("expected detail %q, got %q", `"s1"`, pe.Detail)
	}
}

func TestParseString_UnterminatedPosition(t *testing.T) {
	_, err := ParseString(context.Background(), "move |@s1, x")
	if err == nil {
		t.Fatal("expected unterminated parameter list error")
	}

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %T", err)
	}

	// The position points at the opening delimiter.
	if pe.Pos.Line != 1 || pe.Pos.Column != 6 {
		t.Errorf("expected position 1:6, got %d:%d", pe.Pos.Line, pe.Pos.Column)
	}
}

func TestParseReader_MatchesParseString(t *testing.T) {
	const src = "|@s1, x| { s1 + x }"

	fromReader, err := ParseReader(context.Background(), strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseReader failed: %v", err)
	}

	fromString, err := ParseString(context.Background(), src)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}

	if fromReader.BodyText() != fromString.BodyText() {
		t.Errorf(
			"body mismatch: %q vs %q",
			fromReader.BodyText(),
			fromString.BodyText(),
		)
	}

	if len(fromReader.Captures) != len(fromString.Captures) {
		t.Errorf(
			"capture count mismatch: %d vs %d",
			len(fromReader.Captures),
			len(fromString.Captures),
		)
	}
}

func TestClosureSpec_MutableCount(t *testing.T) {
	spec, err := ParseString(context.Background(), "|@a, @mut b, @mut c, x| x")
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}

	if got := spec.MutableCount(); got != 2 {
		t.Errorf("expected 2 mutable captures, got %d", got)
	}
}
