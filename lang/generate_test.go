package lang

import (
	"context"
	"testing"
)

func TestGenerate_SingleLine(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "no captures preserves bare closure",
			src:  "|x| x + 1",
			want: "{ |x| x + 1 }",
		},
		{
			name: "no captures preserves explicit move",
			src:  "move |x| x",
			want: "{ move |x| x }",
		},
		{
			name: "capture forces move",
			src:  "|@s1, x| { s1 + x }",
			want: "{ let s1 = s1.clone(); move |x| { s1 + x } }",
		},
		{
			name: "mutable capture",
			src:  "|@s1, @mut s2, x| { s2.push_str(x); s1 }",
			want: "{ let s1 = s1.clone(); let mut s2 = s2.clone(); " +
				"move |x| { s2.push_str(x); s1 } }",
		},
		{
			name: "return type reproduced",
			src:  "|@s1| -> usize { s1.len() }",
			want: "{ let s1 = s1.clone(); move || -> usize { s1.len() } }",
		},
		{
			name: "late marker stays in parameter list",
			src:  "|@a, b, @c| b",
			want: "{ let a = a.clone(); move |b, @c| b }",
		},
		{
			name: "parameter text reproduced verbatim",
			src:  "|@s1, f: fn(i32, i32) -> i32| f(1, 2)",
			want: "{ let s1 = s1.clone(); move |f: fn(i32, i32) -> i32| f(1, 2) }",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := ParseString(context.Background(), tt.src)
			if err != nil {
				t.Fatalf("ParseString(%q) failed: %v", tt.src, err)
			}

			if got := Generate(spec); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestGenerate_WithIndent(t *testing.T) {
	spec, err := ParseString(context.Background(), "|@s1, @mut s2, x| { s1 + x }")
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}

	want := "{\n" +
		"    let s1 = s1.clone();\n" +
		"    let mut s2 = s2.clone();\n" +
		"    move |x| { s1 + x }\n" +
		"}"

	if got := Generate(spec, WithIndent(4)); got != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestGenerate_BindingOrderMatchesSource(t *testing.T) {
	spec, err := ParseString(context.Background(), "|@c, @a, @b| c")
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}

	want := "{ let c = c.clone(); let a = a.clone(); let b = b.clone(); move || c }"
	if got := Generate(spec); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestGenerate_BodyVerbatim(t *testing.T) {
	// Inner whitespace and comments between body tokens survive untouched;
	// the body is a span of the original source, not a re-rendering.
	const src = "|@s1| {\n\ts1  +  1 // note\n}"

	spec, err := ParseString(context.Background(), src)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}

	want := "{ let s1 = s1.clone(); move || {\n\ts1  +  1 // note\n} }"
	if got := Generate(spec); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
