package lang

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestParseError_Snippet(t *testing.T) {
	_, err := ParseString(context.Background(), "|@s1, @s1| s1")
	if err == nil {
		t.Fatal("expected duplicate capture error")
	}

	want := "duplicate capture \"s1\" at line 1, column 8:\n" +
		"  1 | |@s1, @s1| s1\n" +
		"             ^"

	if got := err.Error(); got != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestParseError_SnippetOnLaterLine(t *testing.T) {
	_, err := ParseString(context.Background(), "move\n|@s1,\n @s1| s1")
	if err == nil {
		t.Fatal("expected duplicate capture error")
	}

	msg := err.Error()

	if !strings.Contains(msg, "at line 3, column 3") {
		t.Errorf("expected line 3 column 3 in %q", msg)
	}

	if !strings.Contains(msg, "3 |  @s1| s1") {
		t.Errorf("expected snippet of line 3 in %q", msg)
	}
}

func TestParseError_TabAlignment(t *testing.T) {
	_, err := ParseString(context.Background(), "|\t@s1, @s1| s1")
	if err == nil {
		t.Fatal("expected duplicate capture error")
	}

	// The caret line reproduces the source tab so the marker lands under the
	// reported column in any tab-rendering terminal.
	lines := strings.Split(err.Error(), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), err.Error())
	}

	if !strings.Contains(lines[2], "\t") {
		t.Errorf("expected tab in caret line %q", lines[2])
	}

	if !strings.HasSuffix(lines[2], "^") {
		t.Errorf("expected caret at end of %q", lines[2])
	}
}

func TestParseError_ZeroPositionOmitsLocation(t *testing.T) {
	pe := &ParseError{Err: ErrMissingBody}

	if got := pe.Error(); got != "missing closure body" {
		t.Errorf("expected bare message, got %q", got)
	}
}

func TestParseError_UnwrapsToSentinel(t *testing.T) {
	_, err := ParseString(context.Background(), "|x|")

	if !errors.Is(err, ErrMissingBody) {
		t.Errorf("expected ErrMissingBody, got %v", err)
	}

	// Classification survives further wrapping by callers.
	wrapped := fmt.Errorf("expand failed: %w", err)
	if !errors.Is(wrapped, ErrMissingBody) {
		t.Errorf("expected ErrMissingBody through wrap, got %v", wrapped)
	}
}

func TestError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"message only", NewError("boom"), "boom"},
		{"wrapped cause", NewError("boom").Wrap(errors.New("inner")), "boom: inner"},
		{"cause only", WrapError(errors.New("inner")), "inner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestError_WrapPreservesIdentityForIs(t *testing.T) {
	sentinel := NewError("boom")
	wrapped := fmt.Errorf("context: %w", sentinel)

	if !errors.Is(wrapped, sentinel) {
		t.Error("expected errors.Is to match the sentinel through fmt wrapping")
	}
}

func TestWrapError_ReturnsExistingError(t *testing.T) {
	orig := NewError("boom")

	if got := WrapError(orig); got != orig {
		t.Errorf("expected the original *Error back, got %v", got)
	}
}
