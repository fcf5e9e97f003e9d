package lang

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
)

// Predefined errors (sentinel values). All are detected during parsing;
// generation is total over a valid ClosureSpec and introduces none.
var (
	// ErrMissingParamList is returned when the input does not begin with a
	// closure parameter list (an optional "move" followed by "|").
	ErrMissingParamList = NewError("closure parameter list not found")

	// ErrUnterminatedParamList is returned when no closing "|" is found at
	// nesting depth zero.
	ErrUnterminatedParamList = NewError("unterminated parameter list")

	// ErrMalformedCapture is returned when a capture marker in the leading
	// capture run is not followed by an optional "mut" plus an identifier
	// terminated by "," or the closing "|".
	ErrMalformedCapture = NewError("malformed capture entry")

	// ErrDuplicateCapture is returned when the same identifier is captured
	// twice in one parameter list.
	ErrDuplicateCapture = NewError("duplicate capture")

	// ErrMissingBody is returned when nothing follows the closure header, or
	// a return-type annotation is not followed by a block.
	ErrMissingBody = NewError("missing closure body")
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// WrapError wraps a standard error into an Error.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs, // Share attrs
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
	}
}

// ParseError is a grammar error located in the original source. It wraps one
// of the sentinel errors above, so callers can classify it with errors.Is,
// and renders a caret snippet pointing at the offending token.
type ParseError struct {
	Err    error  // sentinel kind
	Detail string // optional detail, e.g. the duplicated identifier
	Pos    Pos    // location of the offending token
	Source string // full source text, used for snippet rendering
}

// Error implements the error interface. When source is available the message
// includes the offending line with a column marker:
//
//	duplicate capture "s1" at line 1, column 11:
//	  1 | |@s1, @s1| s1
//	                ^
func (e *ParseError) Error() string {
	var sb strings.Builder

	sb.WriteString(e.Err.Error())

	if e.Detail != "" {
		sb.WriteString(" ")
		sb.WriteString(e.Detail)
	}

	if e.Pos.IsZero() {
		return sb.String()
	}

	sb.WriteString(" at line ")
	sb.WriteString(strconv.Itoa(e.Pos.Line))
	sb.WriteString(", column ")
	sb.WriteString(strconv.Itoa(e.Pos.Column))

	lines := strings.Split(e.Source, "\n")
	if e.Pos.Line < 1 || e.Pos.Line > len(lines) {
		return sb.String()
	}

	line := lines[e.Pos.Line-1]

	sb.WriteString(":\n")

	// Offending line, prefixed with its number.
	num := strconv.Itoa(e.Pos.Line)
	sb.WriteString("  ")
	sb.WriteString(num)
	sb.WriteString(" | ")
	sb.WriteString(line)
	sb.WriteString("\n")

	// Caret marker. Tabs are reproduced so the caret stays aligned under
	// the reported column regardless of tab rendering width.
	sb.WriteString(strings.Repeat(" ", len(num)+5))

	col := e.Pos.Column - 1
	n := 0

	for _, r := range line {
		if n >= col {
			break
		}

		n++

		if r == '\t' {
			sb.WriteString("\t")
		} else {
			sb.WriteString(" ")
		}
	}

	sb.WriteString("^")

	return sb.String()
}

// Unwrap returns the wrapped sentinel for errors.Is/As.
func (e *ParseError) Unwrap() error { return e.Err }

// LogValue implements slog.LogValuer.
func (e *ParseError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("error", e.Err.Error()),
		slog.Int("line", e.Pos.Line),
		slog.Int("column", e.Pos.Column),
	)
}

// errorAt builds a ParseError for the given sentinel at pos.
func errorAt(err error, pos Pos, source string) *ParseError {
	return &ParseError{
		Err:    err,
		Pos:    pos,
		Source: source,
	}
}
