package pkg

// Sentinel errors shared by the CLI and its subpackages.
// These errors can be tested using errors.Is for reliable error checking.

import "errors"

// ErrReadInput is returned when reading a source file or stdin fails.
//
// This error should be wrapped with the underlying I/O error
// to preserve the error chain.
var ErrReadInput = errors.New("failed to read input")

// ErrWriteOutput is returned when writing expanded output fails.
//
// This error should be wrapped with the underlying I/O error
// to preserve the error chain.
var ErrWriteOutput = errors.New("failed to write output")

// ErrInvalidFormat is returned when an unsupported output format is
// specified.
//
// This error should be wrapped with additional context that names the
// invalid format along with the list of valid formats.
var ErrInvalidFormat = errors.New("invalid format")

// ErrExprCompile is returned when compiling a --where predicate fails.
//
// This error should be wrapped with the underlying expr-lang error.
var ErrExprCompile = errors.New("predicate compilation failed")

// ErrExprEvaluate is returned when evaluating a --where predicate fails.
//
// This error should be wrapped with the underlying expr-lang error.
var ErrExprEvaluate = errors.New("predicate evaluation failed")
