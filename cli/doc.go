// Package cli contains the command line interface for clonesure.
//
// The binary is a reference host for the [lang] package: it locates cc!(…)
// invocations in source text and splices in their expansions. The core
// transformer itself is a pure library; everything involving files, flags,
// and terminals lives here.
//
// # Commands
//
//   - expand: rewrite capture-annotated closure invocations in files or stdin
//   - spec:   parse a single closure literal and dump its structured form
//   - repl:   interactively preview expansions
//   - version: print the build version
//
// # Logging options
//
//   - --log-level: minimum log level (trace, debug, info, warn, error)
//   - --log-format: output format (text, json)
//   - --log-time: timestamp layout (RFC3339, RFC3339Nano, …)
//   - --log-caller: include caller information
//   - --log-pretty: colorized text output
//
// # Profiling options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: profile output directory
//
// # Examples
//
//	# Expand a file to stdout
//	clonesure expand src/main.rs
//
//	# Rewrite files in place, only closures with mutable captures
//	clonesure expand --write --where 'mutable > 0' src/*.rs
//
//	# Watch stdin-free inputs and re-expand on change
//	clonesure expand --watch --write src/main.rs
//
//	# Inspect the structured form of one closure
//	echo '|@mut s1, @s2, s3| { s1 = s1 + s2 + s3; s1 }' | clonesure spec
package cli
