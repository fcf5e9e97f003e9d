// Package profile provides optional runtime profiling for the clonesure
// command.
//
// Profiling integrates [github.com/pkg/profile] and must be enabled at build
// time with the "pprof" build tag:
//
//	go build -tags pprof .
//
// When built without the tag the package contributes nothing and the CLI
// hides its profiling flags.
//
// Supported modes when enabled: allocs, block, clock, cpu, goroutine, heap,
// mem, mutex, thread, trace. Use [Modes] to retrieve the list
// programmatically.
package profile
