package lang

import "github.com/DiscreteTom/clonesure/log"

// DefaultMacroName is the invocation name recognized by Expand when no
// WithMacroName option is given.
const DefaultMacroName = "cc"

// config holds the effective options for one parse or expand call.
type config struct {
	logger log.Logger
	macro  string
	filter func(*Invocation) bool
}

// Option applies a configuration option to a parse or expand call.
type Option func(config) config

// makeConfig applies options over the defaults.
func makeConfig(opts ...Option) config {
	cfg := config{macro: DefaultMacroName}

	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return cfg
}

// WithLogger sets the logger used for trace-level diagnostics.
// The zero Logger is valid and discards everything.
func WithLogger(logger log.Logger) Option {
	return func(cfg config) config {
		cfg.logger = logger

		return cfg
	}
}

// WithMacroName sets the invocation name Expand searches for.
// An empty name restores [DefaultMacroName].
func WithMacroName(name string) Option {
	return func(cfg config) config {
		if name == "" {
			name = DefaultMacroName
		}

		cfg.macro = name

		return cfg
	}
}

// WithFilter restricts Expand to invocations accepted by the predicate.
// Rejected invocations are left in the output verbatim. A nil predicate
// accepts everything.
func WithFilter(filter func(*Invocation) bool) Option {
	return func(cfg config) config {
		cfg.filter = filter

		return cfg
	}
}
