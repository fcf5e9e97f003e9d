package log

import "io"

// Option applies a configuration option to config.
type Option func(config) config

// apply applies multiple options to a config.
func apply(cfg config, opts ...Option) config {
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return cfg
}

// WithWriter sets the destination for log output.
func WithWriter(w io.Writer) Option {
	return func(cfg config) config {
		cfg.writer = w

		return cfg
	}
}

// WithLevel sets the minimum level of emitted messages.
func WithLevel(level Level) Option {
	return func(cfg config) config {
		cfg.level = level

		return cfg
	}
}

// WithFormat sets the output format.
func WithFormat(format Format) Option {
	return func(cfg config) config {
		cfg.format = format

		return cfg
	}
}

// WithTimeLayout sets the timestamp layout by name (e.g. "RFC3339Nano").
// Unrecognized names leave timestamps in slog's default rendering.
func WithTimeLayout(layout string) Option {
	return func(cfg config) config {
		cfg.timeLayout = layout

		return cfg
	}
}

// WithCaller includes source location in log output.
func WithCaller(caller bool) Option {
	return func(cfg config) config {
		cfg.caller = caller

		return cfg
	}
}

// WithPretty enables the colorized text handler. It only affects
// [FormatText] output.
func WithPretty(pretty bool) Option {
	return func(cfg config) config {
		cfg.pretty = pretty

		return cfg
	}
}
