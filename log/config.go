package log

import (
	"io"
	"log/slog"
	"strings"
	"time"
)

// Level represents the severity of a log message.
type Level slog.Level

const (
	LevelTrace Level = Level(slog.LevelDebug - 4)
	LevelDebug Level = Level(slog.LevelDebug)
	LevelInfo  Level = Level(slog.LevelInfo)
	LevelWarn  Level = Level(slog.LevelWarn)
	LevelError Level = Level(slog.LevelError)
)

// DefaultLevel is the default log level.
const DefaultLevel = LevelInfo

// String returns the lowercase name of the level.
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	}

	return slog.Level(l).String()
}

// ParseLevel parses a string representation of a log level.
// Unrecognized input yields [DefaultLevel].
func ParseLevel(s string) Level {
	// slog.Level.UnmarshalText doesn't recognize "trace".
	if strings.EqualFold(s, "trace") {
		return LevelTrace
	}

	l := new(slog.Level)

	err := l.UnmarshalText([]byte(s))
	if err != nil {
		return DefaultLevel
	}

	return Level(*l)
}

// Format represents the output format for log messages.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

// DefaultFormat is the default log message format.
const DefaultFormat = FormatText

// String returns the lowercase name of the format.
func (f Format) String() string {
	if f == FormatJSON {
		return "json"
	}

	return "text"
}

// ParseFormat parses a string representation of a log format.
// Unrecognized input yields [DefaultFormat].
func ParseFormat(s string) Format {
	if strings.EqualFold(s, "json") {
		return FormatJSON
	}

	return FormatText
}

// DefaultTimeLayout is the default timestamp layout name.
const DefaultTimeLayout = "RFC3339"

// timeLayout maps layout names accepted by WithTimeLayout to time package
// layouts.
//
//nolint:gochecknoglobals
var timeLayout = map[string]string{
	"RFC3339":     time.RFC3339,
	"RFC3339Nano": time.RFC3339Nano,
	"RFC1123":     time.RFC1123,
	"Kitchen":     time.Kitchen,
	"Stamp":       time.Stamp,
	"StampMilli":  time.StampMilli,
	"DateTime":    time.DateTime,
	"TimeOnly":    time.TimeOnly,
}

// config holds the logger configuration applied at creation time.
type config struct {
	writer     io.Writer
	level      Level
	format     Format
	timeLayout string
	caller     bool
	pretty     bool
}

func makeConfig(w io.Writer, opts ...Option) config {
	cfg := config{
		writer:     w,
		level:      DefaultLevel,
		format:     DefaultFormat,
		timeLayout: DefaultTimeLayout,
	}

	return apply(cfg, opts...)
}

// handler builds the slog.Handler described by the configuration.
func (c config) handler() slog.Handler {
	opts := &slog.HandlerOptions{
		Level:       slog.Level(c.level),
		AddSource:   c.caller,
		ReplaceAttr: c.replaceAttr,
	}

	if c.format == FormatJSON {
		return slog.NewJSONHandler(c.writer, opts)
	}

	if c.pretty {
		return newPrettyTextHandler(c.writer, opts)
	}

	return slog.NewTextHandler(c.writer, opts)
}

// replaceAttr renames the trace level and applies the configured timestamp
// layout.
func (c config) replaceAttr(_ []string, a slog.Attr) slog.Attr {
	switch a.Key {
	case slog.LevelKey:
		if level, ok := a.Value.Any().(slog.Level); ok {
			a.Value = slog.StringValue(strings.ToUpper(Level(level).String()))
		}

	case slog.TimeKey:
		if layout, ok := timeLayout[c.timeLayout]; ok {
			a.Value = slog.StringValue(a.Value.Time().Format(layout))
		}
	}

	return a
}
