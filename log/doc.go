// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// A [Logger] is created with [Make] and configured with functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText))
//	logger.Info("expansion complete", slog.Int("invocations", n))
//
// The zero Logger is valid and discards every message, so library code can
// accept a Logger without nil checks.
//
// The package also maintains a default logger used by the package-level
// functions ([Debug], [Info], …). [Config] reconfigures it in place, which
// lets CLI flags adjust logging as they are parsed.
package log
