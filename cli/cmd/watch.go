package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/fsnotify/fsnotify"

	"github.com/DiscreteTom/clonesure/lang"
	"github.com/DiscreteTom/clonesure/log"
	"github.com/DiscreteTom/clonesure/pkg"
)

// ErrWatchStdin is returned when --watch is combined with a stdin source.
var ErrWatchStdin = errors.New("cannot watch stdin")

// watch expands each source in place, then re-expands whenever the file
// changes. It blocks until the context is cancelled.
func (e *Expand) watch(
	ctx context.Context,
	logger log.Logger,
	opts []lang.Option,
) error {
	for _, source := range e.Sources {
		if source == stdinSource {
			return ErrWatchStdin
		}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, source := range e.Sources {
		if err := e.rewrite(ctx, source, opts, logger); err != nil {
			return err
		}

		if err := watcher.Add(source); err != nil {
			return err
		}
	}

	logger.InfoContext(ctx, "watching",
		slog.Int("sources", len(e.Sources)))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			// Grammar errors keep the watch alive; the file will be
			// retried on its next change.
			if err := e.rewrite(ctx, event.Name, opts, logger); err != nil {
				logger.ErrorContext(ctx, "expand failed",
					slog.String("source", event.Name),
					slog.Any("error", err),
				)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			logger.WarnContext(ctx, "watch error", slog.Any("error", err))
		}
	}
}

// rewrite expands one file in place. The file is only written when its
// expansion differs from its current content, which also keeps our own
// writes from retriggering the watcher indefinitely.
func (e *Expand) rewrite(
	ctx context.Context,
	source string,
	opts []lang.Option,
	logger log.Logger,
) error {
	src, err := readSource(source)
	if err != nil {
		return err
	}

	out, err := lang.Expand(ctx, src, opts...)
	if err != nil {
		return err
	}

	if out == src {
		return nil
	}

	info, err := os.Stat(source)
	if err != nil {
		return fmt.Errorf("%w: %w", pkg.ErrWriteOutput, err)
	}

	if err := os.WriteFile(source, []byte(out), info.Mode().Perm()); err != nil {
		return fmt.Errorf("%w: %w", pkg.ErrWriteOutput, err)
	}

	logger.InfoContext(ctx, "expanded",
		slog.String("source", source))

	return nil
}
