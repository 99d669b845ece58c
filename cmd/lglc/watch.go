package main

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/kjkrol/lgl/internal/logging"
)

// watch re-runs the check whenever one of the job's files is written or
// replaced. Parent directories are watched so editors that save through a
// rename are still seen. It returns when ctx is cancelled.
func (c *checker) watch(ctx context.Context, j job) error {
	logger := logging.From(ctx)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	watched := make(map[string]bool)
	dirs := make(map[string]bool)
	for _, name := range j.files() {
		full := j.osPath(name)
		watched[full] = true
		parent := filepath.Dir(full)
		if dirs[parent] {
			continue
		}
		dirs[parent] = true
		if err := w.Add(parent); err != nil {
			return err
		}
	}

	c.recheck(logger, j)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !watched[ev.Name] || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			logger.Debug("shader changed", zap.String("file", ev.Name), zap.Stringer("op", ev.Op))
			c.recheck(logger, j)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", zap.Error(err))
		}
	}
}

// recheck runs check for the watch loop. Diagnostics are already printed;
// anything else is logged so it is not lost.
func (c *checker) recheck(logger *zap.Logger, j job) {
	if err := c.check(j); err != nil && !isDiagnostic(err) {
		logger.Warn("shader check failed", zap.Error(err))
	}
}
