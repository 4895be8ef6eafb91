package main

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watch calls rebuild after path changes, once the changes have been quiet
// for debounce. The directory is watched rather than the file so editors
// that replace the file on save are still seen. It returns when ctx is done.
func watch(ctx context.Context, path string, debounce time.Duration, logger *slog.Logger, rebuild func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() {
		_ = watcher.Close()
	}()

	target, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return err
	}

	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	schedule := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(debounce, func() {
			mu.Lock()
			defer mu.Unlock()
			if ctx.Err() != nil {
				return
			}
			logger.Info("rebuilding", slog.String("in", path))
			if err := rebuild(); err != nil {
				logger.Error("rebuild failed", slog.Any("err", err))
			}
		})
	}
	defer func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
	}()

	logger.Info("watching for changes", slog.String("in", path))
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if name, _ := filepath.Abs(ev.Name); name != target {
				continue
			}
			logger.Debug("input changed", slog.String("op", ev.Op.String()))
			schedule()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", slog.Any("err", err))
		}
	}
}
