// Package watch re-runs a callback when a file changes on disk.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-logr/logr"
)

// DefaultDebounce is the quiet period after the last change before the
// callback runs.
const DefaultDebounce = 300 * time.Millisecond

// File watches path and calls fn once per burst of changes, until ctx is
// done. It returns nil on cancellation.
//
// The parent directory is watched rather than the file itself because
// editors often save by writing a new file and renaming it over the old
// one, which drops a watch placed on the original inode.
func File(ctx context.Context, log logr.Logger, path string, debounce time.Duration, fn func()) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}
	log.V(1).Info("watching for changes", "path", abs, "debounce", debounce.String())

	var (
		timer  *time.Timer
		timerC <-chan time.Time
	)
	resetTimer := func() {
		if timer == nil {
			timer = time.NewTimer(debounce)
			timerC = timer.C
			return
		}
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(debounce)
		timerC = timer.C
	}
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timerC:
			timerC = nil
			fn()
		case err, ok := <-watcher.Errors:
			if !ok {
				return errors.New("watcher closed")
			}
			log.Error(err, "watcher error", "path", abs)
		case evt, ok := <-watcher.Events:
			if !ok {
				return errors.New("watcher closed")
			}
			if shouldTrigger(evt, abs) {
				log.V(1).Info("change detected", "path", evt.Name, "op", evt.Op.String())
				resetTimer()
			}
		}
	}
}

func shouldTrigger(evt fsnotify.Event, target string) bool {
	if evt.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
		return false
	}
	name, err := filepath.Abs(evt.Name)
	if err != nil {
		return false
	}
	return name == target
}
