package watch

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settle is how long to wait after a change before re-rendering, so a
// burst of writes produces one render.
const settle = 200 * time.Millisecond

// File calls render once, then again each time path is written or
// replaced. It blocks until render returns an error or the watcher fails.
// The containing directory is watched rather than the file itself:
// editors and Claude Code replace transcripts atomically, which would
// drop a watch on the file.
func File(path string, render func() error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	if err := render(); err != nil {
		return err
	}

	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !matches(ev, abs) {
				continue
			}
			time.Sleep(settle)
			drain(w.Events)
			if err := render(); err != nil {
				return err
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch: %w", err)
		}
	}
}

func matches(ev fsnotify.Event, abs string) bool {
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	return filepath.Clean(ev.Name) == abs
}

// drain discards queued events so one save doesn't trigger several
// renders.
func drain(events chan fsnotify.Event) {
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		default:
			return
		}
	}
}
