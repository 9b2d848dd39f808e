// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package reload watches files for changes so a development server can
// restart itself when its binary or configuration is rebuilt.
package reload

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
)

// ErrChanged is returned by Run once a watched file changed and the
// debounce window elapsed without further changes.
var ErrChanged = errors.New("watched file changed")

// Watcher reports changes to a fixed set of files. Parent directories
// are watched instead of the files themselves so that atomic
// replacement (write temp file, rename) is observed.
type Watcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	targets  map[string]bool
}

// NewWatcher starts watching paths. Paths are resolved to absolute form.
func NewWatcher(debounce time.Duration, paths ...string) (*Watcher, error) {
	if debounce <= 0 {
		return nil, fmt.Errorf("debounce must be positive, got %s", debounce)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}

	w := &Watcher{
		watcher:  fsw,
		debounce: debounce,
		targets:  make(map[string]bool, len(paths)),
	}

	dirs := map[string]bool{}
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			fsw.Close()
			return nil, fmt.Errorf("resolve %s: %w", path, err)
		}
		w.targets[abs] = true

		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
		dirs[dir] = true
	}

	return w, nil
}

// Run blocks until a watched file changes or ctx is cancelled. A burst
// of events is collapsed into a single change, reported as an error
// wrapping ErrChanged. Cancellation returns nil.
func (w *Watcher) Run(ctx context.Context) error {
	var (
		timer   *time.Timer
		fire    <-chan time.Time
		changed string
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			log.WithFields(log.Fields{"file": event.Name, "op": event.Op.String()}).Debug("Watched file changed")
			changed = event.Name
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case <-fire:
			return fmt.Errorf("%w: %s", ErrChanged, changed)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("File watcher error")

		case <-ctx.Done():
			return nil
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}
	return w.targets[filepath.Clean(event.Name)]
}

// Close stops the file watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
