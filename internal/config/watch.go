// Copyright (c) 2025 PawGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce coalesces rapid editor write bursts into one reload.
const watchDebounce = 300 * time.Millisecond

// Watcher reloads the configuration when a config file changes on disk and
// delivers the result to a callback. A file that fails to reload is
// reported through the error callback and the previous configuration stays
// in effect.
type Watcher struct {
	watcher  *fsnotify.Watcher
	onReload func(*Config)
	onError  func(error)

	mu      sync.Mutex
	pending *time.Timer
	closed  bool
}

// Watch starts watching the configuration directory. The callbacks run on
// the watcher goroutine.
func Watch(onReload func(*Config), onError func(error)) (*Watcher, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory, not the file: editors replace config files by
	// rename, which drops a watch on the file itself.
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{watcher: fw, onReload: onReload, onError: onError}
	go w.processEvents()
	return w, nil
}

// Close stops watching and releases resources.
func (w *Watcher) Close() error {
	w.mu.Lock()
	w.closed = true
	if w.pending != nil {
		w.pending.Stop()
	}
	w.mu.Unlock()
	return w.watcher.Close()
}

// processEvents filters events down to config file changes and schedules a
// debounced reload.
func (w *Watcher) processEvents() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !isConfigFile(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.scheduleReload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if w.onError != nil {
				w.onError(err)
			}
		}
	}
}

// scheduleReload (re)arms the debounce timer.
func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.pending != nil {
		w.pending.Stop()
	}
	w.pending = time.AfterFunc(watchDebounce, w.reload)
}

// reload loads the configuration fresh and reports the outcome.
func (w *Watcher) reload() {
	w.mu.Lock()
	closed := w.closed
	w.mu.Unlock()
	if closed {
		return
	}

	cfg, err := Load()
	if err != nil {
		if w.onError != nil {
			w.onError(err)
		}
		return
	}
	if w.onReload != nil {
		w.onReload(cfg)
	}
}

// isConfigFile reports whether a changed path is one of the config files.
func isConfigFile(path string) bool {
	base := filepath.Base(path)
	return base == "config.toml" || base == "config.json"
}
