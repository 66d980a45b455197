// File: watch.go
// Title: Configuration File Watching
// Description: Re-configures a store whenever its configuration file changes.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file watching (polling)
// - 2026-10-17 v0.2.0: Event based watching with fsnotify

package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/msto63/ztk/foundation/core/errors"
	"github.com/msto63/ztk/foundation/core/log"
)

// WatchOptions configures Watch
type WatchOptions struct {
	LoadOptions

	// Debounce collapses bursts of events, such as editors writing a
	// temporary file and renaming it. Defaults to 100ms.
	Debounce time.Duration

	// OnReload is called after each successful reload
	OnReload func(GlobalConfig)

	// OnError is called when a reload fails; the watch continues
	OnError func(error)
}

// Watch watches filePath and merges its content into store on every change.
// The directory is watched so that atomic replacements are seen. Watch
// returns once the watcher is set up; it stops when ctx is done.
func Watch(ctx context.Context, filePath string, store *Store, options WatchOptions) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.PlatformUnavailable(errors.ModuleConfig, "Watch", "file watcher", err)
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		watcher.Close()
		return errors.ConfigError("Watch", filePath, err)
	}
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		watcher.Close()
		return errors.ConfigError("Watch", filePath, err)
	}

	if options.Debounce <= 0 {
		options.Debounce = 100 * time.Millisecond
	}

	go watchLoop(ctx, watcher, absPath, store, options)
	return nil
}

func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, absPath string, store *Store, options WatchOptions) {
	defer watcher.Close()
	logger := log.Named("config.watch").WithField("path", absPath)

	var debounce <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != absPath {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				debounce = time.After(options.Debounce)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.WarnWithErr("file watcher error", err)

		case <-debounce:
			debounce = nil
			reload(absPath, store, options, logger)
		}
	}
}

func reload(absPath string, store *Store, options WatchOptions, logger *log.Logger) {
	timer := logger.StartTimer("config_reload")

	cfg, err := LoadFile(absPath, options.LoadOptions)
	if err != nil {
		timer.StopWithError(err)
		if options.OnError != nil {
			options.OnError(err)
		}
		return
	}

	store.Configure(cfg)
	timer.Stop()
	if options.OnReload != nil {
		options.OnReload(store.Current())
	}
}
