package config

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
)

// Watch watches the config file and reloads the global configuration when it
// changes. onReload is invoked after every successful reload; it may be nil.
// The returned stop function closes the watcher.
func Watch(onReload func(*CollectionsConfig)) (func() error, error) {
	cfg := Get()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(cfg.ConfigFilePath()); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch file %s: %w", cfg.ConfigFilePath(), err)
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
					if err := Reload(); err != nil {
						continue
					}
					if onReload != nil {
						onReload(Get())
					}
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return watcher.Close, nil
}
