package utils

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// WatchConfig calls onChange with every successfully parsed version of config file at path.
// The containing directory is watched, as editors tend to replace files instead of writing them.
func WatchConfig(ctx context.Context, path string, log logrus.FieldLogger, onChange func(Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("could not create config watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return fmt.Errorf("could not watch %s: %w", path, err)
	}

	go func() {
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}

				if filepath.Clean(event.Name) != filepath.Clean(path) || !shouldReload(event.Op) {
					continue
				}

				cfg, err := LoadConfig(path)
				if err != nil {
					log.WithError(err).Warn("config change ignored")
					continue
				}

				log.Infof("config %s changed", path)
				onChange(cfg)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}

				log.WithError(err).Warn("config watcher returned an error")
			}
		}
	}()

	return nil
}

func shouldReload(op fsnotify.Op) bool {
	return op&(fsnotify.Create|fsnotify.Write) != 0
}
