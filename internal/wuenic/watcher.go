package wuenic

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// startWatcher watches the directory holding the source. Editors and copy
// tools often replace the file instead of writing it in place, which a watch
// on the file itself would miss.
func (manager *Manager) startWatcher() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	source, err := filepath.Abs(manager.config.SourcePath)
	if err != nil {
		_ = watcher.Close()
		return err
	}
	if err := watcher.Add(filepath.Dir(source)); err != nil {
		_ = watcher.Close()
		return err
	}

	manager.watcher = watcher
	manager.wg.Add(1)
	go manager.watch(source)

	manager.logger.Info("watching dataset source", slog.String("source", source))
	return nil
}

func (manager *Manager) watch(source string) {
	defer manager.wg.Done()

	debounce := manager.config.debounce()
	ticker := time.NewTicker(max(debounce/5, time.Millisecond))
	defer ticker.Stop()

	var pendingSince time.Time

	for {
		select {
		case <-manager.shutdownChan:
			manager.logger.Debug("stopping dataset watcher")
			return

		case event, ok := <-manager.watcher.Events:
			if !ok {
				return
			}
			if !relevant(event, source) {
				continue
			}
			manager.logger.Debug("dataset source event",
				slog.String("source", source),
				slog.String("op", event.Op.String()))
			pendingSince = time.Now()

		case err, ok := <-manager.watcher.Errors:
			if !ok {
				return
			}
			manager.logger.Warn("dataset watcher error", slog.String("error", err.Error()))

		case <-ticker.C:
			if pendingSince.IsZero() || time.Since(pendingSince) < debounce {
				continue
			}
			pendingSince = time.Time{}
			_ = manager.Reload(context.Background())
		}
	}
}

func relevant(event fsnotify.Event, source string) bool {
	if filepath.Clean(event.Name) != source {
		return false
	}
	return event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) != 0
}
