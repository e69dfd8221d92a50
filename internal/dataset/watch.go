package dataset

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch reloads the store whenever the dataset file changes on disk. The
// parent directory is watched rather than the file itself so editors that
// replace the file (rename + create) still trigger a reload. A reload that
// fails keeps the previous snapshot.
func Watch(ctx context.Context, logger *zap.Logger, store *Store, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	target := filepath.Clean(path)
	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case evt := <-watcher.Events:
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if filepath.Clean(evt.Name) != target {
					continue
				}
				snap, err := store.LoadFile(path)
				if err != nil {
					logger.Warn("dataset reload failed",
						zap.String("path", path),
						zap.Error(err))
					continue
				}
				logger.Info("dataset reloaded",
					zap.String("source", snap.Source),
					zap.Int("records", len(snap.Records)),
					zap.Int("skipped", snap.Skipped))
			case err := <-watcher.Errors:
				logger.Warn("dataset watcher error", zap.Error(err))
			}
		}
	}()

	return watcher.Add(filepath.Dir(path))
}
