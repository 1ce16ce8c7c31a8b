package catalog

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reloads a YAML seed file into a MemoryStore whenever it changes on
// disk. In-flight chat turns keep the snapshot they captured at submission
// time; only subsequent turns see the new inventory.
type Watcher struct {
	path   string
	store  *MemoryStore
	logger *zap.Logger
	fw     *fsnotify.Watcher

	// onReload, when set, runs after each successful reload (used to
	// invalidate snapshot caches layered above the store).
	onReload func()
}

// NewWatcher creates a watcher for the seed file at path feeding store.
func NewWatcher(path string, store *MemoryStore, logger *zap.Logger) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create seed watcher: %w", err)
	}
	// Watch the directory, not the file: editors replace files on save.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch seed directory: %w", err)
	}
	return &Watcher{path: path, store: store, logger: logger, fw: fw}, nil
}

// OnReload registers a callback invoked after each successful reload.
func (w *Watcher) OnReload(fn func()) { w.onReload = fn }

// Run blocks, applying seed reloads until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fw.Close()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.reload()
		case err, ok := <-w.fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("seed watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) reload() {
	products, err := LoadSeed(w.path)
	if err != nil {
		// A half-written file is expected mid-save; keep the old inventory.
		w.logger.Warn("seed reload skipped", zap.String("path", w.path), zap.Error(err))
		return
	}
	w.store.Replace(products)
	if w.onReload != nil {
		w.onReload()
	}
	w.logger.Info("seed reloaded", zap.String("path", w.path), zap.Int("products", len(products)))
}
