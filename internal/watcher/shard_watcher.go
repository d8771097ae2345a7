package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ShardWatcher watches a flat shard directory with fsnotify and debounces
// bursts of writes (an indexer rewriting several shards back to back) into
// single reload batches.
type ShardWatcher struct {
	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer
	errors    chan error
	stopCh    chan struct{}
	opts      Options
	mu        sync.Mutex
	stopped   bool
}

var _ Watcher = (*ShardWatcher)(nil)

// NewShardWatcher creates a new shard-directory watcher with the given
// options.
func NewShardWatcher(opts Options) (*ShardWatcher, error) {
	opts = opts.WithDefaults()

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	debouncer := NewDebouncer(opts.DebounceWindow)
	debouncer.output = make(chan []FileEvent, opts.EventBufferSize)

	return &ShardWatcher{
		fsWatcher: fsw,
		debouncer: debouncer,
		errors:    make(chan error, 10),
		stopCh:    make(chan struct{}),
		opts:      opts,
	}, nil
}

// Start begins watching the given shard directory. Unlike a source-tree
// watcher, the directory is not walked recursively — shard directories hold
// only files.
func (w *ShardWatcher) Start(ctx context.Context, path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve absolute path: %w", err)
	}

	if err := w.fsWatcher.Add(absPath); err != nil {
		return fmt.Errorf("watch shard directory: %w", err)
	}

	go w.run(ctx)
	return nil
}

func (w *ShardWatcher) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			_ = w.Stop()
			return
		case <-w.stopCh:
			return
		case ev, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if w.ignored(ev.Name) {
				continue
			}
			w.debouncer.Add(FileEvent{
				Path:      ev.Name,
				Operation: operationFor(ev.Op),
				Timestamp: time.Now(),
			})
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
			}
		}
	}
}

func (w *ShardWatcher) ignored(path string) bool {
	base := filepath.Base(path)
	for _, pattern := range w.opts.IgnorePatterns {
		if ok, _ := filepath.Match(pattern, base); ok {
			return true
		}
	}
	return false
}

func operationFor(op fsnotify.Op) Operation {
	switch {
	case op&fsnotify.Create != 0:
		return OpCreate
	case op&fsnotify.Remove != 0:
		return OpDelete
	case op&fsnotify.Rename != 0:
		return OpRename
	default:
		return OpModify
	}
}

// Stop stops the watcher and releases resources. Safe to call multiple
// times.
func (w *ShardWatcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true

	close(w.stopCh)
	w.debouncer.Stop()
	close(w.errors)
	return w.fsWatcher.Close()
}

// Events returns the channel of debounced event batches.
func (w *ShardWatcher) Events() <-chan []FileEvent {
	return w.debouncer.Output()
}

// Errors returns the channel of non-fatal watcher errors.
func (w *ShardWatcher) Errors() <-chan error {
	return w.errors
}
