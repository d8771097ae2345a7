// Package watcher notifies a host when the shard directory on disk changes,
// so a long-running process (the `watch` CLI command, or an embedding host)
// can reload its SearchIndex without a restart.
//
// Shard directories are flat — a handful of filter-shard and synthetic
// filter-document files, not a deep source tree — so unlike a code watcher
// there is no recursive directory walk and no gitignore filtering. Rapid
// successive writes (an indexer rewriting several shards in one batch) are
// debounced before the reload callback fires.
//
// Usage:
//
//	opts := watcher.DefaultOptions()
//	w, err := watcher.NewShardWatcher(opts)
//	if err != nil {
//	    return err
//	}
//	defer w.Stop()
//
//	if err := w.Start(ctx, "/path/to/shards"); err != nil {
//	    return err
//	}
//
//	for batch := range w.Events() {
//	    reload(batch)
//	}
package watcher
