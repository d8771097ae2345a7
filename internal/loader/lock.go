package loader

import (
	"fmt"

	"github.com/gofrs/flock"
)

// ShardDirLock provides cross-process locking over a shard directory: a
// build-time indexer holds the exclusive lock while it rewrites shard
// files, and any number of hosts loading that directory hold the shared
// lock while they read it. This keeps LoadDir from ever observing a shard
// file mid-rewrite when the indexer and a running query host share a
// machine.
type ShardDirLock struct {
	path string
	fl   *flock.Flock
}

// NewShardDirLock returns a lock over <dir>/.sitequery.lock. The lock file
// itself carries no content; its only purpose is as a lock handle.
func NewShardDirLock(dir string) *ShardDirLock {
	path := dir + "/" + lockFileName
	return &ShardDirLock{path: path, fl: flock.New(path)}
}

// RLock acquires a shared (read) lock, blocking until available. Multiple
// readers may hold it at once; it blocks only while a writer holds the
// exclusive lock.
func (l *ShardDirLock) RLock() error {
	if err := l.fl.RLock(); err != nil {
		return fmt.Errorf("acquire shared lock on %s: %w", l.path, err)
	}
	return nil
}

// Lock acquires the exclusive (write) lock, blocking until available.
// Intended for a build-time indexer rewriting the directory's shards, not
// for LoadDir itself.
func (l *ShardDirLock) Lock() error {
	if err := l.fl.Lock(); err != nil {
		return fmt.Errorf("acquire exclusive lock on %s: %w", l.path, err)
	}
	return nil
}

// Unlock releases whichever lock is held. Safe to call even if no lock was
// acquired.
func (l *ShardDirLock) Unlock() error {
	return l.fl.Unlock()
}

// Path returns the lock file's path, for diagnostics.
func (l *ShardDirLock) Path() string {
	return l.path
}
