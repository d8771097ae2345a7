// Package loader populates a pkg/searchindex.Index from a shard directory:
// every recognized shard file is read and handed to the matching entry
// point (binary chunks to DecodeFilterIndexChunk, a synthetic filter
// document to DecodeSyntheticFilter). It is the one place the CLI commands
// share for turning "a directory on disk" into a live index.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"

	coreerrors "github.com/Aman-CERP/sitequery/internal/errors"
	"github.com/Aman-CERP/sitequery/internal/validation"
	"github.com/Aman-CERP/sitequery/pkg/searchindex"
)

// lockFileName is the cross-process lock file LoadDir takes a shared read
// lock on for the duration of a load. It is never reported as a shard file
// itself, recognized or otherwise.
const lockFileName = ".sitequery.lock"

// maxParallelReads bounds how many shard files are read from disk
// concurrently. Decoding always happens sequentially afterward, since
// SearchIndex mutation is not safe to interleave (§5 of the engine's
// concurrency model) — only the I/O fan-out benefits from concurrency.
const maxParallelReads = 8

// Result summarizes one LoadDir call, for status/doctor-style reporting.
type Result struct {
	ChunksLoaded  int
	FiltersLoaded int
	FilesSkipped  []string
	FilesErrored  map[string]error
}

// LoadDir reads every recognized shard file in dir (sorted by name, for
// deterministic decode order when pages are appended across shards) and
// loads it into idx. Binary shards (.bin/.cbor) are decoded as filter-index
// chunks; .json files are ingested as synthetic filter documents. Files
// with an unrecognized extension are skipped, not errored.
//
// The directory is held under a shared (read) cross-process lock for the
// duration of the call, via ShardDirLock — an external indexer rewriting
// shards takes the corresponding exclusive lock while it writes, so a load
// never observes a half-written shard file straddling two lock holders.
func LoadDir(idx *searchindex.Index, dir string) (Result, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Result{}, coreerrors.IOError(fmt.Sprintf("read shard directory %s", dir), err)
	}

	lock := NewShardDirLock(dir)
	if err := lock.RLock(); err != nil {
		return Result{}, coreerrors.IOError(fmt.Sprintf("lock shard directory %s", dir), err)
	}
	defer func() { _ = lock.Unlock() }()

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || e.Name() == lockFileName {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	result := Result{FilesErrored: make(map[string]error)}

	type readOutcome struct {
		name string
		data []byte
		err  error
	}
	outcomes := make([]readOutcome, len(names))

	g := new(errgroup.Group)
	g.SetLimit(maxParallelReads)
	for i, name := range names {
		i, name := i, name
		if !validation.ValidShardFilename(name) {
			outcomes[i] = readOutcome{name: name, err: errSkipped}
			continue
		}
		g.Go(func() error {
			data, err := os.ReadFile(filepath.Join(dir, name))
			outcomes[i] = readOutcome{name: name, data: data, err: err}
			return nil
		})
	}
	_ = g.Wait() // per-file errors are carried in outcomes, never aborts the batch

	for _, oc := range outcomes {
		switch {
		case oc.err == errSkipped:
			result.FilesSkipped = append(result.FilesSkipped, oc.name)
			continue
		case oc.err != nil:
			result.FilesErrored[oc.name] = coreerrors.IOError(fmt.Sprintf("read shard file %s", oc.name), oc.err)
			continue
		}

		if filepath.Ext(oc.name) == ".json" {
			result.FiltersLoaded++
			idx.DecodeSyntheticFilter(string(oc.data))
			continue
		}

		if err := idx.DecodeFilterIndexChunk(oc.data); err != nil {
			result.FilesErrored[oc.name] = coreerrors.DecodeError(fmt.Sprintf("decode shard %s", oc.name), 0, err)
			continue
		}
		result.ChunksLoaded++
	}

	return result, nil
}

// errSkipped is a sentinel marking a filename that never reached the read
// step because its extension isn't recognized.
var errSkipped = fmt.Errorf("shard file skipped: unrecognized extension")
