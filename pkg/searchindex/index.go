// Package searchindex is the host-facing facade over the search engine
// core: it owns a SearchIndex, the single mutex the concurrency model
// requires of a host, a small stemmer, and an optional query-result cache,
// and exposes the four operations a host program calls.
package searchindex

import (
	"fmt"
	"sort"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/Aman-CERP/sitequery/internal/index"
	"github.com/Aman-CERP/sitequery/internal/search"
	"github.com/Aman-CERP/sitequery/internal/stem"
	"github.com/Aman-CERP/sitequery/internal/store"
)

// Index wraps a *store.SearchIndex with the mutation/query discipline the
// engine's concurrency model requires: decoders and the synthetic-filter
// path mutate it under a lock, query functions take a read lock, and a host
// is free to call them from multiple goroutines (the underlying engine
// itself remains conceptually single-threaded per query).
type Index struct {
	mu      sync.RWMutex
	ix      *store.SearchIndex
	stemmer stem.Stemmer
	cache   *lru.Cache[string, cachedResult]
}

type cachedResult struct {
	unfiltered []uint32
	results    []search.PageSearchResult
}

// Option configures an Index at construction time.
type Option func(*Index)

// WithStemmer overrides the default Porter stemmer.
func WithStemmer(s stem.Stemmer) Option {
	return func(idx *Index) {
		if s != nil {
			idx.stemmer = s
		}
	}
}

// WithCacheSize enables an LRU cache over ExactTerm and SearchTerm results, keyed
// on the (operation, query, filter-identity) tuple. A size of 0 disables
// the cache.
func WithCacheSize(size int) Option {
	return func(idx *Index) {
		if size <= 0 {
			idx.cache = nil
			return
		}
		c, err := lru.New[string, cachedResult](size)
		if err == nil {
			idx.cache = c
		}
	}
}

// NewIndex returns an empty Index ready for decoding or ingestion.
func NewIndex(opts ...Option) *Index {
	idx := &Index{
		ix:      store.New(),
		stemmer: stem.NewDefault(),
	}
	for _, opt := range opts {
		opt(idx)
	}
	return idx
}

// DecodeFilterIndexChunk decodes one filter-shard chunk into the index.
func (idx *Index) DecodeFilterIndexChunk(chunk []byte) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.invalidateCache()
	return index.DecodeFilterIndexChunk(idx.ix, chunk)
}

// DecodeSyntheticFilter ingests a synthetic-filter document into the index.
func (idx *Index) DecodeSyntheticFilter(doc string) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.invalidateCache()
	index.DecodeSyntheticFilter(idx.ix, doc)
}

// ExactTerm performs contiguous-position phrase matching.
func (idx *Index) ExactTerm(query string, filter *store.Bitset) ([]uint32, []search.PageSearchResult) {
	idx.mu.RLock()
	key := cacheKey("exact", query, filter)
	if idx.cache != nil {
		if cached, ok := idx.cache.Get(key); ok {
			idx.mu.RUnlock()
			return cached.unfiltered, cached.results
		}
	}
	unfiltered, results := search.ExactTerm(idx.ix, idx.stemmer, query, filter)
	idx.mu.RUnlock()

	if idx.cache != nil {
		idx.cache.Add(key, cachedResult{unfiltered: unfiltered, results: results})
	}
	return unfiltered, results
}

// SearchTerm performs fuzzy extension matching with ranking.
func (idx *Index) SearchTerm(query string, filter *store.Bitset) ([]uint32, []search.PageSearchResult) {
	idx.mu.RLock()
	key := cacheKey("fuzzy", query, filter)
	if idx.cache != nil {
		if cached, ok := idx.cache.Get(key); ok {
			idx.mu.RUnlock()
			return cached.unfiltered, cached.results
		}
	}
	unfiltered, results := search.SearchTerm(idx.ix, idx.stemmer, query, filter)
	idx.mu.RUnlock()

	if idx.cache != nil {
		idx.cache.Add(key, cachedResult{unfiltered: unfiltered, results: results})
	}
	return unfiltered, results
}

// cacheKey identifies a query result by operation, query text, and filter
// identity. Two calls with equal-by-value but distinct *Bitset pointers are
// treated as different cache entries: the filter is caller-owned and may be
// mutated in place between calls, so pointer identity is the only safe
// invalidation boundary short of tracking filter contents separately.
func cacheKey(op, query string, filter *store.Bitset) string {
	return fmt.Sprintf("%s\x00%s\x00%p", op, query, filter)
}

// PageCount returns the number of pages currently known to the index.
func (idx *Index) PageCount() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.ix.Pages)
}

// FilterValues returns, for every known filter, the sorted list of distinct
// values it carries. Intended for status/stats reporting, not the query
// path — it copies rather than returning internal slices.
func (idx *Index) FilterValues() map[string][]string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	out := make(map[string][]string, len(idx.ix.Filters))
	for name, values := range idx.ix.Filters {
		keys := make([]string, 0, len(values))
		for value := range values {
			keys = append(keys, value)
		}
		sort.Strings(keys)
		out[name] = keys
	}
	return out
}

// invalidateCache drops every cached query result. Called with mu held for
// writing, since any mutation can change every query's answer.
func (idx *Index) invalidateCache() {
	if idx.cache != nil {
		idx.cache.Purge()
	}
}
