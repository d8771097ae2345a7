// Package store holds the in-memory data model a decoded or ingested search
// index is built from: pages, per-word posting lists, and filter value maps.
package store

import "sort"

// Page is a single indexed page: its content hash (used to detect shards
// that describe the same page across incremental updates) and its total
// word count, used to normalize term-frequency scores.
type Page struct {
	Hash      string
	WordCount int
}

// WordLoc is one occurrence of a word on a page: the weight assigned to the
// element it appeared in (e.g. heading vs. body text) and its position in
// that page's word stream.
type WordLoc struct {
	Weight   uint8
	Position uint32
}

// PageWord is a word's posting list entry for a single page: the page id and
// every location on that page where the (stemmed) word occurs.
type PageWord struct {
	Page uint32
	Locs []WordLoc
}

// SearchIndex is the complete in-memory search structure: every known page,
// every stemmed word's posting lists, and every filter's value-to-page-ids
// map. It has no persistence of its own — a host populates it from shard
// files (FilterIndexDecoder) and/or a synthetic filter document
// (SyntheticFilterIngestor) and keeps it for the lifetime of the process.
type SearchIndex struct {
	Pages   []Page
	Words   map[string][]PageWord
	Filters map[string]map[string][]uint32
}

// New returns an empty SearchIndex ready for decoding or ingestion.
func New() *SearchIndex {
	return &SearchIndex{
		Words:   make(map[string][]PageWord),
		Filters: make(map[string]map[string][]uint32),
	}
}

// EnsurePage returns the id of the page with the given hash, creating one
// with the given word count if it does not already exist. Shard chunks and
// fixtures share this so re-ingesting the same page hash never duplicates
// the page slice.
func (ix *SearchIndex) EnsurePage(hash string, wordCount int) uint32 {
	for i := range ix.Pages {
		if ix.Pages[i].Hash == hash {
			return uint32(i)
		}
	}
	ix.Pages = append(ix.Pages, Page{Hash: hash, WordCount: wordCount})
	return uint32(len(ix.Pages) - 1)
}

// AllPageIDs returns every known page id, in ascending order. Used by the
// query engine's "no filter supplied" fallback and by synthetic filter
// ingestion's "assign to every page" behavior.
func (ix *SearchIndex) AllPageIDs() []uint32 {
	ids := make([]uint32, len(ix.Pages))
	for i := range ix.Pages {
		ids[i] = uint32(i)
	}
	return ids
}

// SortedWordKeys returns every indexed (stemmed) word in lexicographic
// order. Iterating words in a deterministic order makes the longest-prefix
// tie-break in extension matching reproducible instead of dependent on Go's
// randomized map iteration order.
func (ix *SearchIndex) SortedWordKeys() []string {
	keys := make([]string, 0, len(ix.Words))
	for k := range ix.Words {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
