// Package fixture builds a *store.SearchIndex directly from Go values,
// without a shard file or synthetic-filter document. It exists for tests
// and for the CLI's demo data generator, standing in for the build-time
// indexing pipeline this repository's specification explicitly excludes.
package fixture

import "github.com/Aman-CERP/sitequery/internal/store"

// Builder accumulates pages, postings, and filter values before producing a
// SearchIndex. Page returns the new page's id; Word and Filter chain:
// b.Word(...).Filter(...), then b.Build().
type Builder struct {
	ix *store.SearchIndex
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{ix: store.New()}
}

// Page registers a page by content hash and word count, returning its id.
func (b *Builder) Page(hash string, wordCount int) uint32 {
	return b.ix.EnsurePage(hash, wordCount)
}

// Word adds one occurrence of a (stemmed) word on a page at the given
// weight and position.
func (b *Builder) Word(word string, page uint32, weight uint8, position uint32) *Builder {
	loc := store.WordLoc{Weight: weight, Position: position}

	for i := range b.ix.Words[word] {
		if b.ix.Words[word][i].Page == page {
			b.ix.Words[word][i].Locs = append(b.ix.Words[word][i].Locs, loc)
			return b
		}
	}
	b.ix.Words[word] = append(b.ix.Words[word], store.PageWord{Page: page, Locs: []store.WordLoc{loc}})
	return b
}

// Filter assigns a filter value to the given set of pages.
func (b *Builder) Filter(name, value string, pages ...uint32) *Builder {
	sub, ok := b.ix.Filters[name]
	if !ok {
		sub = make(map[string][]uint32)
		b.ix.Filters[name] = sub
	}
	sub[value] = append(sub[value], pages...)
	return b
}

// Build returns the assembled SearchIndex.
func (b *Builder) Build() *store.SearchIndex {
	return b.ix
}
