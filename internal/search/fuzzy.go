package search

import (
	"sort"

	"github.com/Aman-CERP/sitequery/internal/stem"
	"github.com/Aman-CERP/sitequery/internal/store"
)

// lengthMapEntry associates a length-distance boost with the bitset of
// pages matching the dictionary word that produced it.
type lengthMapEntry struct {
	length int
	pages  *store.Bitset
}

// SearchTerm performs fuzzy matching with extension expansion and ranking.
//
// An empty query with no filter returns every page with a zero score (the
// length-boost and base-score contributions are both zero when there are no
// matched word locations); an empty query with a filter returns only the
// filtered pages, still at zero score. This fallback is intentional and is
// the only way to enumerate "all pages" through this API — there is no
// separate list-everything operation.
func SearchTerm(ix *store.SearchIndex, stemmer stem.Stemmer, query string, filter *store.Bitset) (unfiltered []uint32, results []PageSearchResult) {
	stems := stemsFromTerm(query, stemmer)

	var maps []*store.Bitset
	var lengthMap []lengthMapEntry
	wordsAccum := make(map[uint32][]store.WordLoc)

	for _, s := range stems {
		extensions := findWordExtensions(ix, s)
		if len(extensions) == 0 {
			continue
		}

		union := store.NewBitset()
		for _, ext := range extensions {
			bs := store.NewBitset()
			for _, pw := range ext.postings {
				bs.Add(pw.Page)
				wordsAccum[pw.Page] = append(wordsAccum[pw.Page], pw.Locs...)
			}
			union = store.Union(union, bs)
			lengthMap = append(lengthMap, lengthMapEntry{
				length: lengthDistance(ext.word, s),
				pages:  bs,
			})
		}
		maps = append(maps, union)
	}

	// All stems were present but none resolved to a dictionary word: force
	// an empty result rather than falling through to "no restriction".
	if len(stems) > 0 && len(maps) == 0 {
		maps = append(maps, store.NewBitset())
	}

	var hits *store.Bitset
	if len(stems) == 0 {
		hits = store.BitsetFromSlice(ix.AllPageIDs())
	} else {
		hits = store.Intersect(maps...)
	}
	unfiltered = hits.ToSlice()

	final := hits
	switch {
	case filter != nil:
		final = store.Intersect(hits, filter)
	case len(stems) == 0:
		final = store.Intersect(hits, store.BitsetFromSlice(ix.AllPageIDs()))
	}

	for _, p := range final.ToSlice() {
		unique := collapseLocations(wordsAccum[p])

		total := 0
		for _, u := range unique {
			total += int(u.Weight)
		}

		score := float64(total) / 24.0 / float64(ix.Pages[p].WordCount)
		for _, lm := range lengthMap {
			if lm.pages.Contains(p) {
				score += 1.0 / float64(lm.length)
			}
		}

		results = append(results, PageSearchResult{
			Page:          p,
			Hash:          ix.Pages[p].Hash,
			Score:         score,
			WordLocations: unique,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return unfiltered, results
}

// lengthDistance computes the |len(word) - len(stem)| + 1 boost divisor.
func lengthDistance(word, stemWord string) int {
	d := len(word) - len(stemWord)
	if d < 0 {
		d = -d
	}
	return d + 1
}

// collapseLocations sorts position pairs ascending (stable on weight) and
// merges entries sharing a position: the lower weight wins when they
// differ, and weights sum when they are equal. Running this function on an
// already-collapsed list is a no-op, since no two entries in its output
// share a position.
func collapseLocations(locs []store.WordLoc) []store.WordLoc {
	if len(locs) == 0 {
		return []store.WordLoc{}
	}

	sorted := append([]store.WordLoc(nil), locs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})

	unique := make([]store.WordLoc, 0, len(sorted))
	working := sorted[0]
	for _, next := range sorted[1:] {
		if next.Position == working.Position {
			switch {
			case next.Weight < working.Weight:
				working.Weight = next.Weight
			case next.Weight == working.Weight:
				working.Weight += next.Weight
			}
			continue
		}
		unique = append(unique, working)
		working = next
	}
	unique = append(unique, working)
	return unique
}
