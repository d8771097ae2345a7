package search

import (
	"github.com/Aman-CERP/sitequery/internal/stem"
	"github.com/Aman-CERP/sitequery/internal/store"
)

// ExactTerm performs contiguous-position phrase matching: every stem of the
// query must appear on a page at consecutive positions, in query order. If
// any stem is absent from the dictionary, the phrase is unmatchable and
// ExactTerm returns (nil, nil) — not "every page".
//
// An empty query (zero stems) is treated the same way: an empty phrase
// matches nothing, since there is no positional contract to satisfy.
//
// Results are not sorted by score (every match scores 1.0); they are
// returned in the ascending page-id order of the final hit set.
func ExactTerm(ix *store.SearchIndex, stemmer stem.Stemmer, query string, filter *store.Bitset) (unfiltered []uint32, results []PageSearchResult) {
	stems := stemsFromTerm(query, stemmer)
	if len(stems) == 0 {
		return nil, nil
	}

	bitsets := make([]*store.Bitset, len(stems))
	locsByPage := make([]map[uint32][]store.WordLoc, len(stems))

	for i, s := range stems {
		postings, ok := ix.Words[s]
		if !ok {
			return nil, nil
		}

		bs := store.NewBitset()
		pages := make(map[uint32][]store.WordLoc, len(postings))
		for _, pw := range postings {
			bs.Add(pw.Page)
			pages[pw.Page] = append(pages[pw.Page], pw.Locs...)
		}
		bitsets[i] = bs
		locsByPage[i] = pages
	}

	hits := store.Intersect(bitsets...)
	unfiltered = hits.ToSlice()

	final := hits
	if filter != nil {
		final = store.Intersect(hits, filter)
	}

	for _, p := range final.ToSlice() {
		if len(stems) == 1 {
			locs := append([]store.WordLoc(nil), locsByPage[0][p]...)
			results = append(results, PageSearchResult{
				Page:          p,
				Hash:          ix.Pages[p].Hash,
				Score:         1.0,
				WordLocations: locs,
			})
			continue
		}

		for _, start := range locsByPage[0][p] {
			pos := start.Position
			matched := true
			for i := 1; i < len(stems); i++ {
				if !hasPosition(locsByPage[i][p], pos+uint32(i)) {
					matched = false
					break
				}
			}
			if !matched {
				continue
			}

			wl := make([]store.WordLoc, len(stems))
			for i := range stems {
				wl[i] = store.WordLoc{Weight: 1, Position: pos + uint32(i)}
			}
			results = append(results, PageSearchResult{
				Page:          p,
				Hash:          ix.Pages[p].Hash,
				Score:         1.0,
				WordLocations: wl,
			})
			break
		}
	}

	return unfiltered, results
}

func hasPosition(locs []store.WordLoc, pos uint32) bool {
	for _, l := range locs {
		if l.Position == pos {
			return true
		}
	}
	return false
}
