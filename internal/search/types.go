// Package search implements the query engine: stemming and dictionary
// resolution, exact-phrase matching, and fuzzy/extension matching with the
// length-boost and compound-word scoring rules.
package search

import "github.com/Aman-CERP/sitequery/internal/store"

// PageSearchResult is one page's match for a query.
type PageSearchResult struct {
	// Page is the page id (index into SearchIndex.Pages).
	Page uint32
	// Hash is the matched page's content hash, copied out for convenience.
	Hash string
	// Score is the page's relevance score. For ExactTerm it is always 1.0;
	// for SearchTerm it follows the length-boost/word-count formula.
	Score float64
	// WordLocations is the set of (weight, position) pairs behind this
	// result: for SearchTerm, the collapsed locations that contributed to
	// the score; for ExactTerm, the matched locations, not collapsed.
	WordLocations []store.WordLoc
}
