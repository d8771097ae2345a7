package search

import (
	"strings"

	"github.com/Aman-CERP/sitequery/internal/store"
)

// extension is one dictionary word resolved for a query stem, paired with
// its posting list.
type extension struct {
	word     string
	postings []store.PageWord
}

// findWordExtensions resolves a stem against the index's dictionary:
//
//  1. Every dictionary key that starts with stem is an extension.
//  2. While scanning, the longest dictionary key that stem starts with is
//     tracked as a prefix fallback.
//  3. If no extensions were found and a prefix fallback exists, that single
//     fallback is returned alone. Otherwise the extensions list is returned
//     (which may be empty).
//
// Dictionary keys are scanned in sorted order so the prefix fallback's
// tie-break among equal-length candidates is deterministic: the
// lexicographically smallest key wins.
func findWordExtensions(ix *store.SearchIndex, stemWord string) []extension {
	keys := ix.SortedWordKeys()

	var extensions []extension
	longestPrefix := ""

	for _, key := range keys {
		switch {
		case strings.HasPrefix(key, stemWord):
			extensions = append(extensions, extension{word: key, postings: ix.Words[key]})
		case strings.HasPrefix(stemWord, key) && len(key) > len(longestPrefix):
			longestPrefix = key
		}
	}

	if len(extensions) == 0 && longestPrefix != "" {
		return []extension{{word: longestPrefix, postings: ix.Words[longestPrefix]}}
	}
	return extensions
}
