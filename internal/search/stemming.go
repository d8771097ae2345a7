package search

import (
	"strings"

	"github.com/Aman-CERP/sitequery/internal/stem"
)

// stemsFromTerm splits a query on single space characters and stems each
// non-empty token. An empty or whitespace-only query yields an empty slice,
// never a slice containing empty strings.
func stemsFromTerm(query string, stemmer stem.Stemmer) []string {
	tokens := strings.Split(query, " ")
	stems := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t == "" {
			continue
		}
		stems = append(stems, stemmer.Stem(t))
	}
	return stems
}
