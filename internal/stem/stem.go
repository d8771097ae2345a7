// Package stem provides the stemming capability the query engine uses to
// normalize query terms before dictionary lookup, mirroring the original
// engine's term-to-stem step.
package stem

import porterstemmer "github.com/blevesearch/go-porterstemmer"

// Stemmer reduces a word to its stem. A Stemmer must never error: if a
// backend cannot produce a stem for some input, it returns the input word
// unchanged rather than failing the query, the same passthrough behavior the
// original engine falls back to when stemmer construction fails.
type Stemmer interface {
	Stem(word string) string
}

// porter is the default Stemmer, wrapping the Porter stemming algorithm.
type porter struct{}

// NewDefault returns the default English Porter stemmer. Construction cannot
// fail for this backend, but the capability is still modeled as an
// interface so a future backend (e.g. a language-specific segmenter) can be
// swapped in behind the same contract.
func NewDefault() Stemmer {
	return porter{}
}

func (porter) Stem(word string) string {
	if word == "" {
		return word
	}
	return porterstemmer.StemString(word)
}

// Passthrough is a Stemmer that returns every word unchanged. Used when a
// configured stemmer backend is unavailable, matching the original engine's
// fallback when `Stemmer::try_create_default()` fails.
type passthrough struct{}

// NewPassthrough returns a Stemmer that never transforms its input.
func NewPassthrough() Stemmer {
	return passthrough{}
}

func (passthrough) Stem(word string) string {
	return word
}
