package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Aman-CERP/sitequery/internal/stem"
)

func TestStemsFromTerm_SplitsOnSingleSpace(t *testing.T) {
	got := stemsFromTerm("cat dog", stem.NewPassthrough())
	assert.Equal(t, []string{"cat", "dog"}, got)
}

func TestStemsFromTerm_EmptyQueryYieldsEmptySlice(t *testing.T) {
	assert.Empty(t, stemsFromTerm("", stem.NewPassthrough()))
}

func TestStemsFromTerm_WhitespaceOnlyQueryYieldsEmptySlice(t *testing.T) {
	assert.Empty(t, stemsFromTerm("   ", stem.NewPassthrough()))
}

func TestStemsFromTerm_CollapsesRepeatedSpaces(t *testing.T) {
	// Splitting on single space characters produces empty tokens between
	// consecutive spaces, which are filtered out rather than stemmed.
	got := stemsFromTerm("cat  dog", stem.NewPassthrough())
	assert.Equal(t, []string{"cat", "dog"}, got)
}

func TestStemsFromTerm_PreservesCase(t *testing.T) {
	// No case fold is applied at query time: dictionary keys are stemmed
	// from raw index-time tokens (§3 invariant), so a query-only lowercase
	// fold would desync lookups against a dictionary built from mixed-case
	// source text.
	got := stemsFromTerm("CAT", stem.NewPassthrough())
	assert.Equal(t, []string{"CAT"}, got)
}
