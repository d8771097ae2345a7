package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Aman-CERP/sitequery/internal/store"
)

func TestCollapseLocations_SumsEqualWeightsAtSamePosition(t *testing.T) {
	// Given two locations at the same position with equal weight
	locs := []store.WordLoc{{Weight: 2, Position: 5}, {Weight: 2, Position: 5}}

	// Then they collapse into one location with summed weight
	got := collapseLocations(locs)
	assert.Equal(t, []store.WordLoc{{Weight: 4, Position: 5}}, got)
}

func TestCollapseLocations_LowerWeightWinsAtSamePosition(t *testing.T) {
	// Given two locations at the same position with differing weight
	locs := []store.WordLoc{{Weight: 3, Position: 5}, {Weight: 1, Position: 5}}

	// Then the lower weight wins
	got := collapseLocations(locs)
	assert.Equal(t, []store.WordLoc{{Weight: 1, Position: 5}}, got)
}

func TestCollapseLocations_DistinctPositionsUntouched(t *testing.T) {
	locs := []store.WordLoc{{Weight: 1, Position: 0}, {Weight: 2, Position: 5}}
	got := collapseLocations(locs)
	assert.Equal(t, locs, got)
}

func TestCollapseLocations_IdempotentOnAlreadyCollapsedList(t *testing.T) {
	// Invariant 7: collapsing an already-collapsed list is a no-op.
	locs := []store.WordLoc{{Weight: 1, Position: 0}, {Weight: 3, Position: 4}, {Weight: 2, Position: 9}}

	once := collapseLocations(locs)
	twice := collapseLocations(once)

	assert.Equal(t, once, twice)
}

func TestCollapseLocations_EmptyInputReturnsEmptySlice(t *testing.T) {
	got := collapseLocations(nil)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestLengthDistance_SymmetricAroundStemLength(t *testing.T) {
	assert.Equal(t, 2, lengthDistance("cats", "cat"))
	assert.Equal(t, 2, lengthDistance("ca", "cat"))
	assert.Equal(t, 1, lengthDistance("cat", "cat"))
}
