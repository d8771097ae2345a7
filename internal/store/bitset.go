package store

import "github.com/RoaringBitmap/roaring/v2"

// Bitset is a compressed set of page ids, backed by a Roaring bitmap. The
// query engine uses it for filter values and for the intersect/union
// operations that combine filter selections before a query runs.
type Bitset struct {
	bm *roaring.Bitmap
}

// NewBitset returns an empty Bitset.
func NewBitset() *Bitset {
	return &Bitset{bm: roaring.New()}
}

// BitsetFromSlice returns a Bitset containing exactly the given page ids.
func BitsetFromSlice(ids []uint32) *Bitset {
	b := NewBitset()
	for _, id := range ids {
		b.bm.Add(id)
	}
	return b
}

// Add inserts a page id.
func (b *Bitset) Add(id uint32) {
	b.bm.Add(id)
}

// Contains reports whether a page id is present.
func (b *Bitset) Contains(id uint32) bool {
	return b.bm.Contains(id)
}

// Len returns the number of page ids in the set.
func (b *Bitset) Len() int {
	return int(b.bm.GetCardinality())
}

// ToSlice returns the page ids in ascending order.
func (b *Bitset) ToSlice() []uint32 {
	return b.bm.ToArray()
}

// Intersect returns a new Bitset containing ids present in every given set.
// With no sets given, it returns an empty Bitset.
func Intersect(sets ...*Bitset) *Bitset {
	if len(sets) == 0 {
		return NewBitset()
	}
	result := sets[0].bm.Clone()
	for _, s := range sets[1:] {
		result.And(s.bm)
	}
	return &Bitset{bm: result}
}

// Union returns a new Bitset containing ids present in any given set.
func Union(sets ...*Bitset) *Bitset {
	result := roaring.New()
	for _, s := range sets {
		result.Or(s.bm)
	}
	return &Bitset{bm: result}
}
