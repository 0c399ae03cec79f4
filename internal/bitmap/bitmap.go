// Package bitmap provides a compressed set of event ordinals.
//
// It wraps the official roaring implementation. The catalog uses it for
// per-NEO posting sets and for the set of unresolved approaches.
package bitmap

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Set is a 32-bit roaring bitmap of event ordinals.
type Set struct {
	rb *roaring.Bitmap
}

// New creates a new empty set.
func New() *Set {
	return &Set{
		rb: roaring.New(),
	}
}

// Add adds an ordinal to the set.
func (s *Set) Add(ord uint32) {
	s.rb.Add(ord)
}

// Contains checks if an ordinal is in the set.
func (s *Set) Contains(ord uint32) bool {
	return s.rb.Contains(ord)
}

// IsEmpty returns true if the set is empty.
func (s *Set) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Cardinality returns the number of ordinals in the set.
func (s *Set) Cardinality() uint64 {
	return s.rb.GetCardinality()
}

// Iterator returns an iterator over the set in ascending ordinal order.
func (s *Set) Iterator() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}
