// Package dualsim: the Candidates value type and its copy discipline.
package dualsim

import "github.com/RoaringBitmap/roaring/v2"

// Candidates maps each query vertex (by index) to the set of data
// vertices it may still be assigned to.
//
// Copy discipline (correctness-critical, not a performance detail):
// roaring bitmaps are mutable, so sibling search branches sharing entries
// would observe each other's narrowing. Every branch point must therefore
// go through Clone or CloneWith, which deep-copy every entry. No function
// in this package or in match ever narrows an entry of a Candidates value
// it did not create.
type Candidates []*roaring.Bitmap

// Clone returns a deep copy: a fresh slice whose entries are independent
// bitmap copies of c's entries.
func (c Candidates) Clone() Candidates {
	out := make(Candidates, len(c))
	for u, set := range c {
		out[u] = set.Clone()
	}

	return out
}

// CloneWith returns a deep copy of c in which entry u has collapsed to
// the singleton {v}: the tentative-assignment step of the search.
func (c Candidates) CloneWith(u int, v uint32) Candidates {
	out := make(Candidates, len(c))
	for w, set := range c {
		if w == u {
			out[w] = roaring.BitmapOf(v)
			continue
		}
		out[w] = set.Clone()
	}

	return out
}

// Feasible reports whether every entry is non-empty. A false result means
// the mapping admits no embedding.
func (c Candidates) Feasible() bool {
	for _, set := range c {
		if set.IsEmpty() {
			return false
		}
	}

	return true
}

// Equal reports entry-wise bitmap equality with other.
func (c Candidates) Equal(other Candidates) bool {
	if len(c) != len(other) {
		return false
	}
	for u := range c {
		if !c[u].Equals(other[u]) {
			return false
		}
	}

	return true
}
