package dualsim

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/motif/core"
)

// FeasibleMates computes the label-only candidate seed: for every query
// vertex u, all data vertices of g sharing u's label. Entries may be
// empty; that is a valid mapping signalling immediate infeasibility, so
// no empty-check happens here.
func FeasibleMates(q, g *core.Graph) Candidates {
	phi := make(Candidates, q.Order())
	for u := 0; u < q.Order(); u++ {
		lbl, _ := q.Label(u) // u ranges over valid ids by construction
		phi[u] = g.VerticesWithLabel(lbl).Clone()
	}

	return phi
}

// Refine computes the greatest fixpoint of the dual-simulation rule over
// phi: a data vertex v is removed from phi(u) whenever some successor u′
// of u leaves v without any successor inside phi(u′). The input mapping
// is never mutated; the result is a fresh Candidates value.
//
// Sweeps run in ascending query-vertex order and each entry's removals
// are collected before being applied, so the fixpoint is reached
// deterministically.
func Refine(q, g *core.Graph, phi Candidates) Candidates {
	// 1. Work on a private deep copy; callers keep their phi intact.
	cur := phi.Clone()

	// 2. Iterate sweeps until no entry shrinks.
	for changed := true; changed; {
		changed = false

		for u := 0; u < q.Order(); u++ {
			qsucc, _ := q.Successors(u)
			if qsucc.IsEmpty() {
				continue // no structural constraint on u
			}

			// 3. Collect this sweep's removals before touching cur[u],
			//    keeping iteration order independent of removal order.
			var dead []uint32
			it := cur[u].Iterator()
			for it.HasNext() {
				v := it.Next()
				if !supported(g, int(v), qsucc, cur) {
					dead = append(dead, v)
				}
			}

			for _, v := range dead {
				cur[u].Remove(v)
				changed = true
			}
		}
	}

	return cur
}

// supported reports whether data vertex v can stand in for a query vertex
// whose successor set is qsucc: for every query successor u′, v must have
// at least one data successor inside cur[u′].
func supported(g *core.Graph, v int, qsucc *roaring.Bitmap, cur Candidates) bool {
	vsucc, _ := g.Successors(v)

	it := qsucc.Iterator()
	for it.HasNext() {
		uNext := int(it.Next())
		if !vsucc.Intersects(cur[uNext]) {
			return false
		}
	}

	return true
}
