package core

import "github.com/RoaringBitmap/roaring/v2"

// emptySet is returned for label classes with no members, so callers can
// iterate unconditionally. Never mutated.
var emptySet = roaring.New()

// Order returns the number of vertices.
func (g *Graph) Order() int { return len(g.labels) }

// Size returns the number of directed arcs.
func (g *Graph) Size() int { return g.edgeCount }

// HasVertex reports whether v is a valid vertex id.
func (g *Graph) HasVertex(v int) bool { return v >= 0 && v < len(g.labels) }

// Label returns the label of vertex v.
func (g *Graph) Label(v int) (Label, error) {
	if !g.HasVertex(v) {
		return 0, ErrVertexNotFound
	}

	return g.labels[v], nil
}

// Successors returns the out-neighborhood of v as a bitmap view.
// The returned bitmap is live graph state: callers must not modify it.
func (g *Graph) Successors(v int) (*roaring.Bitmap, error) {
	if !g.HasVertex(v) {
		return nil, ErrVertexNotFound
	}

	return g.succ[v], nil
}

// OutDegree returns |Successors(v)|, or 0 for an invalid id.
func (g *Graph) OutDegree(v int) int {
	if !g.HasVertex(v) {
		return 0
	}

	return int(g.succ[v].GetCardinality())
}

// HasEdge reports whether the arc u→v exists.
func (g *Graph) HasEdge(u, v int) bool {
	return g.HasVertex(u) && g.HasVertex(v) && g.succ[u].Contains(uint32(v))
}

// VerticesWithLabel returns the set of vertices carrying label l as a
// bitmap view (empty, possibly shared, bitmap when no vertex does).
// The returned bitmap is live graph state: callers must not modify it.
func (g *Graph) VerticesWithLabel(l Label) *roaring.Bitmap {
	if bm, ok := g.byLabel[l]; ok {
		return bm
	}

	return emptySet
}
