package core

import "github.com/RoaringBitmap/roaring/v2"

// AddVertex appends a new vertex carrying label l and returns its id.
// Ids are assigned densely in insertion order, starting at 0.
func (g *Graph) AddVertex(l Label) int {
	id := len(g.labels)
	g.labels = append(g.labels, l)
	g.succ = append(g.succ, roaring.New())

	// Maintain the label index alongside the vertex list.
	bm, ok := g.byLabel[l]
	if !ok {
		bm = roaring.New()
		g.byLabel[l] = bm
	}
	bm.Add(uint32(id))

	return id
}

// AddEdge inserts the directed arc u→v. Inserting an existing arc is a
// no-op. Self-loops require WithLoops.
func (g *Graph) AddEdge(u, v int) error {
	// 1. Validate both endpoints.
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return ErrVertexNotFound
	}

	// 2. Enforce the loop policy.
	if u == v && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	// 3. Insert; bitmaps make duplicate arcs idempotent.
	if !g.succ[u].Contains(uint32(v)) {
		g.succ[u].Add(uint32(v))
		g.edgeCount++
	}

	return nil
}

// AddBoth inserts both u→v and v→u, the conventional encoding of an
// undirected edge on a directed graph.
func (g *Graph) AddBoth(u, v int) error {
	if err := g.AddEdge(u, v); err != nil {
		return err
	}

	return g.AddEdge(v, u)
}
