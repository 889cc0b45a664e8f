// Package core defines the vertex-labeled directed Graph that every other
// motif package operates on.
//
// What
//
//   - Vertices are dense integers 0..N-1, assigned in insertion order.
//   - Each vertex carries a single integer Label.
//   - Edges are directed arcs; successor sets are roaring bitmaps, so
//     membership tests and set algebra over neighborhoods stay cheap even
//     on large graphs.
//   - A per-label vertex index is maintained on insertion, giving O(1)
//     access to "all vertices with label ℓ" (the seed of candidate
//     computation in dualsim).
//
// Why
//
//   - Subgraph matching touches successor sets and label classes far more
//     often than it touches individual edges; both are first-class here.
//   - Bitmap successor sets intersect directly with candidate sets during
//     refinement, with no intermediate allocation.
//
// Mutability
//
//	A Graph is built once with AddVertex/AddEdge and is treated as
//	read-only afterwards. None of the algorithm packages mutate a Graph,
//	and the accessors that expose bitmaps (Successors, VerticesWithLabel)
//	return live views that callers must not modify. The Graph itself is
//	not synchronized; concurrent readers are safe only after construction
//	has finished.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - AddVertex / AddEdge: amortized O(1)
//   - Label / OutDegree / Successors / VerticesWithLabel: O(1)
//   - HasEdge: O(1) bitmap containment
//   - Memory: O(V + E) in compressed bitmap form
//
// Errors
//
//   - ErrVertexNotFound  - an operation referenced a vertex id outside [0, Order).
//   - ErrLoopNotAllowed  - a self-loop was added without WithLoops.
package core
