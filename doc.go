// Package motif finds occurrences of small labeled patterns inside larger
// vertex-labeled directed graphs — exact subgraph-isomorphism matching
// with dual-simulation pruning.
//
// 🚀 What is motif?
//
//	A compact matching toolkit built from five pieces:
//		• core/    — the labeled digraph: dense int ids, bitmap successor sets
//		• dualsim/ — the consistency oracle: feasible mates + fixpoint refinement
//		• match/   — ordering heuristic, backtracking search, result aggregation
//		• gen/     — synthetic graphs & embeddable query patterns
//		• matrix/  — dense adjacency export & walk counting
//
// ✨ Why motif?
//
//   - Exact semantics – every result is a true injective, label- and
//     edge-preserving embedding; no approximation
//   - Aggressive pruning – dual-simulation refinement after every
//     tentative assignment keeps the search tree small
//   - Deterministic – fixed orders everywhere; a seed reproduces a run
//
// Quick ASCII example, matching a triangle pattern:
//
//	    0───1          a
//	    │ ╲ │         ╱ ╲
//	    3───2        c───b
//
//	q, g := ...                    // build with core.NewGraph
//	m, err := match.NewMatcher(q, g)
//	if err != nil { ... }
//	for _, psi := range m.Bijections() {
//	    // psi[u] is the data vertex playing query vertex u
//	}
//
// See cmd/motif for the experiment CLI.
package motif
