// Package dualsim implements the structural-consistency oracle used by the
// match package: label-feasible candidate seeding and dual-simulation
// refinement of candidate mappings.
//
// What
//
//   - Candidates: a multi-valued mapping from each query vertex to the set
//     of data vertices it may still map onto, one bitmap per query vertex.
//   - FeasibleMates(q, g): the label-only seed — every data vertex sharing
//     a query vertex's label is a candidate. Necessary, not sufficient.
//   - Refine(q, g, phi): the greatest fixpoint of the dual-simulation
//     rule. A data vertex v survives in phi(u) only if, for every
//     successor u′ of u, v has at least one successor inside phi(u′).
//
// Why
//
//	Refinement is the pruning engine of the backtracking search: after
//	each tentative single-vertex assignment the search re-refines, and
//	branches whose candidate sets collapse to empty die without further
//	exploration. Running the same rule to fixpoint before the search
//	starts removes most label-feasible but structurally impossible
//	candidates up front.
//
// Contract
//
//   - Both functions are pure: the input mapping is never mutated, and
//     equal inputs produce equal outputs (removal order is fixed, so the
//     fixpoint is reached deterministically).
//   - Refine is monotone (each output entry is a subset of the input
//     entry) and idempotent (Refine∘Refine = Refine).
//   - Empty entries are legitimate values, not errors: they signal that
//     the mapping admits no embedding.
//
// Complexity (per Refine sweep, V = |G|, Q = |query|, d = max degree)
//
//   - Time:  O(Q · V · d) per sweep, sweeps repeated until stable.
//   - Memory: O(Q · V / 64) for the cloned candidate bitmaps.
package dualsim
