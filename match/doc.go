// Package match finds all label- and edge-preserving injective embeddings
// of a small query graph inside a larger data graph, combining the
// dualsim oracle with depth-first backtracking search.
//
// What
//
//   - NewMatcher(q, g, opts...): bind a query graph q to a data graph g.
//   - Bijections(): every injective mapping ψ (a []int indexed by query
//     vertex) such that labels match and every query arc maps onto a data
//     arc. The search runs once; the result set is cached.
//   - Mappings(): the merged multi-valued view — for each query vertex,
//     the union of data vertices assigned to it across all bijections.
//   - Result(): bijections plus a Truncated indicator for limit hits.
//
// How
//
//	Query vertices are ordered once by descending out-degree (most
//	constrained first, stable on ties). The search assigns one query
//	vertex per recursion level: each surviving candidate is isolated into
//	a fresh deep-copied mapping, re-refined through dualsim.Refine, and
//	explored. Branches whose candidate sets empty out die silently; an
//	empty candidate set is pruning, never an error.
//
// Limits & progress
//
//   - WithLimit(n) caps the number of collected bijections; once the cap
//     is reached the whole search stops mid-loop and the partial set is
//     returned with Result().Truncated == true. Bijections() itself gives
//     no completeness signal, matching the silent-truncation contract —
//     callers needing completeness must set the limit above any expected
//     match count, or consult Result().Truncated.
//   - WithCheckEvery(n) + WithOnProgress(fn) emit a count observation
//     every n matches; WithProgressLogger(l) installs a charmbracelet/log
//     backed observer. Observability only, no effect on results.
//
// Concurrency
//
//	A Matcher is single-threaded: the search is synchronous depth-first
//	recursion, the match set is owned by one invocation, and candidate
//	mappings are deep-copied at every branch (see dualsim.Candidates).
//	There is no cancellation mechanism beyond the limit counter.
//
// Complexity
//
//	Worst case exponential in |Q| (the problem is NP-complete); the
//	ordering heuristic and fixpoint refinement keep the branching factor
//	low on labeled graphs in practice.
//
// Errors
//
//   - ErrGraphNil         - query or data graph is nil.
//   - ErrOptionViolation  - non-positive limit or check interval.
package match
