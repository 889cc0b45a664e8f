// SPDX-License-Identifier: MIT

// Package gen produces synthetic labeled digraphs and query patterns for
// benchmarks, examples, and the CLI.
//
// What
//
//   - RandomGraph(n, p, labels, opts...): Erdős–Rényi-style directed graph
//     on n vertices, each ordered pair (i,j), i≠j, becoming an arc with
//     probability p, labels drawn uniformly from [0, labels).
//   - ExtractQuery(g, size, opts...): a connected induced subpattern of g
//     with size vertices, grown by a random walk over out-edges. Labels
//     and arcs are preserved, so every extracted query is embeddable in g
//     by construction (the identity embedding).
//
// Determinism
//
//	Vertex insertion order is i ascending, edge trials are (i asc, j asc),
//	and the walk consumes the RNG in a fixed pattern, so a fixed seed
//	reproduces the same graph and query exactly.
//
// Contract
//
//   - A random source is mandatory: supply WithSeed or WithRand, else
//     ErrNeedRandSource. No hidden global randomness.
//   - Only sentinel errors are returned; no panics on user input.
package gen
