// SPDX-License-Identifier: MIT

// Package matrix provides the small dense numeric layer used alongside
// the matcher: a row-major Dense matrix, a 0/1 adjacency export of a
// core.Graph, and k-step walk counting via repeated multiplication.
//
// Design rules carried throughout:
//   - Public accessors (At/Set) return sentinel errors, never panic on
//     user input.
//   - Fixed loop orders, no map iteration: results are deterministic.
//   - Errors are package-prefixed sentinels matched with errors.Is.
//
// Complexity quicksheet:
//   - NewDense: O(r·c) zero-init; At/Set: O(1); Clone: O(r·c)
//   - Mul: O(r·k·c) naive triple loop
//   - NewAdjacency: O(V + E); WalkCounts: O(k·V³)
package matrix
