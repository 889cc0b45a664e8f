// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/motif/core"
)

// NewAdjacency exports g as a dense 0/1 adjacency matrix: entry (u,v) is
// 1 exactly when the arc u→v exists.
func NewAdjacency(g *core.Graph) (*Dense, error) {
	if g == nil {
		return nil, fmt.Errorf("NewAdjacency: %w", ErrGraphNil)
	}
	n := g.Order()
	if n == 0 {
		return nil, fmt.Errorf("NewAdjacency: empty graph: %w", ErrBadShape)
	}

	d := &Dense{rows: n, cols: n, data: make([]float64, n*n)}
	for u := 0; u < n; u++ {
		succ, _ := g.Successors(u)
		it := succ.Iterator()
		for it.HasNext() {
			d.data[u*n+int(it.Next())] = 1
		}
	}

	return d, nil
}

// WalkCounts returns A^k for g's adjacency matrix A: entry (u,v) counts
// the directed walks of length exactly k from u to v. k = 0 yields the
// identity.
func WalkCounts(g *core.Graph, k int) (*Dense, error) {
	if k < 0 {
		return nil, fmt.Errorf("WalkCounts(k=%d): %w", k, ErrBadWalkLength)
	}
	adj, err := NewAdjacency(g)
	if err != nil {
		return nil, fmt.Errorf("WalkCounts: %w", err)
	}

	// Start from the identity and multiply k times.
	out := &Dense{rows: adj.rows, cols: adj.cols, data: make([]float64, len(adj.data))}
	for i := 0; i < out.rows; i++ {
		out.data[i*out.cols+i] = 1
	}
	for step := 0; step < k; step++ {
		if out, err = out.Mul(adj); err != nil {
			return nil, fmt.Errorf("WalkCounts step %d: %w", step, err)
		}
	}

	return out, nil
}
