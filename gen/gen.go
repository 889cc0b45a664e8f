// SPDX-License-Identifier: MIT

package gen

import (
	"fmt"

	"github.com/katalvlaran/motif/core"
)

// RandomGraph samples an Erdős–Rényi-style labeled digraph: n vertices
// with labels uniform over [0, labels), and each ordered pair (i,j) with
// i≠j becoming an arc independently with probability p.
//
// Trial order is fixed (i asc, then j asc), so a fixed seed reproduces
// the graph exactly.
func RandomGraph(n int, p float64, labels int, opts ...Option) (*core.Graph, error) {
	// 1. Validate parameters early; zero side effects on invalid input.
	if n < minVertices {
		return nil, fmt.Errorf("RandomGraph: n=%d < %d: %w", n, minVertices, ErrTooFewVertices)
	}
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("RandomGraph: p=%.6f: %w", p, ErrInvalidProbability)
	}
	if labels < minLabels {
		return nil, fmt.Errorf("RandomGraph: labels=%d < %d: %w", labels, minLabels, ErrTooFewLabels)
	}

	cfg := gatherOptions(opts)
	if cfg.rng == nil {
		return nil, fmt.Errorf("RandomGraph: %w", ErrNeedRandSource)
	}

	// 2. Add vertices in ascending index order with uniform labels.
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		g.AddVertex(core.Label(cfg.rng.Intn(labels)))
	}

	// 3. Bernoulli trial per ordered pair, stable order, loops skipped.
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if cfg.rng.Float64() < p {
				if err := g.AddEdge(i, j); err != nil {
					return nil, fmt.Errorf("RandomGraph: AddEdge(%d,%d): %w", i, j, err)
				}
			}
		}
	}

	return g, nil
}

// ExtractQuery grows a connected induced subpattern of g with size
// vertices, starting from a random vertex and walking random out-edges,
// then copies the induced arcs and labels into a fresh query graph.
// Query vertex ids follow discovery order.
//
// The walk restarts from a random already-selected vertex whenever the
// current one has no unvisited successor; if no selected vertex does, it
// fails with ErrWalkExhausted (g too sparse for the requested size).
func ExtractQuery(g *core.Graph, size int, opts ...Option) (*core.Graph, error) {
	// 1. Validate request against the data graph.
	if size < minVertices {
		return nil, fmt.Errorf("ExtractQuery: size=%d < %d: %w", size, minVertices, ErrTooFewVertices)
	}
	if g == nil || size > g.Order() {
		return nil, fmt.Errorf("ExtractQuery: size=%d: %w", size, ErrQueryTooLarge)
	}

	cfg := gatherOptions(opts)
	if cfg.rng == nil {
		return nil, fmt.Errorf("ExtractQuery: %w", ErrNeedRandSource)
	}

	// 2. Random-walk selection of `size` distinct vertices.
	selected := make([]int, 0, size)
	index := make(map[int]int, size) // data id -> query id (discovery order)

	cur := cfg.rng.Intn(g.Order())
	selected = append(selected, cur)
	index[cur] = 0

	for len(selected) < size {
		next, ok := unvisitedSuccessor(g, cur, index, cfg)
		if !ok {
			// Restart from a randomly chosen selected vertex that still
			// has an unvisited successor.
			next, ok = restart(g, selected, index, cfg)
			if !ok {
				return nil, fmt.Errorf("ExtractQuery: %d of %d vertices: %w",
					len(selected), size, ErrWalkExhausted)
			}
		}
		index[next] = len(selected)
		selected = append(selected, next)
		cur = next
	}

	// 3. Materialize the induced subpattern, labels preserved.
	q := core.NewGraph()
	for _, v := range selected {
		lbl, _ := g.Label(v)
		q.AddVertex(lbl)
	}
	for _, u := range selected {
		succ, _ := g.Successors(u)
		it := succ.Iterator()
		for it.HasNext() {
			v := int(it.Next())
			if _, ok := index[v]; ok {
				if err := q.AddEdge(index[u], index[v]); err != nil {
					return nil, fmt.Errorf("ExtractQuery: AddEdge: %w", err)
				}
			}
		}
	}

	return q, nil
}

// unvisitedSuccessor draws a uniform unvisited successor of cur, if any.
func unvisitedSuccessor(g *core.Graph, cur int, index map[int]int, cfg genConfig) (int, bool) {
	succ, _ := g.Successors(cur)

	var fresh []int
	it := succ.Iterator()
	for it.HasNext() {
		v := int(it.Next())
		if _, seen := index[v]; !seen {
			fresh = append(fresh, v)
		}
	}
	if len(fresh) == 0 {
		return 0, false
	}

	return fresh[cfg.rng.Intn(len(fresh))], true
}

// restart picks, uniformly among selected vertices that still have an
// unvisited successor, a continuation point and draws from it.
func restart(g *core.Graph, selected []int, index map[int]int, cfg genConfig) (int, bool) {
	var open []int
	for _, u := range selected {
		if _, ok := unvisitedSuccessor(g, u, index, cfg); ok {
			open = append(open, u)
		}
	}
	if len(open) == 0 {
		return 0, false
	}

	return unvisitedSuccessor(g, open[cfg.rng.Intn(len(open))], index, cfg)
}
