// Package core: Graph type, options, and sentinel errors.
package core

import (
	"errors"

	"github.com/RoaringBitmap/roaring/v2"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex id
	// outside the range [0, Order).
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted on a graph
	// constructed without WithLoops.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Label is the symbolic class attached to a vertex. Matching preserves
// labels exactly: a query vertex may only map onto data vertices with an
// equal Label.
type Label int

// Graph is a vertex-labeled directed graph with dense integer vertex ids.
//
// labels[v] holds the label of vertex v, succ[v] its out-neighborhood.
// byLabel indexes vertices by label and is maintained on AddVertex.
type Graph struct {
	labels  []Label
	succ    []*roaring.Bitmap
	byLabel map[Label]*roaring.Bitmap

	edgeCount  int
	allowLoops bool
}

// GraphOption configures behavior of a Graph at construction.
type GraphOption func(*Graph)

// WithLoops permits self-loops (arcs from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// NewGraph constructs an empty Graph. Apply options before adding
// vertices or edges.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{byLabel: make(map[Label]*roaring.Bitmap)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
