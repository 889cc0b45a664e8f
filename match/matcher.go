package match

import (
	"fmt"
	"sort"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/motif/core"
	"github.com/katalvlaran/motif/dualsim"
)

// Matcher binds a query graph to a data graph and enumerates embeddings.
// The zero value is unusable; construct with NewMatcher.
type Matcher struct {
	query *core.Graph
	data  *core.Graph
	opts  MatchOptions

	// cached holds the search result once computed; nil means the search
	// has not run yet. Presence of the value is the memoization state,
	// there is no separate flag to fall out of sync.
	cached *Result
}

// Result is the outcome of one search invocation.
type Result struct {
	// Bijections holds every discovered embedding, each a slice indexed
	// by query vertex whose entries are pairwise-distinct data vertices.
	Bijections [][]int

	// Truncated reports whether the search aborted at the limit, in which
	// case Bijections is a partial, under-counted set.
	Truncated bool
}

// NewMatcher validates inputs and options and returns a ready Matcher.
// The graphs must not be mutated afterwards.
func NewMatcher(q, g *core.Graph, opts ...Option) (*Matcher, error) {
	// 1. Validate graphs.
	if q == nil || g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options over defaults.
	mopts := DefaultOptions()
	for _, fn := range opts {
		fn(&mopts)
	}

	// 3. Validate the resulting configuration.
	if mopts.Limit < 1 {
		return nil, fmt.Errorf("limit %d < 1: %w", mopts.Limit, ErrOptionViolation)
	}
	if mopts.CheckEvery < 1 {
		return nil, fmt.Errorf("check interval %d < 1: %w", mopts.CheckEvery, ErrOptionViolation)
	}

	return &Matcher{query: q, data: g, opts: mopts}, nil
}

// Result runs the search on first call and returns the cached outcome on
// every call thereafter. Callers must treat the result as read-only.
func (m *Matcher) Result() *Result {
	if m.cached == nil {
		m.cached = m.search()
	}

	return m.cached
}

// Bijections returns every embedding ψ of the query into the data graph:
// ψ[u] is the data vertex assigned to query vertex u, entries are
// pairwise distinct, labels agree, and every query arc (u,u′) maps onto
// the data arc (ψ[u],ψ[u′]). The search runs exactly once; repeated
// calls return the identical cached set.
func (m *Matcher) Bijections() [][]int {
	return m.Result().Bijections
}

// Mappings returns the merged multi-valued view: entry u is the union,
// over every cached bijection ψ, of ψ[u]. Derived from the cached set;
// triggers the search if it has not run yet.
func (m *Matcher) Mappings() []*roaring.Bitmap {
	res := m.Result()

	merged := make([]*roaring.Bitmap, m.query.Order())
	for u := range merged {
		merged[u] = roaring.New()
	}
	for _, psi := range res.Bijections {
		for u, v := range psi {
			merged[u].Add(uint32(v))
		}
	}

	return merged
}

// searchOrder returns the static assignment order: query vertices by
// descending out-degree, ties broken by ascending vertex id. Assigning
// the most-constrained vertices first maximizes early pruning.
func (m *Matcher) searchOrder() []int {
	order := make([]int, m.query.Order())
	for u := range order {
		order[u] = u
	}
	sort.SliceStable(order, func(i, j int) bool {
		return m.query.OutDegree(order[i]) > m.query.OutDegree(order[j])
	})

	return order
}

// search runs one full backtracking enumeration and returns its result.
func (m *Matcher) search() *Result {
	res := &Result{}
	w := &walker{
		query: m.query,
		data:  m.data,
		opts:  &m.opts,
		order: m.searchOrder(),
		res:   res,
	}

	// Seed with label-feasible mates refined to the structural fixpoint.
	phi := dualsim.Refine(m.query, m.data, dualsim.FeasibleMates(m.query, m.data))
	w.explore(0, phi)

	return res
}

// walker carries the immutable search inputs and the accumulator through
// the recursion; one walker exists per search invocation.
type walker struct {
	query *core.Graph
	data  *core.Graph
	opts  *MatchOptions
	order []int
	res   *Result
}

// explore assigns the query vertex at position depth of the order and
// recurses over its surviving candidates. It returns false once the
// limit abort has triggered, unwinding the whole recursion immediately.
func (w *walker) explore(depth int, phi dualsim.Candidates) bool {
	// Terminal: every query vertex has been assigned. Entries are now
	// singletons by construction unless refinement emptied one, so a
	// feasibility check is all that separates a bijection from a dead end.
	if depth == len(w.order) {
		if phi.Feasible() {
			w.res.Bijections = append(w.res.Bijections, project(phi))
			if n := len(w.res.Bijections); w.opts.OnProgress != nil && n%w.opts.CheckEvery == 0 {
				w.opts.OnProgress(n)
			}
		}

		return true
	}

	u := w.order[depth]

	// An empty candidate set makes this loop vacuous: the branch dies
	// silently, exactly as intended.
	it := phi[u].Iterator()
	for it.HasNext() {
		v := it.Next()

		// Injectivity guard: skip data vertices already claimed by an
		// ancestor assignment. O(depth) per candidate.
		if w.taken(phi, depth, v) {
			continue
		}

		// Limit abort, checked per candidate so the cut happens mid-loop.
		if len(w.res.Bijections) >= w.opts.Limit {
			w.res.Truncated = true

			return false
		}

		// Isolate the tentative choice in a fresh deep copy, re-refine,
		// and descend. phi itself is never narrowed, so sibling branches
		// stay independent.
		next := dualsim.Refine(w.query, w.data, phi.CloneWith(u, v))
		if !w.explore(depth+1, next) {
			return false
		}
	}

	return true
}

// taken reports whether data vertex v is already the singleton
// assignment of a query vertex at an earlier order position.
func (w *walker) taken(phi dualsim.Candidates, depth int, v uint32) bool {
	for k := 0; k < depth; k++ {
		if phi[w.order[k]].Contains(v) {
			return true
		}
	}

	return false
}

// project collapses an all-singleton mapping to a plain bijection array.
// Callers must have checked feasibility first.
func project(phi dualsim.Candidates) []int {
	psi := make([]int, len(phi))
	for u, set := range phi {
		psi[u] = int(set.Minimum())
	}

	return psi
}
