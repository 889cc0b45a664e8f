package match_test

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"testing"

	"github.com/katalvlaran/motif/core"
	"github.com/katalvlaran/motif/match"
)

// diamondScenario builds the reference pair: a data graph of four
// same-label vertices forming an undirected 4-cycle with one diagonal
// (0-1, 1-2, 2-3, 3-0, 0-2), and a same-label undirected triangle query.
func diamondScenario() (q, g *core.Graph) {
	g = core.NewGraph()
	for i := 0; i < 4; i++ {
		g.AddVertex(7)
	}
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}} {
		_ = g.AddBoth(e[0], e[1])
	}

	q = core.NewGraph()
	for i := 0; i < 3; i++ {
		q.AddVertex(7)
	}
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 0}} {
		_ = q.AddBoth(e[0], e[1])
	}

	return q, g
}

// bruteForce enumerates every injective, label- and edge-preserving
// assignment by exhaustive search. It is the independent ground truth
// the matcher is compared against.
func bruteForce(q, g *core.Graph) [][]int {
	psi := make([]int, q.Order())
	used := make([]bool, g.Order())
	var out [][]int

	var rec func(u int)
	rec = func(u int) {
		if u == q.Order() {
			out = append(out, append([]int(nil), psi...))

			return
		}
		ql, _ := q.Label(u)
		for v := 0; v < g.Order(); v++ {
			if used[v] {
				continue
			}
			if gl, _ := g.Label(v); gl != ql {
				continue
			}
			ok := true
			for w := 0; w < u && ok; w++ {
				if q.HasEdge(u, w) && !g.HasEdge(v, psi[w]) {
					ok = false
				}
				if q.HasEdge(w, u) && !g.HasEdge(psi[w], v) {
					ok = false
				}
			}
			if !ok {
				continue
			}
			psi[u], used[v] = v, true
			rec(u + 1)
			used[v] = false
		}
	}
	rec(0)

	return out
}

// asSortedKeys renders a bijection set order-independently for comparison.
func asSortedKeys(set [][]int) []string {
	keys := make([]string, len(set))
	for i, psi := range set {
		keys[i] = fmt.Sprint(psi)
	}
	sort.Strings(keys)

	return keys
}

func mustMatcher(t *testing.T, q, g *core.Graph, opts ...match.Option) *match.Matcher {
	t.Helper()
	m, err := match.NewMatcher(q, g, opts...)
	if err != nil {
		t.Fatalf("NewMatcher: %v", err)
	}

	return m
}

// TestNewMatcher_Errors verifies graph and option validation.
func TestNewMatcher_Errors(t *testing.T) {
	g := core.NewGraph()
	if _, err := match.NewMatcher(nil, g); !errors.Is(err, match.ErrGraphNil) {
		t.Errorf("nil query: want ErrGraphNil, got %v", err)
	}
	if _, err := match.NewMatcher(g, nil); !errors.Is(err, match.ErrGraphNil) {
		t.Errorf("nil data: want ErrGraphNil, got %v", err)
	}
	if _, err := match.NewMatcher(g, g, match.WithLimit(0)); !errors.Is(err, match.ErrOptionViolation) {
		t.Errorf("limit 0: want ErrOptionViolation, got %v", err)
	}
	if _, err := match.NewMatcher(g, g, match.WithCheckEvery(-1)); !errors.Is(err, match.ErrOptionViolation) {
		t.Errorf("negative interval: want ErrOptionViolation, got %v", err)
	}
}

// TestDiamondScenario_MatchesBruteForce checks the reference scenario
// against exhaustive enumeration instead of a hardcoded count, then
// verifies every returned embedding preserves labels and edges.
func TestDiamondScenario_MatchesBruteForce(t *testing.T) {
	q, g := diamondScenario()
	got := mustMatcher(t, q, g).Bijections()
	want := bruteForce(q, g)

	if len(want) == 0 {
		t.Fatal("brute force found no triangle embeddings; scenario is broken")
	}
	if !reflect.DeepEqual(asSortedKeys(got), asSortedKeys(want)) {
		t.Fatalf("bijection sets differ:\n got  %v\n want %v", asSortedKeys(got), asSortedKeys(want))
	}

	for _, psi := range got {
		for u := 0; u < q.Order(); u++ {
			ql, _ := q.Label(u)
			gl, _ := g.Label(psi[u])
			if ql != gl {
				t.Errorf("ψ=%v: label mismatch at query vertex %d", psi, u)
			}
			for w := 0; w < q.Order(); w++ {
				if q.HasEdge(u, w) && !g.HasEdge(psi[u], psi[w]) {
					t.Errorf("ψ=%v: query arc (%d,%d) not preserved", psi, u, w)
				}
			}
		}
	}
}

// TestInjectivity asserts entries of every bijection are pairwise distinct.
func TestInjectivity(t *testing.T) {
	q, g := diamondScenario()
	for _, psi := range mustMatcher(t, q, g).Bijections() {
		seen := make(map[int]bool, len(psi))
		for _, v := range psi {
			if seen[v] {
				t.Fatalf("ψ=%v assigns data vertex %d twice", psi, v)
			}
			seen[v] = true
		}
	}
}

// TestCaching verifies the memoization contract: the second Bijections
// call returns the identical set and performs no new search work.
func TestCaching(t *testing.T) {
	q, g := diamondScenario()
	var observations int
	m := mustMatcher(t, q, g,
		match.WithCheckEvery(1),
		match.WithOnProgress(func(int) { observations++ }),
	)

	first := m.Bijections()
	afterFirst := observations
	if afterFirst != len(first) {
		t.Fatalf("observations = %d; want one per match (%d)", afterFirst, len(first))
	}

	second := m.Bijections()
	if observations != afterFirst {
		t.Errorf("second call performed new search work (%d extra observations)", observations-afterFirst)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("cached sets differ by value")
	}
}

// TestMappings_ConsistentWithBijections checks that the merged view is
// exactly the per-vertex union of the bijection set.
func TestMappings_ConsistentWithBijections(t *testing.T) {
	q, g := diamondScenario()
	m := mustMatcher(t, q, g)

	bij := m.Bijections()
	merged := m.Mappings()
	if len(merged) != q.Order() {
		t.Fatalf("Mappings length = %d; want %d", len(merged), q.Order())
	}

	for u := 0; u < q.Order(); u++ {
		want := make(map[uint32]bool)
		for _, psi := range bij {
			want[uint32(psi[u])] = true
		}
		got := merged[u].ToArray()
		if len(got) != len(want) {
			t.Fatalf("Mappings()[%d] = %v; want the %d distinct assignments", u, got, len(want))
		}
		for _, v := range got {
			if !want[v] {
				t.Errorf("Mappings()[%d] contains %d, absent from every bijection", u, v)
			}
		}
	}
}

// TestEmptyQuery: a zero-vertex query has exactly one, empty, embedding.
func TestEmptyQuery(t *testing.T) {
	_, g := diamondScenario()
	got := mustMatcher(t, core.NewGraph(), g).Bijections()
	if len(got) != 1 || len(got[0]) != 0 {
		t.Errorf("Bijections = %v; want exactly one empty bijection", got)
	}
}

// TestNoEmbedding: a query whose degree sequence exceeds the data graph's
// yields an empty set, with no error.
func TestNoEmbedding(t *testing.T) {
	// Data: directed path 0→1→2, all label 0 (max out-degree 1).
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		g.AddVertex(0)
	}
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)

	// Query: a star with out-degree 3.
	q := core.NewGraph()
	c := q.AddVertex(0)
	for i := 0; i < 3; i++ {
		leaf := q.AddVertex(0)
		_ = q.AddEdge(c, leaf)
	}

	m := mustMatcher(t, q, g)
	if got := m.Bijections(); len(got) != 0 {
		t.Errorf("Bijections = %v; want empty set", got)
	}
	if m.Result().Truncated {
		t.Error("natural exhaustion reported as truncated")
	}
}

// TestLimit verifies the cap and the Truncated indicator.
func TestLimit(t *testing.T) {
	q, g := diamondScenario()

	total := len(mustMatcher(t, q, g).Bijections())
	if total < 2 {
		t.Fatalf("scenario yields %d embeddings; need at least 2 for a limit test", total)
	}

	capped := mustMatcher(t, q, g, match.WithLimit(1))
	if got := capped.Bijections(); len(got) > 1 {
		t.Errorf("limit 1 returned %d bijections", len(got))
	}
	if !capped.Result().Truncated {
		t.Error("limit hit not reported as truncated")
	}

	uncapped := mustMatcher(t, q, g, match.WithLimit(total))
	if uncapped.Result().Truncated {
		t.Error("exact-fit limit reported as truncated despite natural exhaustion")
	}
}

// TestDirectedTriangle exercises the direction convention: a directed
// triangle query must only embed along consistently oriented data cycles.
func TestDirectedTriangle(t *testing.T) {
	// Data: directed 4-cycle 0→1→2→3→0 plus the chord 0→2, one label.
	g := core.NewGraph()
	for i := 0; i < 4; i++ {
		g.AddVertex(1)
	}
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}} {
		_ = g.AddEdge(e[0], e[1])
	}

	// Query: directed triangle a→b→c→a.
	q := core.NewGraph()
	for i := 0; i < 3; i++ {
		q.AddVertex(1)
	}
	_ = q.AddEdge(0, 1)
	_ = q.AddEdge(1, 2)
	_ = q.AddEdge(2, 0)

	got := mustMatcher(t, q, g).Bijections()
	want := bruteForce(q, g)
	if !reflect.DeepEqual(asSortedKeys(got), asSortedKeys(want)) {
		t.Fatalf("bijection sets differ:\n got  %v\n want %v", asSortedKeys(got), asSortedKeys(want))
	}
	// The only directed triangle runs through the chord: 0→2→3→0.
	if len(got) != 3 {
		t.Errorf("found %d embeddings; want the 3 rotations of the chord triangle", len(got))
	}
}

// TestSearchOrder verifies descending out-degree with stable index ties.
func TestSearchOrder(t *testing.T) {
	q := core.NewGraph()
	for i := 0; i < 4; i++ {
		q.AddVertex(0)
	}
	// degrees: v0=1, v1=2, v2=0, v3=2
	_ = q.AddEdge(0, 1)
	_ = q.AddEdge(1, 0)
	_ = q.AddEdge(1, 2)
	_ = q.AddEdge(3, 0)
	_ = q.AddEdge(3, 2)

	m := mustMatcher(t, q, core.NewGraph())
	if got, want := match.SearchOrder(m), []int{1, 3, 0, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v; want %v", got, want)
	}
}
