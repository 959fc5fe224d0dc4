package scc_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velmarr/grava/core"
	"github.com/velmarr/grava/scc"
)

// newFinder instantiates a Finder for the string digraph kind.
func newFinder() *scc.Finder[string, core.Edge[string]] {
	return scc.NewFinder[string, core.Edge[string]]()
}

var toolkit = core.NewDigraphToolkit[string]()

// normalizedSets collects the finder's component sets in canonical form:
// each set sorted, sets ordered by their first vertex. Tree shape and
// discovery order are legitimately run-dependent; membership is not.
func normalizedSets(f *scc.Finder[string, core.Edge[string]]) [][]string {
	var sets [][]string
	for set := range f.ComponentSets() {
		sorted := append([]string(nil), set...)
		sort.Strings(sorted)
		sets = append(sets, sorted)
	}
	sort.Slice(sets, func(i, j int) bool { return sets[i][0] < sets[j][0] })

	return sets
}

func find(t *testing.T, g *core.Digraph[string]) *scc.Finder[string, core.Edge[string]] {
	t.Helper()
	f := newFinder()
	require.NoError(t, f.FindStronglyConnectedComponents(g, toolkit))

	return f
}

func TestFinder_NilInputs(t *testing.T) {
	f := newFinder()
	assert.ErrorIs(t, f.FindStronglyConnectedComponents(nil, toolkit), scc.ErrGraphNil)
	assert.ErrorIs(t, f.FindStronglyConnectedComponents(core.NewDigraph[string](), nil), scc.ErrToolkitNil)
}

func TestFinder_ReadBeforeRun_Empty(t *testing.T) {
	f := newFinder()
	assert.Zero(t, f.ComponentCount())
	assert.Empty(t, f.ComponentForests())
	for range f.ComponentSets() {
		t.Fatal("no sets expected before the run")
	}
}

func TestFinder_EmptyGraph_ZeroComponents(t *testing.T) {
	f := find(t, core.NewDigraph[string]())
	assert.Zero(t, f.ComponentCount())
}

func TestFinder_EdgelessGraph_AllSingletons(t *testing.T) {
	g := core.NewDigraph[string]()
	for _, v := range []string{"A", "B", "C"} {
		g.AddVertex(v)
	}

	f := find(t, g)
	assert.Equal(t, [][]string{{"A"}, {"B"}, {"C"}}, normalizedSets(f))
}

func TestFinder_TwoVertexChain_NotMerged(t *testing.T) {
	// B cannot reach A, so no merge.
	g := core.NewDigraph[string]()
	g.AddEdge("A", "B")

	f := find(t, g)
	assert.Equal(t, [][]string{{"A"}, {"B"}}, normalizedSets(f))
}

func TestFinder_CycleWithTail(t *testing.T) {
	// A→B→C→A plus C→D: {A,B,C} and {D}.
	g := core.NewDigraph[string]()
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	g.AddEdge("C", "A")
	g.AddEdge("C", "D")

	f := find(t, g)
	assert.Equal(t, [][]string{{"A", "B", "C"}, {"D"}}, normalizedSets(f))
}

func TestFinder_FullCycle_OneComponent(t *testing.T) {
	const n = 7
	g := core.NewDigraph[string]()
	want := make([]string, n)
	for i := 0; i < n; i++ {
		want[i] = fmt.Sprintf("V%d", i)
		g.AddEdge(fmt.Sprintf("V%d", i), fmt.Sprintf("V%d", (i+1)%n))
	}
	sort.Strings(want)

	f := find(t, g)
	require.Equal(t, 1, f.ComponentCount())
	assert.Equal(t, [][]string{want}, normalizedSets(f))
}

func TestFinder_DAG_AllSingletons(t *testing.T) {
	// Diamond: A→B, A→C, B→D, C→D.
	g := core.NewDigraph[string]()
	g.AddEdge("A", "B")
	g.AddEdge("A", "C")
	g.AddEdge("B", "D")
	g.AddEdge("C", "D")

	f := find(t, g)
	assert.Equal(t, [][]string{{"A"}, {"B"}, {"C"}, {"D"}}, normalizedSets(f))
}

func TestFinder_SelfLoop_StaysSingleton(t *testing.T) {
	g := core.NewDigraph[string]()
	g.AddEdge("A", "A")
	g.AddEdge("A", "B")

	f := find(t, g)
	assert.Equal(t, [][]string{{"A"}, {"B"}}, normalizedSets(f))
}

func TestFinder_TwoCycles_Bridged(t *testing.T) {
	// {A,B} and {C,D} cycles joined by B→C: two components, not one.
	g := core.NewDigraph[string]()
	g.AddEdge("A", "B")
	g.AddEdge("B", "A")
	g.AddEdge("C", "D")
	g.AddEdge("D", "C")
	g.AddEdge("B", "C")

	f := find(t, g)
	assert.Equal(t, [][]string{{"A", "B"}, {"C", "D"}}, normalizedSets(f))
}

func TestFinder_PartitionProperty(t *testing.T) {
	// Mixed graph: a cycle, a tail, a disconnected pair, an isolated vertex.
	g := core.NewDigraph[string]()
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	g.AddEdge("C", "A")
	g.AddEdge("C", "D")
	g.AddEdge("E", "F")
	g.AddVertex("G")

	f := find(t, g)

	counts := make(map[string]int)
	for set := range f.ComponentSets() {
		for _, v := range set {
			counts[v]++
		}
	}
	assert.Len(t, counts, g.VertexCount())
	for v, n := range counts {
		assert.Equal(t, 1, n, "vertex %s must appear in exactly one component", v)
	}
}

func TestFinder_VertexChooser_ExcludedFromAllComponents(t *testing.T) {
	// Cycle A→B→C→A restricted to {A, B}: the cycle breaks, two singletons.
	g := core.NewDigraph[string]()
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	g.AddEdge("C", "A")

	f := newFinder()
	f.SetVertexChooser(func(v string) bool { return v != "C" })
	require.NoError(t, f.FindStronglyConnectedComponents(g, toolkit))

	assert.Equal(t, [][]string{{"A"}, {"B"}}, normalizedSets(f))
}

func TestFinder_Chooser_EquivalentToInducedSubgraph(t *testing.T) {
	// Restricting by chooser must match materializing the induced subgraph.
	edges := [][2]string{
		{"A", "B"}, {"B", "A"}, {"B", "C"}, {"C", "D"}, {"D", "B"}, {"D", "E"},
	}
	subset := map[string]bool{"A": true, "B": true, "C": true, "D": true}

	full := core.NewDigraph[string]()
	induced := core.NewDigraph[string]()
	for _, e := range edges {
		full.AddEdge(e[0], e[1])
		if subset[e[0]] && subset[e[1]] {
			induced.AddEdge(e[0], e[1])
		}
	}
	full.AddVertex("E")
	for v := range subset {
		induced.AddVertex(v)
	}

	restricted := newFinder()
	restricted.SetVertexChooser(func(v string) bool { return subset[v] })
	require.NoError(t, restricted.FindStronglyConnectedComponents(full, toolkit))

	plain := find(t, induced)

	assert.Equal(t, normalizedSets(plain), normalizedSets(restricted))
}

func TestFinder_Idempotence_FreshInstances(t *testing.T) {
	g := core.NewDigraph[string]()
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	g.AddEdge("C", "A")
	g.AddEdge("C", "D")

	first := find(t, g)
	second := find(t, g)
	assert.Equal(t, normalizedSets(first), normalizedSets(second))
}

func TestFinder_SecondRunAccumulates(t *testing.T) {
	g := core.NewDigraph[string]()
	g.AddVertex("A")

	f := find(t, g)
	require.Equal(t, 1, f.ComponentCount())

	require.NoError(t, f.FindStronglyConnectedComponents(g, toolkit))
	assert.Equal(t, 2, f.ComponentCount(), "results accumulate; use a fresh Finder per graph")
}

func TestFinder_ComponentForests_SourceGraphVertices(t *testing.T) {
	g := core.NewDigraph[string]()
	g.AddEdge("A", "B")
	g.AddEdge("B", "A")

	f := find(t, g)
	forests := f.ComponentForests()
	require.Len(t, forests, 1)

	// The tree is expressed in source-graph vertices and holds the whole
	// component: a root with one child.
	assert.ElementsMatch(t, []string{"A", "B"}, forests[0].Vertices())
	assert.Equal(t, 2, forests[0].Size())
	assert.Len(t, forests[0].Children(), 1)
}

func TestFinder_ComponentSets_Restartable(t *testing.T) {
	g := core.NewDigraph[string]()
	g.AddVertex("A")
	g.AddVertex("B")

	f := find(t, g)

	firstPass := 0
	for range f.ComponentSets() {
		firstPass++
	}
	secondPass := 0
	for range f.ComponentSets() {
		secondPass++
	}
	assert.Equal(t, 2, firstPass)
	assert.Equal(t, 2, secondPass, "each range restarts from the first component")
}

func TestFinder_ComponentSets_EarlyBreak(t *testing.T) {
	g := core.NewDigraph[string]()
	for _, v := range []string{"A", "B", "C"} {
		g.AddVertex(v)
	}

	f := find(t, g)
	seen := 0
	for range f.ComponentSets() {
		seen++

		break
	}
	assert.Equal(t, 1, seen)
}

func TestFinder_IntegerVertices(t *testing.T) {
	g := core.NewDigraph[int]()
	g.AddEdge(1, 2)
	g.AddEdge(2, 1)
	g.AddEdge(2, 3)

	f := scc.NewFinder[int, core.Edge[int]]()
	require.NoError(t, f.FindStronglyConnectedComponents(g, core.NewDigraphToolkit[int]()))

	var sizes []int
	for set := range f.ComponentSets() {
		sizes = append(sizes, len(set))
	}
	sort.Ints(sizes)
	assert.Equal(t, []int{1, 2}, sizes)
}
