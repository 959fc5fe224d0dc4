// Package scc finds strongly connected components with Kosaraju's two-pass
// depth-first-search algorithm (Cormen et al., Introduction to Algorithms).
package scc

import (
	"fmt"
	"iter"

	"github.com/velmarr/grava/core"
	"github.com/velmarr/grava/dfs"
)

// Finder computes the strongly connected components of one graph and stores
// them for later reading. Use a fresh Finder per graph: repeated calls to
// FindStronglyConnectedComponents accumulate components rather than reset.
//
// Reading components before any run yields empty results, not an error.
type Finder[V comparable, E any] struct {
	chooser core.VertexChooser[V]
	forests []dfs.Tree[V] // one translated tree per component, in discovery order
}

// NewFinder creates a Finder with no vertex restriction.
func NewFinder[V comparable, E any]() *Finder[V, E] {
	return &Finder[V, E]{}
}

// SetVertexChooser restricts which vertices participate. Must be set before
// FindStronglyConnectedComponents; it applies identically to both search
// passes, and excluded vertices appear in no component.
func (f *Finder[V, E]) SetVertexChooser(ch core.VertexChooser[V]) {
	f.chooser = ch
}

// FindStronglyConnectedComponents runs Kosaraju's algorithm on g, building the
// transpose through tk:
//
//  1. DFS over g (chooser applied), recording finish times.
//  2. Transpose g into a fresh same-kind graph.
//  3. Order the transposed vertices by descending first-pass finish time.
//  4. DFS over the transpose with that explicit root order (chooser
//     re-applied through the vertex correspondence).
//  5. Each second-pass tree is exactly one strongly connected component;
//     translate it back to source-graph vertices and store it.
//
// Complexity: O(V + E) per pass plus O(V log V) for the ordering.
func (f *Finder[V, E]) FindStronglyConnectedComponents(g core.Graph[V, E], tk core.Toolkit[V, E]) error {
	if g == nil {
		return ErrGraphNil
	}
	if tk == nil {
		return ErrToolkitNil
	}

	// 1. Initial pass: root order is irrelevant here, only finish times matter.
	var firstOpts []dfs.Option[V]
	if f.chooser != nil {
		firstOpts = append(firstOpts, dfs.WithVertexChooser(f.chooser))
	}
	first, err := dfs.Search(g, firstOpts...)
	if err != nil {
		return fmt.Errorf("scc: initial search: %w", err)
	}

	// 2. Transpose through the toolkit.
	tr, err := Transpose(g, tk)
	if err != nil {
		return err
	}

	// 3. Re-key the first-pass finish table onto transposed vertices via the
	//    correspondence, then order descending. Vertices never visited in the
	//    first pass drop out here.
	tverts := tr.Graph().Vertices()
	table := make(map[V]int, len(first.FinishTime))
	for _, tv := range tverts {
		if orig, ok := tr.OriginalVertex(tv); ok {
			if ft, visited := first.FinishTime[orig]; visited {
				table[tv] = ft
			}
		}
	}
	order := OrderByVisitationTime(tverts, table, Descending)

	// 4. Second pass, roots chosen by descending finish time.
	secondOpts := []dfs.Option[V]{dfs.WithOrder(order)}
	if f.chooser != nil {
		chooser := f.chooser
		secondOpts = append(secondOpts, dfs.WithVertexChooser[V](func(tv V) bool {
			orig, ok := tr.OriginalVertex(tv)

			return ok && chooser(orig)
		}))
	}
	second, err := dfs.Search(tr.Graph(), secondOpts...)
	if err != nil {
		return fmt.Errorf("scc: transpose search: %w", err)
	}

	// 5. Each root tree is one component; express it in source-graph vertices.
	translated := translateForest(second.Forest, tr)
	f.forests = append(f.forests, translated.Roots()...)

	return nil
}

// translateForest copies src, mapping every vertex from transposed identity
// back to the source graph through tr. Tree shape is preserved; membership is
// the semantically meaningful part. The copy walks with an explicit stack.
func translateForest[V comparable, E any](src *dfs.Forest[V], tr *Transposed[V, E]) *dfs.Forest[V] {
	dst := dfs.NewForest[V](src.Size())

	type pair struct {
		src dfs.Tree[V]
		dst dfs.Tree[V]
	}
	stack := make([]pair, 0, src.Len())
	for _, root := range src.Roots() {
		stack = append(stack, pair{src: root, dst: dst.AddRoot(originalOf(tr, root.Vertex()))})
	}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		// Children attach in discovery order; stack pop order does not matter
		// because attachment happens inside this loop, not on pop.
		for _, child := range p.src.Children() {
			stack = append(stack, pair{
				src: child,
				dst: p.dst.AddChild(originalOf(tr, child.Vertex())),
			})
		}
	}

	return dst
}

// originalOf resolves a transposed vertex to its source-graph identity. Every
// vertex of the transpose came from the correspondence, so a miss means the
// toolkit produced a graph inconsistent with it; fail fast.
func originalOf[V comparable, E any](tr *Transposed[V, E], tv V) V {
	orig, ok := tr.OriginalVertex(tv)
	if !ok {
		panic(fmt.Sprintf("scc: transposed vertex %v has no original", tv))
	}

	return orig
}

// ComponentCount returns the number of components found so far.
func (f *Finder[V, E]) ComponentCount() int { return len(f.forests) }

// ComponentForests returns one search tree per strongly connected component,
// expressed in source-graph vertices, in the order components were discovered.
// The slice is a copy; the trees share the stored arena.
func (f *Finder[V, E]) ComponentForests() []dfs.Tree[V] {
	out := make([]dfs.Tree[V], len(f.forests))
	copy(out, f.forests)

	return out
}

// ComponentSets returns a lazy sequence of component vertex sets. Each element
// is materialized on demand by flattening one stored tree, and each call to
// range the sequence restarts from the first component; nothing re-runs the
// algorithm.
func (f *Finder[V, E]) ComponentSets() iter.Seq[[]V] {
	return func(yield func([]V) bool) {
		for _, tree := range f.forests {
			if !yield(tree.Vertices()) {
				return
			}
		}
	}
}
