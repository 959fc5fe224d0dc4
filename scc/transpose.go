// File: transpose.go
// Role: Edge-reversal into a freshly constructed graph of the same kind.
package scc

import (
	"fmt"

	"github.com/velmarr/grava/core"
)

// Transposed owns the reversed graph and the correspondence from its vertices
// back to the source graph's vertices. The correspondence is what lets results
// computed on the transpose be expressed in source-graph terms.
type Transposed[V comparable, E any] struct {
	graph    core.Graph[V, E]
	original map[V]V // transposed vertex → source vertex
}

// Transpose builds a new graph through tk containing every vertex of g and,
// for every edge u→v of g, the edge v'→u' between the corresponding vertices.
// g itself is never mutated.
//
// Complexity: O(V + E) toolkit calls.
func Transpose[V comparable, E any](g core.Graph[V, E], tk core.Toolkit[V, E]) (*Transposed[V, E], error) {
	// 1. Validate inputs.
	if g == nil {
		return nil, ErrGraphNil
	}
	if tk == nil {
		return nil, ErrToolkitNil
	}

	// 2. Create the empty same-kind graph and mirror every vertex, keeping the
	//    correspondence in both directions. Forward lookup drives edge
	//    insertion below; reverse lookup is the exported surface.
	rev := tk.NewGraph()
	verts := g.Vertices()
	forward := make(map[V]V, len(verts))
	backward := make(map[V]V, len(verts))
	for _, v := range verts {
		tv := tk.AddVertex(rev, v)
		forward[v] = tv
		backward[tv] = v
	}

	// 3. Reverse every edge.
	for _, v := range verts {
		for _, e := range g.OutEdges(v) {
			from, to := g.Source(e), g.Target(e)
			tf, okFrom := forward[from]
			tt, okTo := forward[to]
			if !okFrom || !okTo {
				return nil, fmt.Errorf("%w: %v -> %v", ErrDanglingEdge, from, to)
			}
			tk.AddEdge(rev, tt, tf)
		}
	}

	return &Transposed[V, E]{graph: rev, original: backward}, nil
}

// Graph returns the reversed graph.
func (t *Transposed[V, E]) Graph() core.Graph[V, E] { return t.graph }

// OriginalVertex returns the source-graph vertex corresponding to v in the
// transposed graph, and whether v is known to this transposition.
func (t *Transposed[V, E]) OriginalVertex(v V) (V, bool) {
	orig, ok := t.original[v]

	return orig, ok
}
