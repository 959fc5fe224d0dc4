// File: toolkit.go
// Role: Construction capability for the Digraph kind.
package core

import "cmp"

// DigraphToolkit builds graphs of the Digraph kind. It is stateless; the zero
// value is ready to use. Vertex identity is preserved across graphs of this
// kind, so AddVertex returns its argument unchanged.
//
// Duplicate insertion through this toolkit is safe: Digraph.AddVertex is
// idempotent and parallel edges are legal for the kind.
type DigraphToolkit[V cmp.Ordered] struct{}

// NewDigraphToolkit returns a toolkit for Digraph[V].
func NewDigraphToolkit[V cmp.Ordered]() DigraphToolkit[V] {
	return DigraphToolkit[V]{}
}

// NewGraph allocates a new empty Digraph.
func (DigraphToolkit[V]) NewGraph() Graph[V, Edge[V]] {
	return NewDigraph[V]()
}

// AddVertex inserts v into g and returns it. g must originate from NewGraph of
// this toolkit; a foreign kind panics (precondition violation, fail fast).
func (DigraphToolkit[V]) AddVertex(g Graph[V, Edge[V]], v V) V {
	g.(*Digraph[V]).AddVertex(v)

	return v
}

// AddEdge inserts a directed edge from→to into g and returns it. g must
// originate from NewGraph of this toolkit.
func (DigraphToolkit[V]) AddEdge(g Graph[V, Edge[V]], from, to V) Edge[V] {
	return g.(*Digraph[V]).AddEdge(from, to)
}
