// Package core types shared by the concrete Digraph implementation.
package core

// Edge is the edge representation used by Digraph: a directed (From, To) pair
// with an optional opaque label. The label is carried, never interpreted, by
// the algorithms in this module.
type Edge[V comparable] struct {
	// From is the source vertex.
	From V

	// To is the target vertex.
	To V

	// Label stores arbitrary caller data attached to the edge.
	Label any
}

// EdgeOption configures properties of an individual edge when added.
type EdgeOption func(labeled *any)

// WithEdgeLabel attaches an opaque label to the edge being added.
func WithEdgeLabel(label any) EdgeOption {
	return func(l *any) { *l = label }
}
