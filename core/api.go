// File: api.go
// Role: Capability interfaces satisfied by any concrete graph representation.
//
// The contract is deliberately split in two: Graph covers everything a
// traversal needs to read, Toolkit covers everything a derived-graph
// construction needs to write. A type implementing both is common but not
// required; transposition, for example, reads one instance and writes another.
package core

// Graph is the minimal read capability required of a directed graph.
//
// V identifies a vertex; identity is map-key equality, so V must be
// comparable. E is the edge representation, opaque to algorithms except
// through Source and Target.
//
// Enumeration order of Vertices and OutEdges is unspecified by this contract;
// implementations are free to provide deterministic order (Digraph does), and
// callers needing a specific order supply it explicitly to the algorithm.
type Graph[V comparable, E any] interface {
	// Vertices enumerates every vertex in the graph.
	Vertices() []V

	// OutEdges returns the outgoing edges of v. A vertex with no outgoing
	// edges (or absent from the graph) yields an empty result.
	OutEdges(v V) []E

	// Source returns the vertex e leaves from.
	Source(e E) V

	// Target returns the vertex e points at.
	Target(e E) V
}

// Toolkit is the construction capability for one concrete graph kind.
//
// A Toolkit must only be handed graphs obtained from its own NewGraph; passing
// a graph of a foreign kind is a precondition violation and fails fast rather
// than returning an error. Duplicate vertex or edge insertion is likewise a
// documented precondition: the toolkit is either idempotent-safe (as
// DigraphToolkit is) or the caller avoids duplicates.
type Toolkit[V comparable, E any] interface {
	// NewGraph allocates a new empty graph of this toolkit's kind.
	NewGraph() Graph[V, E]

	// AddVertex inserts a vertex corresponding to v into g and returns the
	// vertex as known to g. The returned value is the identity the new graph
	// uses for it, which need not equal v for every kind.
	AddVertex(g Graph[V, E], v V) V

	// AddEdge inserts a directed edge from→to into g and returns it. Both
	// endpoints must already have been added via AddVertex.
	AddEdge(g Graph[V, E], from, to V) E
}

// VertexChooser restricts the vertex set an algorithm considers.
// Returning false makes v invisible: it is neither visited nor traversed
// through. A nil chooser accepts every vertex.
type VertexChooser[V comparable] func(v V) bool
