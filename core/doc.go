// Package core defines the graph capability contract consumed by every
// algorithm in grava, and one concrete implementation of it.
//
// What:
//
//   - Graph[V, E]: the minimal read contract any directed graph must satisfy —
//     vertex enumeration, per-vertex outgoing edges, and edge endpoints.
//   - Toolkit[V, E]: the construction capability — create a new empty graph of
//     the same concrete kind and populate it. Algorithms that must build a
//     derived graph (e.g. a transpose) do so through a Toolkit, never by
//     assuming a concrete representation.
//   - VertexChooser[V]: a predicate restricting which vertices an algorithm
//     may consider; vertices it rejects are treated as absent.
//   - Digraph[V]: an adjacency-list directed graph with deterministic,
//     lexicographically sorted vertex enumeration, plus DigraphToolkit, its
//     construction capability.
//
// Why:
//
//	Traversal algorithms should not care how a graph is stored. Expressing the
//	requirements as two small interfaces (read + construct) keeps algorithms
//	generic over any caller-supplied representation while preserving static
//	type checking of the vertex and edge types.
//
// Concurrency:
//
//	Digraph guards its maps with a sync.RWMutex, so concurrent readers are
//	safe. Algorithms in this module treat any Graph as immutable for the
//	duration of a call; mutating a graph mid-traversal is a caller error.
//
// Complexity:
//
//   - AddVertex / AddEdge / HasVertex: O(1) amortized
//   - Vertices: O(V log V) (sorted copy)
//   - OutEdges: O(deg(v)) (copied slice)
package core
