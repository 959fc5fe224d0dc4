// File: digraph.go
// Role: Adjacency-list directed graph with deterministic enumeration.
//
// Determinism:
//   - Vertices() returns vertices sorted ascending, which is why the vertex
//     type is constrained to cmp.Ordered rather than plain comparable.
//   - OutEdges() returns edges in insertion order per source vertex.
//
// Concurrency:
//   - All state is guarded by a single RWMutex; reads may proceed in parallel.
package core

import (
	"cmp"
	"slices"
	"sync"
)

// Digraph is an in-memory directed graph keyed by ordered vertex values.
// Self-loops and parallel edges are permitted. The zero value is not usable;
// construct with NewDigraph.
type Digraph[V cmp.Ordered] struct {
	mu sync.RWMutex

	// verts is the vertex catalog.
	verts map[V]struct{}

	// adj maps each source vertex to its outgoing edges in insertion order.
	adj map[V][]Edge[V]

	edgeCount int
}

// NewDigraph creates an empty directed graph.
// Complexity: O(1).
func NewDigraph[V cmp.Ordered]() *Digraph[V] {
	return &Digraph[V]{
		verts: make(map[V]struct{}),
		adj:   make(map[V][]Edge[V]),
	}
}

// AddVertex inserts v if missing. Idempotent: re-adding an existing vertex is
// a no-op.
// Complexity: O(1) amortized.
func (g *Digraph[V]) AddVertex(v V) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.verts[v] = struct{}{}
}

// AddEdge inserts a directed edge from→to, creating either endpoint if it is
// not yet present (mirroring the convenience of most adjacency-list builders).
// Parallel edges accumulate; each call stores a distinct edge.
// Complexity: O(1) amortized.
func (g *Digraph[V]) AddEdge(from, to V, opts ...EdgeOption) Edge[V] {
	e := Edge[V]{From: from, To: to}
	for _, opt := range opts {
		opt(&e.Label)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.verts[from] = struct{}{}
	g.verts[to] = struct{}{}
	g.adj[from] = append(g.adj[from], e)
	g.edgeCount++

	return e
}

// HasVertex reports whether v is present.
// Complexity: O(1).
func (g *Digraph[V]) HasVertex(v V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.verts[v]

	return ok
}

// Vertices returns all vertices sorted ascending. The slice is a copy; callers
// may retain or mutate it freely.
// Complexity: O(V log V).
func (g *Digraph[V]) Vertices() []V {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]V, 0, len(g.verts))
	for v := range g.verts {
		out = append(out, v)
	}
	slices.Sort(out)

	return out
}

// OutEdges returns the outgoing edges of v in insertion order. The slice is a
// copy. A missing vertex yields nil.
// Complexity: O(deg(v)).
func (g *Digraph[V]) OutEdges(v V) []Edge[V] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges := g.adj[v]
	if len(edges) == 0 {
		return nil
	}
	out := make([]Edge[V], len(edges))
	copy(out, edges)

	return out
}

// Source returns the vertex e leaves from.
func (g *Digraph[V]) Source(e Edge[V]) V { return e.From }

// Target returns the vertex e points at.
func (g *Digraph[V]) Target(e Edge[V]) V { return e.To }

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Digraph[V]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.verts)
}

// EdgeCount returns the number of edges, counting parallels individually.
// Complexity: O(1).
func (g *Digraph[V]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
