// Package dfs types: visitation states, functional options, sentinel errors,
// and the search result structure.
package dfs

import (
	"errors"

	"github.com/velmarr/grava/core"
)

// Visitation state of a vertex during one search run.
const (
	White = iota // White: not visited yet.
	Gray         // Gray: discovered, descendants still being explored.
	Black        // Black: the vertex and all its descendants are finished.
)

var (
	// ErrGraphNil is returned when a nil graph is passed to Search.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrVertexNotFound indicates an explicitly ordered vertex does not exist
	// in the graph being searched.
	ErrVertexNotFound = errors.New("dfs: ordered vertex not in graph")

	// ErrDanglingEdge indicates an outgoing edge whose target is absent from
	// the graph's own vertex set — a malformed graph, reported fail-fast
	// rather than silently producing a partial traversal.
	ErrDanglingEdge = errors.New("dfs: edge target not in graph")
)

// Option configures optional behavior of Search.
type Option[V comparable] func(*options[V])

// options holds configurable parameters for one search run.
type options[V comparable] struct {
	chooser core.VertexChooser[V] // nil accepts every vertex
	order   []V                   // explicit outer-loop order; nil means natural
}

func defaultOptions[V comparable]() options[V] {
	return options[V]{}
}

// WithVertexChooser restricts the search to vertices ch accepts. A rejected
// vertex is treated as absent for the whole run: it is never chosen as a root
// and never traversed into.
func WithVertexChooser[V comparable](ch core.VertexChooser[V]) Option[V] {
	return func(o *options[V]) {
		o.chooser = ch
	}
}

// WithOrder supplies the explicit sequence of candidate roots for the outer
// loop, replacing the graph's natural enumeration. Every listed vertex must
// exist in the graph (ErrVertexNotFound otherwise). Vertices not listed are
// still reachable through edges, but never become roots.
func WithOrder[V comparable](order []V) Option[V] {
	return func(o *options[V]) {
		o.order = order
	}
}

// Stamp pairs a vertex with a timestamp from the search clock.
type Stamp[V comparable] struct {
	Vertex V
	Time   int
}

// Result captures the outcome of one depth-first search run.
//
// A single monotonic clock stamps both discovery and finish events, so every
// visited vertex satisfies DiscoverTime[v] < FinishTime[v], and all stamps
// across the run are unique.
type Result[V comparable] struct {
	// Forest holds one search tree per root, in root discovery order. The
	// trees partition the visited vertex set.
	Forest *Forest[V]

	// FinishOrder lists (vertex, finish time) pairs in ascending finish time,
	// i.e. the order vertices completed exploration.
	FinishOrder []Stamp[V]

	// DiscoverTime maps each visited vertex to its discovery stamp.
	DiscoverTime map[V]int

	// FinishTime maps each visited vertex to its finish stamp.
	FinishTime map[V]int

	// Parent maps each non-root visited vertex to the vertex that first
	// discovered it. Roots are absent from this map.
	Parent map[V]V
}

// Visited reports whether v was reached during the run.
func (r *Result[V]) Visited(v V) bool {
	_, ok := r.DiscoverTime[v]

	return ok
}
