// Package dfs implements depth-first search over any core.Graph, recording a
// spanning forest and discovery/finish timing usable by higher-level
// algorithms (Kosaraju SCC in particular).
//
// Key properties:
//   - Search(g, opts...): full-graph traversal covering every component.
//   - One monotonic clock stamps discovery and finish events; for every
//     visited vertex, discovery < finish, and a vertex finishes only after
//     everything reachable from it (within the chosen subset) has finished.
//   - Per-run metadata (colors, stamps, parents) lives in side tables owned by
//     the call, never on the graph or its vertices: re-running on the same
//     graph starts clean, and independent runs never share state.
//   - The engine iterates with an explicit frame stack, so traversal depth is
//     bounded by memory, not by the goroutine call stack.
//
// Complexity:
//
//   - Time:   O(V + E) plus O(1) per chooser call.
//   - Memory: O(V) for metadata and the frame stack.
//
// Options:
//
//   - WithVertexChooser(ch)  restrict the induced subgraph; rejected vertices
//     are invisible for the whole run.
//   - WithOrder(seq)         explicit outer-loop root candidate order.
//
// Errors:
//
//   - ErrGraphNil          if g is nil.
//   - ErrVertexNotFound    if an ordered vertex is not in the graph.
//   - ErrDanglingEdge      if an edge targets a vertex outside the graph.
package dfs

import (
	"fmt"

	"github.com/velmarr/grava/core"
)

// searcher encapsulates one run's state.
type searcher[V comparable, E any] struct {
	graph  core.Graph[V, E]
	opts   options[V]
	member map[V]struct{} // the graph's vertex set, for dangling-edge checks
	color  map[V]int      // White (absent), Gray, Black
	clock  int
	res    *Result[V]
}

// frame is one explicit-stack entry: a Gray vertex, its arena node, and a
// cursor over its outgoing edges.
type frame[V comparable, E any] struct {
	vertex V
	node   Tree[V]
	edges  []E
	next   int
}

// Search performs a depth-first traversal of g covering every chooser-accepted
// vertex. Candidate roots are taken from the graph's natural enumeration, or
// from WithOrder if supplied; each unvisited accepted candidate starts a new
// search tree.
func Search[V comparable, E any](g core.Graph[V, E], opts ...Option[V]) (*Result[V], error) {
	// 1. Validate input graph.
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options.
	o := defaultOptions[V]()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Snapshot the vertex set once; it backs membership checks and the
	//    default candidate order.
	verts := g.Vertices()
	member := make(map[V]struct{}, len(verts))
	for _, v := range verts {
		member[v] = struct{}{}
	}

	// 4. An explicit order must reference known vertices only.
	candidates := verts
	if o.order != nil {
		for _, v := range o.order {
			if _, ok := member[v]; !ok {
				return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
			}
		}
		candidates = o.order
	}

	// 5. Fresh per-run state.
	s := &searcher[V, E]{
		graph:  g,
		opts:   o,
		member: member,
		color:  make(map[V]int, len(verts)),
		res: &Result[V]{
			Forest:       NewForest[V](len(verts)),
			FinishOrder:  make([]Stamp[V], 0, len(verts)),
			DiscoverTime: make(map[V]int, len(verts)),
			FinishTime:   make(map[V]int, len(verts)),
			Parent:       make(map[V]V, len(verts)),
		},
	}

	// 6. Outer loop: one tree per unvisited accepted candidate.
	for _, v := range candidates {
		if s.color[v] != White {
			continue
		}
		if o.chooser != nil && !o.chooser(v) {
			continue
		}
		if err := s.explore(v); err != nil {
			return nil, err
		}
	}

	return s.res, nil
}

// explore runs one depth-first tree rooted at root using an explicit stack.
func (s *searcher[V, E]) explore(root V) error {
	s.discover(root)
	stack := []frame[V, E]{{
		vertex: root,
		node:   s.res.Forest.AddRoot(root),
		edges:  s.graph.OutEdges(root),
	}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		descended := false
		for top.next < len(top.edges) {
			e := top.edges[top.next]
			top.next++

			to := s.graph.Target(e)
			if _, ok := s.member[to]; !ok {
				return fmt.Errorf("%w: %v -> %v", ErrDanglingEdge, top.vertex, to)
			}
			// Chooser-rejected targets are invisible.
			if s.opts.chooser != nil && !s.opts.chooser(to) {
				continue
			}
			// Gray or Black targets (including self-loops) are not tree edges.
			if s.color[to] != White {
				continue
			}

			s.res.Parent[to] = top.vertex
			s.discover(to)
			child := frame[V, E]{
				vertex: to,
				node:   top.node.AddChild(to),
				edges:  s.graph.OutEdges(to),
			}
			stack = append(stack, child)
			descended = true

			break
		}
		if descended {
			continue
		}

		// All edges exhausted: finish the vertex and pop the frame.
		s.finish(top.vertex)
		stack = stack[:len(stack)-1]
	}

	return nil
}

// discover stamps v with the next clock tick and marks it in progress.
func (s *searcher[V, E]) discover(v V) {
	s.color[v] = Gray
	s.clock++
	s.res.DiscoverTime[v] = s.clock
}

// finish stamps v with the next clock tick and records it in finish order.
func (s *searcher[V, E]) finish(v V) {
	s.color[v] = Black
	s.clock++
	s.res.FinishTime[v] = s.clock
	s.res.FinishOrder = append(s.res.FinishOrder, Stamp[V]{Vertex: v, Time: s.clock})
}
