// Package grava is a generic directed-graph traversal library built around
// one hard problem done carefully: strongly connected components via
// Kosaraju's two-pass depth-first search, computed over any caller-supplied
// graph representation.
//
// What's inside:
//
//	core/ — the graph capability contract (Graph, Toolkit, VertexChooser) and
//	        Digraph, a deterministic adjacency-list implementation of it
//	dfs/  — the iterative depth-first-search engine: spanning forests,
//	        discovery/finish clocks, vertex choosers, explicit root ordering
//	scc/  — transpose, visitation-time ordering, and the Kosaraju orchestrator
//
// Why grava?
//
//   - Generic over the graph: algorithms see two small interfaces, never a
//     concrete representation. Bring your own graph, or use core.Digraph.
//   - No recursion anywhere: traversal and tree copying run on explicit
//     stacks over arena-indexed nodes, so graph diameter never threatens the
//     call stack.
//   - Per-run metadata is owned by the call, never stored on vertices, so
//     independent runs over one graph cannot interfere.
//
// Quick taste:
//
//	g := core.NewDigraph[string]()
//	g.AddEdge("A", "B")
//	g.AddEdge("B", "A")
//
//	f := scc.NewFinder[string, core.Edge[string]]()
//	_ = f.FindStronglyConnectedComponents(g, core.NewDigraphToolkit[string]())
//	for set := range f.ComponentSets() {
//		fmt.Println(set) // [A B] — one component, since A and B reach each other
//	}
//
//	go get github.com/velmarr/grava
package grava
