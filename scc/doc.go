// Package scc computes strongly connected components of a directed graph
// using Kosaraju's two-pass depth-first-search algorithm, generically over any
// graph satisfying the core capability contract.
//
// What:
//
//   - Finder: the orchestrator. Optionally restrict participation with
//     SetVertexChooser, run FindStronglyConnectedComponents once per graph,
//     then read ComponentForests (search trees in source-graph terms) or
//     ComponentSets (lazy per-component vertex sets) any number of times.
//   - Transpose: builds the edge-reversed graph of the same concrete kind
//     through a core.Toolkit, remembering the vertex correspondence.
//   - OrderByVisitationTime: strict ordering of vertices by a prior search's
//     finish times, ascending or descending.
//
// How it works:
//
//	A first DFS over the graph records finish times. The graph is transposed,
//	and a second DFS runs over the transpose with roots chosen in descending
//	first-pass finish time. The classical property guarantees each second-pass
//	search tree contains exactly one strongly connected component — no more,
//	no less. Trees are translated back through the transpose correspondence so
//	results are expressed in the caller's own vertices.
//
// Why:
//
//   - Order analysis passes by dependency (components of size one are safe;
//     larger components are cycles needing a policy decision).
//   - Detect cyclic relationships in class hierarchies, imports, schedules.
//
// Edge behavior:
//
//   - Empty graphs produce zero components; edgeless graphs one singleton per
//     vertex; a DAG never merges two vertices; self-loops do not change
//     membership; chooser-excluded vertices appear in no component.
//
// Complexity:
//
//   - Time:   O(V + E) per pass, O(V log V) ordering; O((V+E) log V) overall.
//   - Memory: O(V + E) for the transpose plus O(V) bookkeeping.
//
// Errors:
//
//   - ErrGraphNil, ErrToolkitNil, ErrDanglingEdge (see types.go); search
//     failures from the dfs package are wrapped and returned as-is for
//     errors.Is inspection.
package scc
