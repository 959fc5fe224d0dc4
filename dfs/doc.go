// Package dfs implements depth-first traversal over the core graph capability
// contract, producing the two artifacts Kosaraju-style algorithms consume: a
// spanning search forest and finish-time bookkeeping.
//
// What:
//
//   - Search: full-graph DFS. Every chooser-accepted, not-yet-visited
//     candidate in the outer loop roots one search tree; candidates come from
//     the graph's natural enumeration or from an explicit order supplied by
//     the caller (the second Kosaraju pass relies on this).
//   - Forest / Tree: the arena-backed spanning structure of one run. Each
//     visited vertex appears in exactly one tree; children hang off their
//     parent in the order their edges were first explored.
//   - Result: the forest plus discovery/finish stamps from a single shared
//     monotonic clock, and parent links for non-roots.
//
// Why:
//
//	Finish order is the load-bearing output: processing a transposed graph in
//	descending first-pass finish order makes each second-pass tree exactly one
//	strongly connected component. The forest shape itself also serves cycle
//	and reachability analyses.
//
// Key invariants:
//
//   - DiscoverTime[v] < FinishTime[v] for every visited v.
//   - A vertex finishes only after every vertex reachable from it (within the
//     chosen subset) that was unvisited at its discovery has finished.
//   - Search-tree roots partition the visited vertex set.
//   - No metadata survives a run; a second Search on the same graph is
//     indistinguishable from the first.
//
// Complexity:
//
//   - Search: Time O(V + E), Memory O(V).
//   - Tree.Vertices / Tree.Size: O(subtree size), iterative.
//
// Errors:
//
//   - ErrGraphNil, ErrVertexNotFound, ErrDanglingEdge (see types.go).
package dfs
