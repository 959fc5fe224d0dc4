// File: forest.go
// Role: Arena-backed search forest produced by a DFS run.
//
// Nodes live in a single slice and reference children by index, so building
// and flattening a forest never recurses and never chases pointers. Tree is a
// cheap two-word handle over the arena, safe to copy and pass by value.
package dfs

// Forest is an ordered collection of search trees sharing one node arena.
// The zero value is empty but usable; NewForest adds a capacity hint.
type Forest[V comparable] struct {
	nodes []node[V] // arena; index 0 is the first node ever added
	roots []int     // arena indices of tree roots, in discovery order
}

// node is one arena slot: a vertex and its children in discovery order.
type node[V comparable] struct {
	vertex   V
	children []int
}

// NewForest creates an empty forest with room for capacity nodes.
func NewForest[V comparable](capacity int) *Forest[V] {
	return &Forest[V]{nodes: make([]node[V], 0, capacity)}
}

// AddRoot appends a new single-vertex tree and returns its handle.
// Complexity: O(1) amortized.
func (f *Forest[V]) AddRoot(v V) Tree[V] {
	idx := f.alloc(v)
	f.roots = append(f.roots, idx)

	return Tree[V]{forest: f, idx: idx}
}

// Len returns the number of trees.
func (f *Forest[V]) Len() int { return len(f.roots) }

// Size returns the total number of vertices across all trees.
func (f *Forest[V]) Size() int { return len(f.nodes) }

// Roots returns handles to every tree in discovery order.
// Complexity: O(number of roots).
func (f *Forest[V]) Roots() []Tree[V] {
	out := make([]Tree[V], len(f.roots))
	for i, idx := range f.roots {
		out[i] = Tree[V]{forest: f, idx: idx}
	}

	return out
}

// alloc appends a node to the arena and returns its index.
func (f *Forest[V]) alloc(v V) int {
	f.nodes = append(f.nodes, node[V]{vertex: v})

	return len(f.nodes) - 1
}

// Tree is a handle to one node of a forest, rooted at that node.
type Tree[V comparable] struct {
	forest *Forest[V]
	idx    int
}

// Vertex returns the vertex owned by this node.
func (t Tree[V]) Vertex() V { return t.forest.nodes[t.idx].vertex }

// AddChild appends a new child node under t, in call order, and returns its
// handle.
// Complexity: O(1) amortized.
func (t Tree[V]) AddChild(v V) Tree[V] {
	idx := t.forest.alloc(v)
	n := &t.forest.nodes[t.idx]
	n.children = append(n.children, idx)

	return Tree[V]{forest: t.forest, idx: idx}
}

// Children returns handles to the direct children in discovery order.
// Complexity: O(number of children).
func (t Tree[V]) Children() []Tree[V] {
	ids := t.forest.nodes[t.idx].children
	out := make([]Tree[V], len(ids))
	for i, idx := range ids {
		out[i] = Tree[V]{forest: t.forest, idx: idx}
	}

	return out
}

// Vertices flattens the subtree rooted at t into pre-order, children before
// later siblings, using an explicit stack.
// Complexity: O(subtree size).
func (t Tree[V]) Vertices() []V {
	out := make([]V, 0, 8)
	stack := []int{t.idx}
	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &t.forest.nodes[idx]
		out = append(out, n.vertex)
		// Push children reversed so the first child is popped first.
		for i := len(n.children) - 1; i >= 0; i-- {
			stack = append(stack, n.children[i])
		}
	}

	return out
}

// Size returns the number of vertices in the subtree rooted at t.
// Complexity: O(subtree size).
func (t Tree[V]) Size() int {
	count := 0
	stack := []int{t.idx}
	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++
		stack = append(stack, t.forest.nodes[idx].children...)
	}

	return count
}
