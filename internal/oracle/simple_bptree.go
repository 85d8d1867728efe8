package oracle

// SimpleTree is a naive, pointer-based ordered tree reference, ported
// from original_source's simple_tree.hpp SimpleTree/Node pair. Node
// identity here is a stable integer handle (an index into nodes),
// standing in for the original's raw Node* — Go has no use for raw
// pointers as map/slice keys where an int serves just as well.
type SimpleTree struct {
	nodes    []simpleNode
	freeList []int
	root     int
}

type simpleNode struct {
	parent   int
	children []int
	alive    bool
}

// NewSimpleTree returns a tree containing only the root.
func NewSimpleTree() *SimpleTree {
	t := &SimpleTree{}
	t.root = t.alloc(-1)
	return t
}

func (t *SimpleTree) alloc(parent int) int {
	if len(t.freeList) > 0 {
		id := t.freeList[len(t.freeList)-1]
		t.freeList = t.freeList[:len(t.freeList)-1]
		t.nodes[id] = simpleNode{parent: parent, alive: true}
		return id
	}
	t.nodes = append(t.nodes, simpleNode{parent: parent, alive: true})
	return len(t.nodes) - 1
}

// Root returns the root's handle.
func (t *SimpleTree) Root() int { return t.root }

// IthChild mirrors i_th_child(v, i), 1-indexed.
func (t *SimpleTree) IthChild(v, i int) (int, bool) {
	n := t.nodes[v]
	if i < 1 || i > len(n.children) {
		return 0, false
	}
	return n.children[i-1], true
}

// Parent mirrors parent(v); false for the root.
func (t *SimpleTree) Parent(v int) (int, bool) {
	if v == t.root {
		return 0, false
	}
	return t.nodes[v].parent, true
}

// SubtreeSize mirrors subtree_size(v): 1 plus every descendant.
func (t *SimpleTree) SubtreeSize(v int) int {
	total := 1
	for _, c := range t.nodes[v].children {
		total += t.SubtreeSize(c)
	}
	return total
}

// InsertNode mirrors insert_node(v, i, k): children i..i+k-1 (1-indexed)
// of v are regrouped as the children of a freshly allocated node, which
// itself becomes v's new i-th child.
func (t *SimpleTree) InsertNode(v, i, k int) bool {
	n := &t.nodes[v]
	if i < 1 || k < 0 || i > len(n.children)+1 || i+k-1 > len(n.children) {
		return false
	}
	moved := append([]int{}, n.children[i-1:i-1+k]...)
	rest := append([]int{}, n.children[i-1+k:]...)
	head := append([]int{}, n.children[:i-1]...)
	newID := t.alloc(v)
	n = &t.nodes[v]
	n.children = append(append(head, newID), rest...)
	for _, c := range moved {
		t.nodes[c].parent = newID
	}
	t.nodes[newID].children = moved
	return true
}

// DeleteNode mirrors delete_node(v): v's children are spliced into its
// parent's child list at v's former position, and v is freed.
func (t *SimpleTree) DeleteNode(v int) bool {
	if v == t.root {
		return false
	}
	n := t.nodes[v]
	parent := &t.nodes[n.parent]
	idx := -1
	for k, c := range parent.children {
		if c == v {
			idx = k
			break
		}
	}
	if idx < 0 {
		return false
	}
	for _, c := range n.children {
		t.nodes[c].parent = n.parent
	}
	rebuilt := append([]int{}, parent.children[:idx]...)
	rebuilt = append(rebuilt, n.children...)
	rebuilt = append(rebuilt, parent.children[idx+1:]...)
	parent.children = rebuilt

	t.nodes[v] = simpleNode{}
	t.freeList = append(t.freeList, v)
	return true
}

// BPRepresentation renders the tree as its balanced-parenthesis bit
// sequence, "(" = false, ")" = true, matching bptree's own encoding —
// the cross-check bptree_model_test.go diffs against after a sequence of
// mutating operations.
func (t *SimpleTree) BPRepresentation() []bool {
	var out []bool
	var walk func(v int)
	walk = func(v int) {
		out = append(out, false)
		for _, c := range t.nodes[v].children {
			walk(c)
		}
		out = append(out, true)
	}
	walk(t.root)
	return out
}
