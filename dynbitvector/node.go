package dynbitvector

import (
	"github.com/succinctds/bpforest/internal/rbtree"
	"github.com/succinctds/bpforest/leafstore"
)

// node is the single tagged tree element spec §9's design note leaves
// open between a two-struct Inner{}/Leaf{} split and one mutable struct
// with an optional field: both original_source's `struct Node { ...;
// Leaf *leaf_data = nullptr; }` and roaringset.BinarySearchNode use the
// single-struct shape, so that is what this follows (see DESIGN.md).
// leaf == nil means inner node;
// leaf != nil means leaf node, and bitsLeft/onesLeft are meaningless.
//
// A leaf always reports black regardless of the red field underneath
// it, per spec §4.2 ("leaves always count as black"); red is only ever
// actually toggled on inner nodes.
type node struct {
	parent, left, right *node
	red                  bool

	leaf *leafstore.LeafStore

	// bitsLeft/onesLeft hold the total bit / one-count of this node's
	// LEFT subtree, fixed up automatically on every rotation via
	// OnLeftRotate/OnRightRotate below.
	bitsLeft int
	onesLeft int
}

func newInnerNode() *node { return &node{red: true} }

func newLeafNode(leaf *leafstore.LeafStore) *node { return &node{leaf: leaf} }

func (n *node) isLeaf() bool { return n != nil && n.leaf != nil }

// --- rbtree.Node ---

func (n *node) Parent() rbtree.Node {
	if n == nil || n.parent == nil {
		return (*node)(nil)
	}
	return n.parent
}

func (n *node) SetParent(p rbtree.Node) {
	if p == nil || p.IsNil() {
		n.parent = nil
		return
	}
	n.parent = p.(*node)
}

func (n *node) Left() rbtree.Node {
	if n == nil || n.left == nil {
		return (*node)(nil)
	}
	return n.left
}

func (n *node) SetLeft(l rbtree.Node) {
	if l == nil || l.IsNil() {
		n.left = nil
		return
	}
	n.left = l.(*node)
}

func (n *node) Right() rbtree.Node {
	if n == nil || n.right == nil {
		return (*node)(nil)
	}
	return n.right
}

func (n *node) SetRight(r rbtree.Node) {
	if r == nil || r.IsNil() {
		n.right = nil
		return
	}
	n.right = r.(*node)
}

func (n *node) IsRed() bool {
	if n == nil || n.leaf != nil {
		return false
	}
	return n.red
}

func (n *node) SetRed(v bool) {
	if n == nil || n.leaf != nil {
		return
	}
	n.red = v
}

func (n *node) IsNil() bool { return n == nil }

// --- rbtree.CounterHook ---
//
// Left rotation promoting pivot's right child (promoted): promoted's
// bits_left/ones_left absorb pivot's, since pivot's whole former
// subtree (pivot's unmoved left side, plus pivot itself, plus the
// transferred former-left-of-promoted subtree) becomes promoted's new
// left subtree. See rbtree.CounterHook for the derivation.
func (n *node) OnLeftRotate(pivot, promotedNode rbtree.Node) {
	p := pivot.(*node)
	promoted := promotedNode.(*node)
	promoted.bitsLeft += p.bitsLeft
	promoted.onesLeft += p.onesLeft
}

// Right rotation promoting pivot's left child (promoted): pivot's new
// left subtree is what used to be promoted's right subtree, whose size
// is pivot's old bits_left minus promoted's (promoted's own bits_left
// is exactly the size of the part that stays on promoted's left).
func (n *node) OnRightRotate(pivot, promotedNode rbtree.Node) {
	p := pivot.(*node)
	promoted := promotedNode.(*node)
	p.bitsLeft -= promoted.bitsLeft
	p.onesLeft -= promoted.onesLeft
}
