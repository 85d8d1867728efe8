package rbtree

// RebalanceAfterDeletion fixes the red-black invariant after a caller
// has decided node must be spliced out of the tree because one of its
// two children was merged away (the surviving child is whichever of
// node.Left()/node.Right() is not IsNil()). The caller must have
// already nil'd the discarded child and must guarantee node is not the
// tree root — root collapse is domain-specific (the surviving subtree
// may itself be a leaf, which only the caller knows how to fold into
// its own root representation) and is handled by the caller, not here.
// The fix-up may rotate around the root, moving another node into the
// root position; callers that keep a root pointer re-find it by
// following parent links afterwards.
//
// Ported from the double-black fix-up in
// original_source/advanced-datastructures-st22/src/bv/dynamic_bitvector.hpp's
// rebalance_after_deletion — lsmkv's rbtree package has no deletion
// support to adapt, so this is new code grounded directly on that C++
// source rather than on any Go sibling in the pack.
func RebalanceAfterDeletion(node Node) {
	if node.IsRed() || node.Left().IsRed() || node.Right().IsRed() {
		// A red node absorbing the missing black is sufficient: recolor
		// and splice, no rotation needed.
		spliceOut(node)
		return
	}

	// True double-black case: node stays fully attached to the tree
	// (its sibling relationships intact) while we walk upward fixing
	// the deficiency; it is only unlinked once resolved or the walk
	// reaches the root.
	ptr := node
	deficient := true
	for deficient && !ptr.Parent().IsNil() {
		parent := ptr.Parent()
		if ptr == parent.Left() {
			deficient = fixLeftDeficiency(ptr, parent)
		} else {
			deficient = fixRightDeficiency(ptr, parent)
		}
		if deficient {
			ptr = parent
		}
	}
	if ptr.Parent().IsNil() {
		ptr.SetRed(false)
	}
	spliceOut(node)
}

// fixLeftDeficiency handles the case where ptr (missing a black) is
// parent's left child; returns whether the deficiency propagates to
// parent (true) or was resolved in place (false).
func fixLeftDeficiency(ptr, parent Node) bool {
	sibling := parent.Right()

	if sibling.IsRed() {
		sibling.SetRed(false)
		parent.SetRed(true)
		leftRotate(parent)
		sibling = parent.Right()
	}

	if !sibling.Left().IsRed() && !sibling.Right().IsRed() {
		sibling.SetRed(true)
		if parent.IsRed() {
			parent.SetRed(false)
			return false
		}
		return true
	}

	if !sibling.Right().IsRed() {
		sibling.Left().SetRed(false)
		sibling.SetRed(true)
		rightRotate(sibling)
		sibling = parent.Right()
	}
	sibling.SetRed(parent.IsRed())
	parent.SetRed(false)
	sibling.Right().SetRed(false)
	leftRotate(parent)
	return false
}

// fixRightDeficiency mirrors fixLeftDeficiency with left/right swapped.
func fixRightDeficiency(ptr, parent Node) bool {
	sibling := parent.Left()

	if sibling.IsRed() {
		sibling.SetRed(false)
		parent.SetRed(true)
		rightRotate(parent)
		sibling = parent.Left()
	}

	if !sibling.Left().IsRed() && !sibling.Right().IsRed() {
		sibling.SetRed(true)
		if parent.IsRed() {
			parent.SetRed(false)
			return false
		}
		return true
	}

	if !sibling.Left().IsRed() {
		sibling.Right().SetRed(false)
		sibling.SetRed(true)
		leftRotate(sibling)
		sibling = parent.Left()
	}
	sibling.SetRed(parent.IsRed())
	parent.SetRed(false)
	sibling.Left().SetRed(false)
	rightRotate(parent)
	return false
}

// spliceOut removes node from the tree, promoting its single surviving
// child into node's former position.
func spliceOut(node Node) {
	child := node.Left()
	if child.IsNil() {
		child = node.Right()
	}
	parent := node.Parent()
	if parent.Left() == node {
		parent.SetLeft(child)
	} else {
		parent.SetRight(child)
	}
	if !child.IsNil() {
		child.SetParent(parent)
		child.SetRed(false)
	}
}
