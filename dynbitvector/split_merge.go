package dynbitvector

import (
	"github.com/succinctds/bpforest/internal/rbtree"
	"github.com/succinctds/bpforest/leafstore"
)

// splitLeaf turns an overflowing leaf (n.leaf.Blocks() >= MaxLeafBlocks)
// into an inner node with two freshly-split leaf children, then runs
// the standard red-black insertion fix-up on the node that just turned
// red, per spec §4.2's split-on-overflow rule and original_source's
// insert_at_node leaf-split branch.
func (bv *DynamicBitVector) splitLeaf(n *node) {
	rightHalf := n.leaf.Split()
	leftLeaf := n.leaf

	leftChild := newLeafNode(leftLeaf)
	rightChild := newLeafNode(rightHalf)

	n.leaf = nil
	n.red = true
	n.bitsLeft = leftLeaf.Len()
	n.onesLeft = leftLeaf.NumOnes()
	n.left = leftChild
	leftChild.parent = n
	n.right = rightChild
	rightChild.parent = n

	if newRoot := rbtree.Rebalance(n); newRoot != nil {
		bv.root = newRoot.(*node)
	}
	bv.root.red = false
}

// rebalanceLeftUnderflow runs when n's left subtree has just dropped to
// exactly MinLeafBits (about to underflow once the pending decrement of
// n.bitsLeft lands). rightTotal/rightOnes are n's right subtree's own
// totals, computed by the caller before any of n's counters were
// touched for this deletion. It first tries to steal the leading bit of
// n's right subtree; if that subtree is itself at the minimum (can't
// spare one), the two are merged instead.
func (bv *DynamicBitVector) rebalanceLeftUnderflow(n *node, rightTotal, rightOnes int) {
	stealRes := bv.deleteAtNode(n.right, 0, rightTotal, rightOnes, false)
	switch stealRes {
	case delUnderflow:
		bv.mergeAcrossBoundary(n, true)
	case delZero:
		bv.insertAtNode(n.left, n.bitsLeft, false)
		n.bitsLeft++
	case delOne:
		bv.insertAtNode(n.left, n.bitsLeft, true)
		n.bitsLeft++
		n.onesLeft++
	}
}

// rebalanceRightUnderflow mirrors rebalanceLeftUnderflow: n's right
// subtree has just dropped to exactly MinLeafBits, so we try to steal
// n.left's trailing bit, merging on failure.
func (bv *DynamicBitVector) rebalanceRightUnderflow(n *node) {
	leftOnes := n.onesLeft

	stealRes := bv.deleteAtNode(n.left, n.bitsLeft-1, n.bitsLeft, leftOnes, false)
	switch stealRes {
	case delUnderflow:
		bv.mergeAcrossBoundary(n, false)
	case delZero:
		bv.insertAtNode(n.right, 0, false)
		n.bitsLeft--
	case delOne:
		bv.insertAtNode(n.right, 0, true)
		n.bitsLeft--
		n.onesLeft--
	}
}

// mergeAcrossBoundary runs when a one-bit steal has just failed because
// the donor side is itself sitting at MinLeafBits: leftUnderflow=true
// is rebalanceLeftUnderflow's case (n.left just underflowed, n.right is
// the donor); leftUnderflow=false is the mirror (n.right underflowed,
// n.left donates). n.left/n.right on the underflowed side are always a
// single leaf at this point (the only way a subtree's total can sit at
// exactly MinLeafBits is if it is one leaf, since every leaf's own
// floor is MinLeafBlocks and two or more would already exceed it), but
// the donor side carries no such guarantee — red-black balance permits
// a donor that is itself an inner node with several leaves under it
// (e.g. a red node with two leaf children at the same black-height as a
// single min leaf). So only the donor's boundary leaf — its leftmost
// leaf when n.right donates, its rightmost when n.left donates, i.e.
// whichever leaf is adjacent to the underflowed side in bit order — is
// pulled out and merged in; the rest of the donor subtree, if any,
// stays right where it is. n itself is spliced out of the tree only
// when the donor turns out to be a single leaf and is absorbed whole;
// otherwise n survives with its bitsLeft/onesLeft adjusted for the
// leaf that changed sides.
func (bv *DynamicBitVector) mergeAcrossBoundary(n *node, leftUnderflow bool) {
	// An excess-enabled leaf refuses a non-word-aligned Append; the bits
	// are then pushed one at a time so none are lost.
	appendInto := func(dst, src *leafstore.LeafStore) {
		if dst.Append(src) != nil {
			for i := 0; i < src.Len(); i++ {
				dst.PushBack(src.Access(i))
			}
		}
	}
	if leftUnderflow {
		donor, target := n.right, n.left
		if donor.isLeaf() {
			appendInto(target.leaf, donor.leaf)
			detachFromParent(donor)
			bv.spliceNode(n)
			return
		}
		leaf, ones := bv.extractBoundaryLeaf(donor, true)
		appendInto(target.leaf, leaf)
		n.bitsLeft += leaf.Len()
		n.onesLeft += ones
		return
	}

	donor, target := n.left, n.right
	if donor.isLeaf() {
		merged := donor.leaf
		appendInto(merged, target.leaf)
		target.leaf = merged
		detachFromParent(donor)
		bv.spliceNode(n)
		return
	}
	leaf, ones := bv.extractBoundaryLeaf(donor, false)
	movedBits := leaf.Len()
	merged := leaf
	appendInto(merged, target.leaf)
	target.leaf = merged
	n.bitsLeft -= movedBits
	n.onesLeft -= ones
}

// extractBoundaryLeaf pulls donor's leftmost leaf (leftmost=true) or
// rightmost leaf (leftmost=false) out of donor's subtree — the leaf
// adjacent, in bit order, to whatever it is about to be merged into —
// and returns it along with its one-count. donor must not itself be a
// leaf (mergeAcrossBoundary handles that case directly). Every ancestor
// strictly between donor and the extracted leaf has its
// bitsLeft/onesLeft fixed up along the way; the extracted leaf's
// immediate parent, left with a single surviving child, is spliced out
// via spliceNode exactly as a deletion would splice out any other node
// that just lost a child to a merge.
func (bv *DynamicBitVector) extractBoundaryLeaf(donor *node, leftmost bool) (*leafstore.LeafStore, int) {
	if leftmost {
		child := donor.left
		if child.isLeaf() {
			leaf, ones := child.leaf, child.leaf.NumOnes()
			donor.bitsLeft -= leaf.Len()
			donor.onesLeft -= ones
			detachFromParent(child)
			bv.spliceNode(donor)
			return leaf, ones
		}
		leaf, ones := bv.extractBoundaryLeaf(child, leftmost)
		donor.bitsLeft -= leaf.Len()
		donor.onesLeft -= ones
		return leaf, ones
	}

	child := donor.right
	if child.isLeaf() {
		leaf, ones := child.leaf, child.leaf.NumOnes()
		detachFromParent(child)
		bv.spliceNode(donor)
		return leaf, ones
	}
	return bv.extractBoundaryLeaf(child, leftmost)
}

func detachFromParent(n *node) {
	p := n.parent
	if p.left == n {
		p.left = nil
	} else {
		p.right = nil
	}
}

// spliceNode removes n (whose merge just zeroed one of its children)
// from the tree: root collapse is handled here, since folding the
// surviving subtree into the root position may turn the root back into
// a bare leaf node, which only dynbitvector (not the structural
// rbtree package) knows how to represent.
func (bv *DynamicBitVector) spliceNode(n *node) {
	if n.parent == nil {
		survivor := n.left
		if survivor == nil {
			survivor = n.right
		}
		survivor.parent = nil
		survivor.red = false
		bv.root = survivor
		return
	}
	rbtree.RebalanceAfterDeletion(n)
	for bv.root.parent != nil {
		bv.root = bv.root.parent
	}
}
