// Package dynbitvector implements spec §4's dynamic bitvector: rank,
// select, insert, and delete in O(log n) over an augmented red-black
// tree of leafstore.LeafStore leaves, ported from
// original_source/advanced-datastructures-st22/src/bv/dynamic_bitvector.hpp's
// recursive access_bit/set_bit/rank_at_node/select_at_node/insert_at_node/
// delete_at_node family, restructured around internal/rbtree's
// Node/CounterHook interfaces in place of the original's raw pointer
// fields with inline rotation code.
package dynbitvector

import (
	"github.com/pkg/errors"

	"github.com/succinctds/bpforest/leafstore"
)

// DynamicBitVector is a balanced, mutable bit sequence supporting
// point access/update, rank/select, and positional insert/delete.
type DynamicBitVector struct {
	cfg    leafstore.Config
	root   *node
	length int
	ones   int
}

// New builds an empty bit vector. cfg is validated once here, matching
// leafstore's own fail-fast contract.
func New(cfg leafstore.Config) (*DynamicBitVector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "dynbitvector: invalid leaf configuration")
	}
	return &DynamicBitVector{
		cfg:  cfg,
		root: newLeafNode(leafstore.New(cfg)),
	}, nil
}

// Len returns the total number of bits currently stored.
func (bv *DynamicBitVector) Len() int { return bv.length }

// NumOnes returns the total number of 1 bits currently stored.
func (bv *DynamicBitVector) NumOnes() int { return bv.ones }

// Access returns the bit at position i.
func (bv *DynamicBitVector) Access(i int) (bool, error) {
	if i < 0 || i >= bv.length {
		return false, ErrIndexOutOfRange
	}
	return bv.accessAt(bv.root, i), nil
}

func (bv *DynamicBitVector) accessAt(n *node, i int) bool {
	if n.isLeaf() {
		return n.leaf.Access(i)
	}
	if i < n.bitsLeft {
		return bv.accessAt(n.left, i)
	}
	return bv.accessAt(n.right, i-n.bitsLeft)
}

// Set assigns the bit at position i to v.
func (bv *DynamicBitVector) Set(i int, v bool) error {
	if i < 0 || i >= bv.length {
		return ErrIndexOutOfRange
	}
	if bv.setAt(bv.root, i, v) {
		if v {
			bv.ones++
		} else {
			bv.ones--
		}
	}
	return nil
}

func (bv *DynamicBitVector) setAt(n *node, i int, v bool) bool {
	if n.isLeaf() {
		old := n.leaf.Access(i)
		if old == v {
			return false
		}
		n.leaf.Set(i, v)
		return true
	}
	if i < n.bitsLeft {
		changed := bv.setAt(n.left, i, v)
		if changed {
			if v {
				n.onesLeft++
			} else {
				n.onesLeft--
			}
		}
		return changed
	}
	return bv.setAt(n.right, i-n.bitsLeft, v)
}

// Flip toggles the bit at position i.
func (bv *DynamicBitVector) Flip(i int) error {
	cur, err := bv.Access(i)
	if err != nil {
		return err
	}
	return bv.Set(i, !cur)
}

// Rank1 returns the number of 1 bits in [0, i).
func (bv *DynamicBitVector) Rank1(i int) (int, error) {
	if i < 0 || i > bv.length {
		return 0, ErrIndexOutOfRange
	}
	return bv.rank1At(bv.root, i), nil
}

func (bv *DynamicBitVector) rank1At(n *node, i int) int {
	if n.isLeaf() {
		return n.leaf.Rank1(i)
	}
	if i <= n.bitsLeft {
		return bv.rank1At(n.left, i)
	}
	return n.onesLeft + bv.rank1At(n.right, i-n.bitsLeft)
}

// Rank0 returns the number of 0 bits in [0, i).
func (bv *DynamicBitVector) Rank0(i int) (int, error) {
	r1, err := bv.Rank1(i)
	if err != nil {
		return 0, err
	}
	return i - r1, nil
}

// Select1 returns the position of the k-th (1-indexed) 1 bit.
func (bv *DynamicBitVector) Select1(k int) (int, error) {
	if k <= 0 || k > bv.ones {
		return 0, ErrRankOutOfRange
	}
	pos, ok := bv.select1At(bv.root, k)
	if !ok {
		return 0, ErrRankOutOfRange
	}
	return pos, nil
}

func (bv *DynamicBitVector) select1At(n *node, k int) (int, bool) {
	if n.isLeaf() {
		return n.leaf.Select1(k)
	}
	if k <= n.onesLeft {
		return bv.select1At(n.left, k)
	}
	pos, ok := bv.select1At(n.right, k-n.onesLeft)
	if !ok {
		return 0, false
	}
	return n.bitsLeft + pos, true
}

// Select0 returns the position of the k-th (1-indexed) 0 bit.
func (bv *DynamicBitVector) Select0(k int) (int, error) {
	if k <= 0 || k > bv.length-bv.ones {
		return 0, ErrRankOutOfRange
	}
	pos, ok := bv.select0At(bv.root, k)
	if !ok {
		return 0, ErrRankOutOfRange
	}
	return pos, nil
}

func (bv *DynamicBitVector) select0At(n *node, k int) (int, bool) {
	if n.isLeaf() {
		return n.leaf.Select0(k)
	}
	zerosLeft := n.bitsLeft - n.onesLeft
	if k <= zerosLeft {
		return bv.select0At(n.left, k)
	}
	pos, ok := bv.select0At(n.right, k-zerosLeft)
	if !ok {
		return 0, false
	}
	return n.bitsLeft + pos, true
}

// Insert places v at position i, shifting everything at or after i one
// to the right.
func (bv *DynamicBitVector) Insert(i int, v bool) error {
	if i < 0 || i > bv.length {
		return ErrIndexOutOfRange
	}
	bv.insertAtNode(bv.root, i, v)
	bv.length++
	if v {
		bv.ones++
	}
	return nil
}

// insertAtNode descends to the target leaf, inserts, and splits the
// leaf if it overflows MaxLeafBlocks, ported from the original's
// insert_at_node.
func (bv *DynamicBitVector) insertAtNode(n *node, i int, v bool) {
	if n.isLeaf() {
		n.leaf.Insert(i, v)
		if n.leaf.Blocks() >= bv.cfg.MaxLeafBlocks {
			bv.splitLeaf(n)
		}
		return
	}
	if i < n.bitsLeft {
		n.bitsLeft++
		if v {
			n.onesLeft++
		}
		bv.insertAtNode(n.left, i, v)
	} else {
		bv.insertAtNode(n.right, i-n.bitsLeft, v)
	}
}

// Delete removes the bit at position i, shifting everything after it
// one to the left.
func (bv *DynamicBitVector) Delete(i int) error {
	if i < 0 || i >= bv.length {
		return ErrIndexOutOfRange
	}
	if bv.root.isLeaf() {
		deletedOne := bv.root.leaf.Access(i)
		bv.root.leaf.Delete(i)
		bv.length--
		if deletedOne {
			bv.ones--
		}
		return nil
	}
	res := bv.deleteAtNode(bv.root, i, bv.length, bv.ones, true)
	bv.length--
	if res == delOne {
		bv.ones--
	}
	return nil
}

type delResult int

const (
	delZero delResult = iota
	delOne
	delUnderflow
)

// deleteAtNode mirrors the original's delete_at_node: it deletes bit i
// recursively, and whenever the subtree it just descended into lands
// exactly at MinLeafBlocks it proactively steals one bit from the
// neighboring subtree (by recursing delete_at_node again, with
// allowUnderflow=false, at that subtree's boundary position) to avoid
// a genuine underflow; if the neighbor can't spare a bit either (it is
// itself at the minimum) the two leaves are merged and n is spliced
// out of the tree via RebalanceAfterDeletion.
func (bv *DynamicBitVector) deleteAtNode(n *node, i, numBits, ones int, allowUnderflow bool) delResult {
	if n.isLeaf() {
		if !allowUnderflow && n != bv.root && n.leaf.Blocks() <= bv.cfg.MinLeafBlocks {
			return delUnderflow
		}
		deletedOne := n.leaf.Access(i)
		n.leaf.Delete(i)
		if deletedOne {
			return delOne
		}
		return delZero
	}

	if i >= n.bitsLeft {
		res := bv.deleteAtNode(n.right, i-n.bitsLeft, numBits-n.bitsLeft, ones-n.onesLeft, allowUnderflow)
		if res == delUnderflow {
			return delUnderflow
		}
		if numBits-n.bitsLeft == bv.cfg.MinLeafBits() {
			bv.rebalanceRightUnderflow(n)
		}
		return res
	}

	// n's counters drop before descending, so any rotation a nested merge
	// performs around n already sees the post-deletion counts; a refused
	// steal (delUnderflow) restores them.
	oldBitsLeft := n.bitsLeft
	oldOnesLeft := n.onesLeft
	n.bitsLeft--
	if bv.accessAt(n.left, i) {
		n.onesLeft--
	}
	res := bv.deleteAtNode(n.left, i, oldBitsLeft, oldOnesLeft, allowUnderflow)
	if res == delUnderflow {
		n.bitsLeft, n.onesLeft = oldBitsLeft, oldOnesLeft
		return delUnderflow
	}
	if oldBitsLeft == bv.cfg.MinLeafBits() {
		bv.rebalanceLeftUnderflow(n, numBits-oldBitsLeft, ones-oldOnesLeft)
	}
	return res
}
