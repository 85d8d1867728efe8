// Package bptree implements spec §4.3's DynamicBPTree: an ordered,
// dynamic rooted tree encoded as a balanced-parentheses sequence over a
// dynbitvector.DynamicBitVector with excess summaries enabled, ported
// from original_source/advanced-datastructures-st22/src/bp's
// dynamic_bp_tree.hpp/simple_tree.hpp pairing. Node identity is the bit
// position of a node's opening parenthesis; there is no separate handle
// type; the tree starts as a single node "()" (the root).
package bptree

import (
	"github.com/succinctds/bpforest/dynbitvector"
	"github.com/succinctds/bpforest/leafstore"
)

const (
	leftParen  = false // "(" — opens a node, contributes +1 to excess
	rightParen = true  // ")" — closes a node, contributes -1 to excess
)

// DynamicBPTree is an ordered tree supporting child lookup, parent
// lookup, subtree size, and structural insert/delete via forward/backward
// excess search over the balanced parenthesis sequence. Each search
// enumerates the bitvector's leaves, so its cost grows with the number
// of leaves rather than logarithmically.
type DynamicBPTree struct {
	bv *dynbitvector.DynamicBitVector
}

// New builds a tree containing just the root: the sequence "()".
func New() (*DynamicBPTree, error) {
	bv, err := dynbitvector.New(leafstore.DefaultBPConfig())
	if err != nil {
		return nil, err
	}
	if err := bv.Insert(0, leftParen); err != nil {
		return nil, err
	}
	if err := bv.Insert(1, rightParen); err != nil {
		return nil, err
	}
	return &DynamicBPTree{bv: bv}, nil
}

// Root is always bit position 0.
func (t *DynamicBPTree) Root() int { return 0 }

// Len returns the number of nodes currently in the tree.
func (t *DynamicBPTree) Len() int { return t.bv.Len() / 2 }

// SpaceUsedBits reports the underlying bitvector's memory footprint,
// for the CLI's RESULT summary line (spec §6).
func (t *DynamicBPTree) SpaceUsedBits() int { return t.bv.SpaceUsedBits() }

// matchingClose finds the bit position of v's closing parenthesis via
// forward_search(v, 0): starting the running excess at v's own opening
// bit, the first return to 0 is exactly the matching close.
func (t *DynamicBPTree) matchingClose(v int) (int, error) {
	pos, ok := forwardSearch(t.bv, v, 0)
	if !ok {
		return 0, ErrInvalidNode
	}
	return pos, nil
}

// SubtreeSize is spec §4.3's subtree_size(v):
// (forward_search(v,0).position - v + 1) / 2.
func (t *DynamicBPTree) SubtreeSize(v int) (int, error) {
	r, err := t.matchingClose(v)
	if err != nil {
		return 0, err
	}
	return (r - v + 1) / 2, nil
}

// ChildCount reports v's direct fan-out, used by the CLI's final
// DFS preorder child-count dump (spec §6.3).
func (t *DynamicBPTree) ChildCount(v int) (int, error) { return t.childCount(v) }

// childCount counts v's direct children by repeatedly chasing the
// matching close of each child in turn, stopping once the scan reaches
// v's own matching close.
func (t *DynamicBPTree) childCount(v int) (int, error) {
	r, err := t.matchingClose(v)
	if err != nil {
		return 0, err
	}
	count := 0
	current := v + 1
	for current < r {
		close, ok := forwardSearch(t.bv, current, 0)
		if !ok {
			return 0, ErrInvalidNode
		}
		count++
		current = close + 1
	}
	return count, nil
}

// IthChild is spec §4.3's i_th_child(v, i) (1-indexed): starting at
// v+1, repeat (i-1) times "current <- forward_search(current,0).position
// + 1", then return current.
func (t *DynamicBPTree) IthChild(v, i int) (int, error) {
	if i < 1 {
		return 0, ErrInvalidChildIndex
	}
	r, err := t.matchingClose(v)
	if err != nil {
		return 0, err
	}
	current := v + 1
	for k := 0; k < i-1; k++ {
		if current >= r {
			return 0, ErrChildIndexOutOfRange
		}
		close, ok := forwardSearch(t.bv, current, 0)
		if !ok {
			return 0, ErrChildIndexOutOfRange
		}
		current = close + 1
	}
	if current >= r {
		return 0, ErrChildIndexOutOfRange
	}
	return current, nil
}

// Parent is spec §4.3's parent(v): backward_search(v, -1).position.
// parent(root) is undefined in spec.md; this implementation reports it
// as ErrParentOfRoot rather than silently no-opping.
func (t *DynamicBPTree) Parent(v int) (int, error) {
	if v == t.Root() {
		return 0, ErrParentOfRoot
	}
	pos, ok := backwardSearch(t.bv, v, -1)
	if !ok {
		return 0, ErrParentOfRoot
	}
	return pos, nil
}

// InsertNode is spec §4.3's insert_node(v, i, k): take v's children
// i..i+k-1 (1-indexed; i may equal childCount(v)+1 to append at the
// end, k may be 0 to insert a childless node) and regroup them as the
// children of a newly created node, itself inserted as v's new i-th
// child.
func (t *DynamicBPTree) InsertNode(v, i, k int) error {
	if i < 1 || k < 0 {
		return ErrInvalidChildIndex
	}
	childCount, err := t.childCount(v)
	if err != nil {
		return err
	}
	if i > childCount+1 {
		return ErrChildIndexOutOfRange
	}
	if i+k-1 > childCount {
		return ErrChildIndexOutOfRange
	}

	l, err := t.insertionPointL(v, i, childCount)
	if err != nil {
		return err
	}
	r := l
	if k > 0 {
		lastMoved, err := t.IthChild(v, i+k-1)
		if err != nil {
			return err
		}
		closeLastMoved, err := t.matchingClose(lastMoved)
		if err != nil {
			return err
		}
		r = closeLastMoved + 1
	}

	if err := t.bv.Insert(l, leftParen); err != nil {
		return err
	}
	insertAt := r
	if r >= l {
		insertAt = r + 1
	}
	return t.bv.Insert(insertAt, rightParen)
}

// insertionPointL resolves spec's "bit position of v's i-th child, or
// the position following v's last child if i = #children+1".
func (t *DynamicBPTree) insertionPointL(v, i, childCount int) (int, error) {
	if i <= childCount {
		return t.IthChild(v, i)
	}
	if childCount == 0 {
		return v + 1, nil
	}
	last, err := t.IthChild(v, childCount)
	if err != nil {
		return 0, err
	}
	closeLast, err := t.matchingClose(last)
	if err != nil {
		return 0, err
	}
	return closeLast + 1, nil
}

// DeleteNode is spec §4.3's delete_node(v): delete the matching close
// of v, then delete v itself. v's children are not touched by any
// extra bookkeeping — removing the enclosing pair of parentheses from a
// balanced sequence automatically promotes v's children to be children
// of v's former parent at the same relative position, which is exactly
// the balanced-parentheses encoding's defining property.
func (t *DynamicBPTree) DeleteNode(v int) error {
	if v == t.Root() {
		return ErrDeleteRoot
	}
	r, err := t.matchingClose(v)
	if err != nil {
		return err
	}
	if err := t.bv.Delete(r); err != nil {
		return err
	}
	return t.bv.Delete(v)
}
