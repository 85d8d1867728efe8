package dynbitvector

import "github.com/succinctds/bpforest/leafstore"

// LeafSpan names one leaf's absolute bit offset within the whole
// bitvector. bptree's excess search walks these in order to cross leaf
// boundaries once a chunk-level scan inside one leaf comes up empty.
type LeafSpan struct {
	Start int
	Store *leafstore.LeafStore
}

// Leaves returns every leaf in left-to-right order. This is the
// deliberately simple stand-in for spec §4.3's tier-3 tree-level excess
// aggregates (see DESIGN.md): instead of caching subtree_block_excess /
// subtree_min_excess on inner nodes and skipping whole subtrees,
// excess search here walks leaf by leaf, pruning within each leaf via
// its own chunk summaries. Correct, O(#leaves) rather than O(log n)
// for the cross-leaf hop.
func (bv *DynamicBitVector) Leaves() []LeafSpan {
	var out []LeafSpan
	var walk func(n *node, offset int)
	walk = func(n *node, offset int) {
		if n.isLeaf() {
			out = append(out, LeafSpan{Start: offset, Store: n.leaf})
			return
		}
		walk(n.left, offset)
		walk(n.right, offset+n.bitsLeft)
	}
	walk(bv.root, 0)
	return out
}
