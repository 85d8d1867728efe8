package bptree

import (
	"github.com/succinctds/bpforest/dynbitvector"
	"github.com/succinctds/bpforest/leafstore"
)

// forwardSearch scans inclusively from bit p, accumulating excess with
// the fixed polarity bit 0 ("(") = +1, bit 1 (")") = -1, and returns the
// first position whose running excess equals d. This backs every
// DynamicBPTree navigation operation that chases excess downward
// (i_th_child and subtree_size both search for d=0 starting from a
// running value >= 1), so chunk-level pruning only ever needs to rule
// a chunk out by its minimum reachable excess — the walk can never need
// to climb above its starting value to reach these targets, matching
// why leafstore.ExcessChunk carries a MinExcess but no max.
//
// Tier 1 scans bit-by-bit to the end of the chunk containing p. Tier 2
// walks the remaining chunks of that same leaf, skipping any chunk whose
// MinExcess rules out d before falling back to a bit scan. Tier 3 moves
// to the next leaf in the tree and repeats tiers 1+2 there; this is a
// leaf-granular stand-in for spec §4.3's tree-level
// subtree_block_excess/subtree_min_excess aggregates (see DESIGN.md) —
// correct, but O(#leaves) instead of O(log n) to cross leaf boundaries.
func forwardSearch(bv *dynbitvector.DynamicBitVector, p, d int) (int, bool) {
	leaves := bv.Leaves()
	idx := locateLeaf(leaves, p)
	if idx < 0 {
		return 0, false
	}

	running := 0
	for li := idx; li < len(leaves); li++ {
		span := leaves[li]
		localStart := 0
		if li == idx {
			localStart = p - span.Start
		}
		pos, newRunning, found := scanLeafForward(span.Store, localStart, running, d)
		if found {
			return span.Start + pos, true
		}
		running = newRunning
	}
	return 0, false
}

func scanLeafForward(leaf *leafstore.LeafStore, localStart, runningIn, d int) (int, int, bool) {
	n := leaf.Len()
	running := runningIn
	pos := localStart
	chunkSize := leafstore.BlocksPerChunk * leafstore.BlockWidth

	startChunkEnd := (localStart/chunkSize + 1) * chunkSize
	if startChunkEnd > n {
		startChunkEnd = n
	}
	for pos < startChunkEnd {
		if leaf.Access(pos) {
			running--
		} else {
			running++
		}
		if running == d {
			return pos, running, true
		}
		pos++
	}
	if pos >= n {
		return 0, running, false
	}

	chunks := leaf.Chunks()
	chunkIdx := pos / chunkSize
	for chunkIdx < len(chunks) {
		c := chunks[chunkIdx]
		chunkStart := chunkIdx * chunkSize
		chunkEnd := chunkStart + chunkSize
		if chunkEnd > n {
			chunkEnd = n
		}
		if running+int(c.MinExcess) > d {
			running += int(c.BlockExcess)
			chunkIdx++
			continue
		}
		for b := chunkStart; b < chunkEnd; b++ {
			if leaf.Access(b) {
				running--
			} else {
				running++
			}
			if running == d {
				return b, running, true
			}
		}
		chunkIdx++
	}
	return 0, running, false
}

// backwardSearch scans exclusively from bit p leftward (positions
// p-1, p-2, ...), accumulating excess with the reversed polarity
// bit 1 = +1, bit 0 = -1, and returns the first position whose running
// excess equals d. leafstore's ExcessChunk summaries are forward-
// oriented only (spec §9's compute_block_excess convention), so there is
// no reverse-direction chunk summary to prune against here; this walks
// leaf by leaf but scans every visited leaf bit-by-bit rather than
// chunk-skipping within it. Still O(leaf length) per visited leaf, just
// without tier 2's pruning.
func backwardSearch(bv *dynbitvector.DynamicBitVector, p, d int) (int, bool) {
	leaves := bv.Leaves()
	idx := locateLeaf(leaves, p)
	if idx < 0 {
		return 0, false
	}

	running := 0
	for li := idx; li >= 0; li-- {
		span := leaves[li]
		localStart := span.Store.Len() - 1
		if li == idx {
			localStart = p - span.Start - 1
		}
		for b := localStart; b >= 0; b-- {
			if span.Store.Access(b) {
				running++
			} else {
				running--
			}
			if running == d {
				return span.Start + b, true
			}
		}
	}
	return 0, false
}

// locateLeaf returns the index of the leaf span containing bit p, or -1
// if p is not covered by any leaf (p == bv.Len() is valid: it resolves
// to the final leaf, one past its last bit, which forwardSearch's
// caller relies on for "one past the last child" computations).
func locateLeaf(leaves []dynbitvector.LeafSpan, p int) int {
	if len(leaves) == 0 {
		return -1
	}
	for i := len(leaves) - 1; i >= 0; i-- {
		if p >= leaves[i].Start {
			return i
		}
	}
	return -1
}
