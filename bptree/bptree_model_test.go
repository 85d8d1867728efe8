package bptree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/succinctds/bpforest/internal/oracle"
)

// TestModelAgainstSimpleTree differentially tests DynamicBPTree against
// oracle.SimpleTree, the naive pointer-based reference port of
// original_source's SimpleTree, by driving both through the same random
// sequence of InsertNode/DeleteNode calls and comparing their balanced-
// parenthesis representations after every step.
func TestModelAgainstSimpleTree(t *testing.T) {
	tree, err := New()
	require.NoError(t, err)
	ref := oracle.NewSimpleTree()

	// ids maps ref's node handles to the bit positions bptree currently
	// assigns those same logical nodes, kept in lockstep after each op.
	ids := map[int]int{ref.Root(): tree.Root()}

	r := rand.New(rand.NewSource(11))
	for step := 0; step < 400; step++ {
		refNodes := allNodes(ref)
		v := refNodes[r.Intn(len(refNodes))]
		childCount := len(refChildren(ref, v))

		if childCount == 0 || r.Intn(2) == 0 {
			i := r.Intn(childCount + 1) // 0..childCount -> 1..childCount+1 after +1
			i++
			k := 0
			if childCount-i+1 > 0 {
				k = r.Intn(childCount - i + 2)
			}
			ok := ref.InsertNode(v, i, k)
			require.True(t, ok, "step %d: oracle rejected InsertNode(%d,%d,%d)", step, v, i, k)
			require.NoError(t, tree.InsertNode(ids[v], i, k), "step %d", step)
		} else {
			children := refChildren(ref, v)
			target := children[r.Intn(len(children))]
			if target == ref.Root() {
				continue
			}
			require.True(t, ref.DeleteNode(target))
			require.NoError(t, tree.DeleteNode(ids[target]))
		}

		resyncIDs(t, ref, tree, ids)
		requireSameShape(t, ref, tree, step)
	}
}

func allNodes(ref *oracle.SimpleTree) []int {
	var out []int
	var walk func(v int)
	walk = func(v int) {
		out = append(out, v)
		for _, c := range refChildren(ref, v) {
			walk(c)
		}
	}
	walk(ref.Root())
	return out
}

func refChildren(ref *oracle.SimpleTree, v int) []int {
	var out []int
	for i := 1; ; i++ {
		c, ok := ref.IthChild(v, i)
		if !ok {
			break
		}
		out = append(out, c)
	}
	return out
}

// resyncIDs rebuilds the ref-handle -> bit-position map from scratch by
// walking both trees in lockstep preorder; InsertNode/DeleteNode can
// reassign bit positions for every node after the mutation point, so
// this is simpler and safer than trying to patch the map incrementally.
func resyncIDs(t *testing.T, ref *oracle.SimpleTree, tree *DynamicBPTree, ids map[int]int) {
	for k := range ids {
		delete(ids, k)
	}
	var walk func(refNode, bpNode int)
	walk = func(refNode, bpNode int) {
		ids[refNode] = bpNode
		children := refChildren(ref, refNode)
		for i, c := range children {
			bc, err := tree.IthChild(bpNode, i+1)
			require.NoError(t, err)
			walk(c, bc)
		}
	}
	walk(ref.Root(), tree.Root())
}

func requireSameShape(t *testing.T, ref *oracle.SimpleTree, tree *DynamicBPTree, step int) {
	wantSize := ref.SubtreeSize(ref.Root())
	gotSize, err := tree.SubtreeSize(tree.Root())
	require.NoError(t, err)
	require.Equal(t, wantSize, gotSize, "step %d: subtree size mismatch", step)
	require.Equal(t, wantSize, tree.Len(), "step %d: node count mismatch", step)
	require.Equal(t, ref.BPRepresentation(), bpBits(t, tree), "step %d: bit sequence mismatch", step)
}

// bpBits reads out tree's full underlying bit sequence for comparison
// against oracle.SimpleTree.BPRepresentation().
func bpBits(t *testing.T, tree *DynamicBPTree) []bool {
	out := make([]bool, tree.bv.Len())
	for i := range out {
		b, err := tree.bv.Access(i)
		require.NoError(t, err)
		out[i] = b
	}
	return out
}
