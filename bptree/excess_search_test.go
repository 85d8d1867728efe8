package bptree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForwardSearchFindsMatchingClose(t *testing.T) {
	tree, err := New()
	require.NoError(t, err)
	root := tree.Root()
	require.NoError(t, tree.InsertNode(root, 1, 0))
	require.NoError(t, tree.InsertNode(root, 2, 0))

	// Sequence is "( ( ) ( ) )": positions 0..5.
	pos, ok := forwardSearch(tree.bv, 0, 0)
	require.True(t, ok)
	require.Equal(t, 5, pos)

	pos, ok = forwardSearch(tree.bv, 1, 0)
	require.True(t, ok)
	require.Equal(t, 2, pos)

	pos, ok = forwardSearch(tree.bv, 3, 0)
	require.True(t, ok)
	require.Equal(t, 4, pos)
}

func TestBackwardSearchFindsParent(t *testing.T) {
	tree, err := New()
	require.NoError(t, err)
	root := tree.Root()
	require.NoError(t, tree.InsertNode(root, 1, 0))
	child, err := tree.IthChild(root, 1)
	require.NoError(t, err)

	pos, ok := backwardSearch(tree.bv, child, -1)
	require.True(t, ok)
	require.Equal(t, root, pos)
}

func TestForwardSearchSpansLeafBoundary(t *testing.T) {
	tree, err := New()
	require.NoError(t, err)
	root := tree.Root()
	// Enough children to force the underlying leaf to split at least
	// once (2002 bits; DefaultBPConfig splits a leaf once it reaches 32
	// words), exercising tier 3's cross-leaf continuation.
	for i := 1; i <= 1000; i++ {
		require.NoError(t, tree.InsertNode(root, i, 0))
	}
	size, err := tree.SubtreeSize(root)
	require.NoError(t, err)
	require.Equal(t, 1001, size)

	for i := 1; i <= 1000; i++ {
		c, err := tree.IthChild(root, i)
		require.NoError(t, err)
		p, err := tree.Parent(c)
		require.NoError(t, err)
		require.Equal(t, root, p)
	}
}
