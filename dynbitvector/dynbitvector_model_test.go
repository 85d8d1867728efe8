package dynbitvector

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/succinctds/bpforest/internal/oracle"
	"github.com/succinctds/bpforest/leafstore"
)

// TestModelAgainstSimpleBitVector differentially tests the balanced,
// bit-packed DynamicBitVector against oracle.SimpleBitVector, the naive
// reference port of original_source's SimpleBitVector — the same
// strategy the original's own reliability_test.cpp uses.
func TestModelAgainstSimpleBitVector(t *testing.T) {
	bv, err := New(leafstore.Config{MinLeafBlocks: 1, InitialLeafBlocks: 2, MaxLeafBlocks: 4})
	require.NoError(t, err)
	ref := oracle.NewSimpleBitVector()

	r := rand.New(rand.NewSource(42))
	for step := 0; step < 5000; step++ {
		switch {
		case ref.Len() == 0 || r.Intn(3) != 0:
			i := 0
			if ref.Len() > 0 {
				i = r.Intn(ref.Len() + 1)
			}
			v := r.Intn(2) == 1
			require.NoError(t, bv.Insert(i, v))
			ref.Insert(i, v)
		default:
			i := r.Intn(ref.Len())
			require.NoError(t, bv.Delete(i))
			ref.Delete(i)
		}

		require.Equal(t, ref.Len(), bv.Len(), "step %d: length mismatch", step)
		if ref.Len() == 0 {
			continue
		}
		checkPos := r.Intn(ref.Len())
		got, err := bv.Access(checkPos)
		require.NoError(t, err)
		require.Equal(t, ref.Access(checkPos), got, "step %d: access(%d) mismatch", step, checkPos)

		rankPos := r.Intn(ref.Len() + 1)
		gotRank, err := bv.Rank1(rankPos)
		require.NoError(t, err)
		require.Equal(t, ref.Rank1(rankPos), gotRank, "step %d: rank1(%d) mismatch", step, rankPos)
	}

	for i := 0; i < ref.Len(); i++ {
		got, err := bv.Access(i)
		require.NoError(t, err)
		require.Equal(t, ref.Access(i), got, "final position %d", i)
	}
}

// TestDeleteFromLeftAfterBulkInsert resolves spec §9's open question
// about whether repeated left-edge deletion after a large bulk insert
// ever violates a leaf or red-black invariant: it does not, because
// rebalanceLeftUnderflow's steal-then-merge path runs on every
// deletion that would otherwise starve the root's left edge.
func TestDeleteFromLeftAfterBulkInsert(t *testing.T) {
	bv, err := New(leafstore.DefaultConfig())
	require.NoError(t, err)
	ref := oracle.NewSimpleBitVector()

	r := rand.New(rand.NewSource(7))
	const n = 10000
	for i := 0; i < n; i++ {
		v := r.Intn(2) == 1
		require.NoError(t, bv.Insert(bv.Len(), v))
		ref.Insert(ref.Len(), v)
	}
	require.Equal(t, n, bv.Len())

	for bv.Len() > 0 {
		require.NoError(t, bv.Delete(0))
		ref.Delete(0)
		if bv.Len() > 0 && bv.Len()%997 == 0 {
			mid := bv.Len() / 2
			got, err := bv.Access(mid)
			require.NoError(t, err)
			require.Equal(t, ref.Access(mid), got, "remaining length %d", bv.Len())
		}
	}
	require.Equal(t, 0, bv.Len())
	require.Equal(t, 0, bv.NumOnes())
}
