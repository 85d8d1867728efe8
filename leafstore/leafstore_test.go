package leafstore

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInsertAccessRoundTrip(t *testing.T) {
	l := New(DefaultConfig())
	want := []bool{true, false, false, true, true, false, true}
	for i, v := range want {
		l.Insert(i, v)
	}
	require.Equal(t, len(want), l.Len())
	for i, v := range want {
		require.Equal(t, v, l.Access(i), "position %d", i)
	}
}

func TestSetResetFlip(t *testing.T) {
	l := New(DefaultConfig())
	for i := 0; i < 10; i++ {
		l.Insert(i, false)
	}
	l.Set(3, true)
	require.True(t, l.Access(3))
	l.Reset(3)
	require.False(t, l.Access(3))
	l.Flip(5)
	require.True(t, l.Access(5))
	l.Flip(5)
	require.False(t, l.Access(5))
}

func TestDeletePreservesOrder(t *testing.T) {
	l := New(DefaultConfig())
	values := []bool{true, false, true, false, true, false, true}
	for i, v := range values {
		l.Insert(i, v)
	}
	l.Delete(2)
	values = append(values[:2], values[3:]...)
	require.Equal(t, len(values), l.Len())
	for i, v := range values {
		require.Equal(t, v, l.Access(i), "position %d after delete", i)
	}
}

func TestInsertAcrossManyWords(t *testing.T) {
	l := New(DefaultConfig())
	n := 500
	want := make([]bool, 0, n)
	r := rand.New(rand.NewSource(1))
	for i := 0; i < n; i++ {
		v := r.Intn(2) == 1
		l.Insert(l.Len(), v)
		want = append(want, v)
	}
	for i, v := range want {
		require.Equal(t, v, l.Access(i), "position %d", i)
	}
	require.Equal(t, (n-1)/BlockWidth+1, l.Blocks())
}

func TestRankSelectRoundTrip(t *testing.T) {
	l := New(DefaultConfig())
	values := []bool{true, false, true, true, false, false, true, false, true, true}
	for i, v := range values {
		l.Insert(i, v)
	}
	ones := 0
	for i, v := range values {
		require.Equal(t, ones, l.Rank1(i), "rank1 at %d", i)
		require.Equal(t, i-ones, l.Rank0(i), "rank0 at %d", i)
		if v {
			ones++
			pos, ok := l.Select1(ones)
			require.True(t, ok)
			require.Equal(t, i, pos)
		}
	}
}

func TestSelectOutOfRange(t *testing.T) {
	l := New(DefaultConfig())
	l.Insert(0, true)
	_, ok := l.Select1(2)
	require.False(t, ok)
	_, ok = l.Select1(0)
	require.False(t, ok)
}

func TestSplitHalvesWords(t *testing.T) {
	l := New(DefaultConfig())
	n := 256
	for i := 0; i < n; i++ {
		l.Insert(i, i%2 == 0)
	}
	other := l.Split()
	require.Equal(t, n/2, l.Len())
	require.Equal(t, n/2, other.Len())
	for i := 0; i < l.Len(); i++ {
		require.Equal(t, i%2 == 0, l.Access(i))
	}
	for i := 0; i < other.Len(); i++ {
		require.Equal(t, (l.Len()+i)%2 == 0, other.Access(i))
	}
}

func TestAppendMergesBack(t *testing.T) {
	l := New(DefaultConfig())
	for i := 0; i < 130; i++ {
		l.Insert(i, i%3 == 0)
	}
	other := l.Split()
	leftLen := l.Len()
	require.NoError(t, l.Append(other))
	require.Equal(t, 130, l.Len())
	for i := 0; i < 130; i++ {
		require.Equal(t, i%3 == 0, l.Access(i), "position %d after merge (split at %d)", i, leftLen)
	}
}

func TestOutOfRangeAccessIsNoOp(t *testing.T) {
	l := New(DefaultConfig())
	l.Insert(0, true)
	require.False(t, l.Access(-1))
	require.False(t, l.Access(5))
	l.Set(5, true) // no-op, must not panic
	l.Delete(5)    // no-op, must not panic
	require.Equal(t, 1, l.Len())
}
