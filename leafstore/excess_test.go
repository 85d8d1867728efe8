package leafstore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func bpConfig() Config {
	return Config{MinLeafBlocks: BlocksPerChunk, InitialLeafBlocks: BlocksPerChunk, MaxLeafBlocks: 2 * BlocksPerChunk, ExcessEnabled: true}
}

// push inserts bits encoding a balanced-parenthesis sequence, false="(" +1
// excess, true=")" -1 excess, matching bptree's polarity.
func push(l *LeafStore, seq []bool) {
	for _, v := range seq {
		l.Insert(l.Len(), v)
	}
}

func TestChunkSummaryMatchesManualScan(t *testing.T) {
	l := New(bpConfig())
	// "(()(()))" -> false,false,true,false,false,true,true,true
	seq := []bool{false, false, true, false, false, true, true, true}
	push(l, seq)

	running, min, numMin := 0, 1<<30, 0
	for _, v := range seq {
		if v {
			running--
		} else {
			running++
		}
		switch {
		case running < min:
			min, numMin = running, 1
		case running == min:
			numMin++
		}
	}
	chunks := l.Chunks()
	require.Len(t, chunks, 1)
	require.Equal(t, int32(running), chunks[0].BlockExcess)
	require.Equal(t, int32(min), chunks[0].MinExcess)
	require.Equal(t, int32(numMin), chunks[0].NumMin)
}

func TestChunkSummaryRescansAfterMutation(t *testing.T) {
	l := New(bpConfig())
	for i := 0; i < BlocksPerChunk*BlockWidth; i++ {
		l.Insert(i, i%2 == 0)
	}
	before := l.Chunks()[0]
	l.Flip(0)
	after := l.Chunks()[0]
	require.NotEqual(t, before, after)
}

func TestEmptyChunkHasSentinelMinExcess(t *testing.T) {
	l := New(bpConfig())
	l.Insert(0, false)
	l.Delete(0)
	require.Equal(t, 0, l.Len())
	require.Equal(t, int32(2), rescanChunk(l.Words(), 0, l.Len()).MinExcess)
}

func TestMisalignedAppendRejectedWhenExcessEnabled(t *testing.T) {
	l := New(bpConfig())
	push(l, []bool{false, true, false})
	other := New(bpConfig())
	push(other, []bool{false, true})
	err := l.Append(other)
	require.ErrorIs(t, err, ErrMisalignedAppend)
}

func TestAlignedAppendConcatenatesChunks(t *testing.T) {
	l := New(bpConfig())
	for i := 0; i < BlocksPerChunk*BlockWidth; i++ {
		l.Insert(i, i%5 == 0)
	}
	other := New(bpConfig())
	other.Insert(0, true)
	other.Insert(1, false)
	require.NoError(t, l.Append(other))
	require.Equal(t, BlocksPerChunk*BlockWidth+2, l.Len())
	require.True(t, l.Access(BlocksPerChunk*BlockWidth))
	require.False(t, l.Access(BlocksPerChunk*BlockWidth+1))
}
