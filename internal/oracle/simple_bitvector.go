// Package oracle holds naive, obviously-correct O(n) reference
// implementations used only by tests to differentially check the
// balanced, bit-packed production structures. Ported from
// original_source/advanced-datastructures-st22/src/bv/simple_bitvector.hpp
// and src/bp/simple_tree.hpp, which the original's own reliability
// tests use the same way (a "trust the naive version, hunt for
// divergence in the fancy one" strategy).
package oracle

// SimpleBitVector is a plain []bool bit sequence: no packing, no
// balancing, just slice operations. Every dynbitvector.DynamicBitVector
// operation has a one-line equivalent here.
type SimpleBitVector struct {
	bits []bool
}

// NewSimpleBitVector returns an empty reference bit vector.
func NewSimpleBitVector() *SimpleBitVector { return &SimpleBitVector{} }

func (s *SimpleBitVector) Len() int { return len(s.bits) }

func (s *SimpleBitVector) Access(i int) bool { return s.bits[i] }

func (s *SimpleBitVector) Set(i int, v bool) { s.bits[i] = v }

func (s *SimpleBitVector) Flip(i int) { s.bits[i] = !s.bits[i] }

func (s *SimpleBitVector) Insert(i int, v bool) {
	s.bits = append(s.bits, false)
	copy(s.bits[i+1:], s.bits[i:])
	s.bits[i] = v
}

func (s *SimpleBitVector) Delete(i int) {
	s.bits = append(s.bits[:i], s.bits[i+1:]...)
}

func (s *SimpleBitVector) Rank1(i int) int {
	count := 0
	for j := 0; j < i; j++ {
		if s.bits[j] {
			count++
		}
	}
	return count
}

func (s *SimpleBitVector) Rank0(i int) int { return i - s.Rank1(i) }

// Select1 returns the position of the k-th (1-indexed) one, or false if
// there aren't k ones.
func (s *SimpleBitVector) Select1(k int) (int, bool) {
	for i, b := range s.bits {
		if b {
			k--
			if k == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// Select0 mirrors Select1 for zero bits.
func (s *SimpleBitVector) Select0(k int) (int, bool) {
	for i, b := range s.bits {
		if !b {
			k--
			if k == 0 {
				return i, true
			}
		}
	}
	return 0, false
}
