// Package bitset provides a dense, word-packed bit vector used as the
// row representation for GF(2) matrices and vertex sets throughout
// fastflow. It plays the same role here that matrix.Dense plays for
// floating-point linear algebra in the teacher library: a single,
// reusable, row-major storage primitive that every higher-level
// package builds on instead of reinventing bit-twiddling.
//
// Contract: every method takes bit positions in [0, Len()). Bounds are
// the caller's responsibility — a Set is always owned by a single driver
// (core.NodeSet, gf2.Matrix) that allocates it to the right width up
// front, so there is no boundary to validate at this layer (unlike
// matrix.Dense.At/Set in the teacher, this does not return an error: it
// is never a package boundary, only an internal hot path).
package bitset

import "math/bits"

const wordBits = 64

// Set is a fixed-width vector of bits packed into 64-bit words.
type Set struct {
	n     int      // number of addressable bits
	words []uint64 // ceil(n/64) words
}

// New returns a zeroed Set with room for n bits.
func New(n int) *Set {
	return &Set{n: n, words: make([]uint64, wordCount(n))}
}

func wordCount(n int) int {
	return (n + wordBits - 1) / wordBits
}

// Len reports the number of addressable bits.
func (s *Set) Len() int { return s.n }

// Resize grows or shrinks the Set to hold n bits and clears every bit.
// Resizing never preserves old contents — cells are explicitly cleared
// before reuse, matching the "ensure_shape never preserves bits" contract
// of the bitset-row matrix (spec §4.1).
func (s *Set) Resize(n int) {
	wc := wordCount(n)
	if cap(s.words) >= wc {
		s.words = s.words[:wc]
	} else {
		s.words = make([]uint64, wc)
	}
	s.n = n
	s.ClearAll()
}

// ClearAll zeroes every bit without changing the width.
func (s *Set) ClearAll() {
	for i := range s.words {
		s.words[i] = 0
	}
}

// Test reports whether bit i is set.
func (s *Set) Test(i int) bool {
	return s.words[i/wordBits]&(uint64(1)<<(uint(i)%wordBits)) != 0
}

// SetBit sets bit i to 1.
func (s *Set) SetBit(i int) {
	s.words[i/wordBits] |= uint64(1) << (uint(i) % wordBits)
}

// ClearBit sets bit i to 0.
func (s *Set) ClearBit(i int) {
	s.words[i/wordBits] &^= uint64(1) << (uint(i) % wordBits)
}

// Toggle flips bit i.
func (s *Set) Toggle(i int) {
	s.words[i/wordBits] ^= uint64(1) << (uint(i) % wordBits)
}

// Assign sets bit i to v.
func (s *Set) Assign(i int, v bool) {
	if v {
		s.SetBit(i)
	} else {
		s.ClearBit(i)
	}
}

// XorInto computes dst ^= s in place. Both must share the same Len.
func (s *Set) XorInto(dst *Set) {
	for i := range s.words {
		dst.words[i] ^= s.words[i]
	}
}

// IsZero reports whether every bit is clear.
func (s *Set) IsZero() bool {
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Count returns the number of set bits.
func (s *Set) Count() int {
	c := 0
	for _, w := range s.words {
		c += bits.OnesCount64(w)
	}
	return c
}

// Each calls fn once for every set bit, in increasing order.
func (s *Set) Each(fn func(i int)) {
	for wi, w := range s.words {
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			fn(wi*wordBits + tz)
			w &= w - 1 // clear lowest set bit
		}
	}
}

// Clone returns an independent copy of s.
func (s *Set) Clone() *Set {
	words := make([]uint64, len(s.words))
	copy(words, s.words)
	return &Set{n: s.n, words: words}
}

// CopyFrom overwrites s's contents with src's. Both must share Len.
func (s *Set) CopyFrom(src *Set) {
	copy(s.words, src.words)
}
