package itree

import "math/bits"

// SliceCount returns the number of slices the sorted arrays decompose into
// for n stored intervals: the count of binary one digits of n.
func SliceCount(n int) int {
	return bits.OnesCount64(uint64(n))
}

// SliceOffsets returns the starting offsets of each slice for n stored
// intervals, in ascending order, with a final sentinel equal to n appended so
// that a slice's length is always offsets[k+1] - offsets[k].
//
// Slice lengths are the powers of two in the binary expansion of n, highest
// first, so for n = 11 = 8 + 2 + 1 the offsets are [0, 8, 10, 11]. For n = 0
// the result is just the sentinel, [0], and there are no slices.
func SliceOffsets(n int) []int {
	offsets := make([]int, 1, SliceCount(n)+1)

	rem := n
	for rem > 0 {
		high := 1 << (bits.Len64(uint64(rem)) - 1)
		offsets = append(offsets, offsets[len(offsets)-1]+high)
		rem &^= high
	}
	return offsets
}
