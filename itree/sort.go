package itree

import (
	"cmp"
	"slices"
)

// sortPermutation returns the permutation that stably sorts the raw arrays
// by (beg, end) ascending, so perm[sortedPos] is the original insertion
// index. Stability keeps equal intervals in insertion order, which is what
// makes reported IDs deterministic.
func sortPermutation[K cmp.Ordered](begs, ends []K) []int32 {
	perm := make([]int32, len(begs))
	for i := range perm {
		perm[i] = int32(i)
	}
	slices.SortStableFunc(perm, func(a, b int32) int {
		if c := cmp.Compare(begs[a], begs[b]); c != 0 {
			return c
		}
		return cmp.Compare(ends[a], ends[b])
	})
	return perm
}
