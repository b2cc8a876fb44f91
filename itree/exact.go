package itree

import "sort"

// WalkExact calls visit with the sorted position of every stored interval
// exactly equal to [qBeg, qEnd). visit returns true to continue or false to
// stop immediately.
//
// Positions with equal beg sort by end, so the matches are found with one
// binary search on the begin positions followed by a bounded scan.
func (x *Index[K]) WalkExact(qBeg, qEnd K, visit func(i int) bool) {
	n := len(x.begs)
	p := sort.Search(n, func(i int) bool { return x.begs[i] >= qBeg })
	for ; p < n && x.begs[p] == qBeg && x.ends[p] <= qEnd; p++ {
		if x.ends[p] == qEnd && !visit(p) {
			return
		}
	}
}
