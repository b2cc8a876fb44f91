package itreetesting

import "sort"

// Overlapping is the brute force oracle: the IDs of every span in spans
// overlapping the half-open query [qBeg, qEnd), in insertion order.
func Overlapping(spans []Span, qBeg, qEnd int64) []int {
	var ids []int
	for id, s := range spans {
		if s.Beg < qEnd && s.End > qBeg {
			ids = append(ids, id)
		}
	}
	return ids
}

// Matching returns the IDs of every span exactly equal to [qBeg, qEnd), in
// insertion order.
func Matching(spans []Span, qBeg, qEnd int64) []int {
	var ids []int
	for id, s := range spans {
		if s.Beg == qBeg && s.End == qEnd {
			ids = append(ids, id)
		}
	}
	return ids
}

// SortSpans stably sorts spans by (beg, end) ascending, the index's sorted
// order.
func SortSpans(spans []Span) {
	sort.SliceStable(spans, func(i, j int) bool {
		if spans[i].Beg != spans[j].Beg {
			return spans[i].Beg < spans[j].Beg
		}
		return spans[i].End < spans[j].End
	})
}
