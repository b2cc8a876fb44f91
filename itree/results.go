package itree

import "cmp"

// Result is a materialized query hit: an interval and the ID it was assigned
// by Builder.Add.
type Result[K cmp.Ordered] struct {
	Beg K
	End K
	ID  int
}

func (x *Index[K]) result(i int) Result[K] {
	return Result[K]{Beg: x.begs[i], End: x.ends[i], ID: x.ID(i)}
}

// QueryOverlap returns all stored intervals overlapping [qBeg, qEnd), in
// walk order.
func (x *Index[K]) QueryOverlap(qBeg, qEnd K) []Result[K] {
	var results []Result[K]
	x.Walk(qBeg, qEnd, func(i int) bool {
		results = append(results, x.result(i))
		return true
	})
	return results
}

// QueryAnyOverlap returns one stored interval overlapping [qBeg, qEnd), if
// any exists.
func (x *Index[K]) QueryAnyOverlap(qBeg, qEnd K) (Result[K], bool) {
	var r Result[K]
	found := false
	x.Walk(qBeg, qEnd, func(i int) bool {
		r, found = x.result(i), true
		return false
	})
	return r, found
}

// QueryOverlapExists reports whether any stored interval overlaps
// [qBeg, qEnd).
func (x *Index[K]) QueryOverlapExists(qBeg, qEnd K) bool {
	_, found := x.QueryAnyOverlap(qBeg, qEnd)
	return found
}

// QueryExact returns all stored intervals exactly equal to [qBeg, qEnd), in
// ID order of insertion.
func (x *Index[K]) QueryExact(qBeg, qEnd K) []Result[K] {
	var results []Result[K]
	x.WalkExact(qBeg, qEnd, func(i int) bool {
		results = append(results, x.result(i))
		return true
	})
	return results
}

// QueryAnyExact returns one stored interval exactly equal to [qBeg, qEnd),
// if any exists.
func (x *Index[K]) QueryAnyExact(qBeg, qEnd K) (Result[K], bool) {
	var r Result[K]
	found := false
	x.WalkExact(qBeg, qEnd, func(i int) bool {
		r, found = x.result(i), true
		return false
	})
	return r, found
}

// QueryExactExists reports whether any stored interval exactly equals
// [qBeg, qEnd).
func (x *Index[K]) QueryExactExists(qBeg, qEnd K) bool {
	_, found := x.QueryAnyExact(qBeg, qEnd)
	return found
}

// QueryAll calls visit with every stored interval in sorted order. visit
// returns true to continue or false to stop.
func (x *Index[K]) QueryAll(visit func(r Result[K]) bool) {
	for i := range x.begs {
		if !visit(x.result(i)) {
			return
		}
	}
}
