package itree

import "cmp"

// Index is the immutable interval store. All fields are assigned exactly
// once during build and never written afterward, so any number of walks may
// run concurrently over a built index.
type Index[K cmp.Ordered] struct {
	// The intervals sorted by (beg, end) ascending, with the interval tree
	// augmentation alongside, in parallel arrays to keep them unboxed.
	begs, ends, maxEnds []K
	// indexNodes holds the slice offsets, SliceOffsets(len(begs)).
	indexNodes []int
	// permute maps sorted position to insertion ID. It is nil when the
	// builder observed its input already sorted, in which case IDs coincide
	// with sorted positions.
	permute []int32
}

func newIndex[K cmp.Ordered](b *Builder[K]) *Index[K] {
	n := len(b.begs)
	x := &Index[K]{
		begs:    make([]K, n),
		ends:    make([]K, n),
		maxEnds: make([]K, n),
	}

	if b.sorted {
		copy(x.begs, b.begs)
		copy(x.ends, b.ends)
	} else {
		x.permute = sortPermutation(b.begs, b.ends)
		for i, p := range x.permute {
			x.begs[i] = b.begs[p]
			x.ends[i] = b.ends[p]
		}
	}

	x.indexNodes = SliceOffsets(n)
	x.buildMaxEnds()
	return x
}

// Size returns the total number of intervals stored.
func (x *Index[K]) Size() int {
	return len(x.begs)
}

// ID returns the insertion ID of the interval at sorted position i.
func (x *Index[K]) ID(i int) int {
	if x.permute != nil {
		return int(x.permute[i])
	}
	return i
}

// Item returns the interval at sorted position i.
func (x *Index[K]) Item(i int) (beg, end K) {
	return x.begs[i], x.ends[i]
}

// Snapshot is the raw array view of an Index, consumed by the codec layer.
// The slices share the index's backing arrays and must not be written.
type Snapshot[K cmp.Ordered] struct {
	Begs, Ends, MaxEnds []K
	IndexNodes          []int
	// Permute is nil when IDs coincide with sorted positions.
	Permute []int32
}

// Snapshot returns the raw array view of the index.
func (x *Index[K]) Snapshot() Snapshot[K] {
	return Snapshot[K]{
		Begs:       x.begs,
		Ends:       x.ends,
		MaxEnds:    x.maxEnds,
		IndexNodes: x.indexNodes,
		Permute:    x.permute,
	}
}

// FromSnapshot reconstitutes an Index from a previously captured (typically
// deserialized) Snapshot. The snapshot is revalidated with Validate, so
// structural damage fails here; Validate does not check that each maxEnd
// equals its subtree maximum or that the permutation holds each ID once. The
// index takes ownership of the slices.
func FromSnapshot[K cmp.Ordered](s Snapshot[K]) (*Index[K], error) {
	x := &Index[K]{
		begs:       s.Begs,
		ends:       s.Ends,
		maxEnds:    s.MaxEnds,
		indexNodes: s.IndexNodes,
		permute:    s.Permute,
	}
	if err := x.Validate(); err != nil {
		return nil, err
	}
	return x, nil
}
