package itree

import "cmp"

const initialCapacity = 16

// Builder accumulates [beg, end) intervals to be stored in an Index. It is
// single-owner; callers serialize Add externally if building from multiple
// goroutines.
type Builder[K cmp.Ordered] struct {
	begs, ends []K
	sorted     bool
}

// NewBuilder returns an empty Builder.
func NewBuilder[K cmp.Ordered]() *Builder[K] {
	b := &Builder[K]{}
	b.reset()
	return b
}

// Add stores one [beg, end) interval. The positions are half-open, so two
// intervals with coincident end and begin positions abut but do not overlap.
// The same interval may be stored any number of times. Adding the intervals
// already sorted by begin then end position saves time and space, but is not
// required.
//
// The returned ID equals the number of intervals added before this one, and
// is what queries against the built Index report.
func (b *Builder[K]) Add(beg, end K) (int, error) {
	if beg > end {
		return -1, ErrInvalidInterval
	}
	n := len(b.begs)
	if n >= MaxCount {
		return -1, ErrIndexCapacity
	}
	if b.sorted && n > 0 &&
		(beg < b.begs[n-1] || (beg == b.begs[n-1] && end < b.ends[n-1])) {
		b.sorted = false
	}
	b.begs = append(b.begs, beg)
	b.ends = append(b.ends, end)
	return n, nil
}

// Len returns the number of intervals added so far.
func (b *Builder[K]) Len() int {
	return len(b.begs)
}

// IsSorted returns true iff the intervals added so far arrived sorted by
// begin then end position. When it holds at Build time the index carries no
// permutation and IDs coincide with sorted positions.
func (b *Builder[K]) IsSorted() bool {
	return b.sorted
}

// Build creates the immutable Index from the accumulated intervals and
// resets the builder to empty.
func (b *Builder[K]) Build() *Index[K] {
	x := newIndex(b)
	b.reset()
	return x
}

func (b *Builder[K]) reset() {
	b.begs = make([]K, 0, initialCapacity)
	b.ends = make([]K, 0, initialCapacity)
	b.sorted = true
}
