package itree

import (
	"fmt"
	"slices"
)

// Validate checks the structural invariants of the index: parallel array
// lengths, interval sanity, sorted order, the augmentation lower bound and
// the slice decomposition. It is intended for debug builds and for
// revalidating deserialized snapshots; a live index built by Builder always
// passes.
func (x *Index[K]) Validate() error {
	n := len(x.begs)
	if len(x.ends) != n || len(x.maxEnds) != n {
		return ErrLengthMismatch
	}
	if x.permute != nil && len(x.permute) != n {
		return ErrBadPermutation
	}

	for i := 0; i < n; i++ {
		if x.ends[i] < x.begs[i] {
			return fmt.Errorf("%w: position %d", ErrBadInterval, i)
		}
		if i > 0 {
			if x.begs[i] < x.begs[i-1] ||
				(x.begs[i] == x.begs[i-1] && x.ends[i] < x.ends[i-1]) {
				return fmt.Errorf("%w: position %d", ErrUnsorted, i)
			}
		}
		if x.maxEnds[i] < x.ends[i] {
			return fmt.Errorf("%w: position %d", ErrBadMaxEnd, i)
		}
	}

	if !slices.Equal(x.indexNodes, SliceOffsets(n)) {
		return ErrBadSliceOffsets
	}

	if x.permute != nil {
		for i, p := range x.permute {
			if p < 0 || int(p) >= n {
				return fmt.Errorf("%w: position %d", ErrBadPermutation, i)
			}
		}
	}
	return nil
}
