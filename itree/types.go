package itree

import (
	"errors"
	"math"
)

// MaxCount is the largest number of intervals a single index can store. The
// sorted positions and interval IDs remain within 32 bits so that the
// serialized forms are identical on 32 and 64 bit platforms.
const MaxCount = math.MaxInt32

var (
	ErrInvalidInterval = errors.New("itree: interval begin is after interval end")
	ErrIndexCapacity   = errors.New("itree: index capacity overflow")
)

var (
	ErrLengthMismatch  = errors.New("itree: parallel array lengths differ")
	ErrBadInterval     = errors.New("itree: interval end precedes interval begin")
	ErrUnsorted        = errors.New("itree: intervals are not in sorted order")
	ErrBadMaxEnd       = errors.New("itree: augmentation smaller than an interval end")
	ErrBadSliceOffsets = errors.New("itree: slice offsets do not decompose the item count")
	ErrBadPermutation  = errors.New("itree: permutation does not match the item count")
)
