package codec

import "github.com/forestrie/go-intervalforest/itree"

// FrameBytesV1 returns the total encoded size for count intervals with the
// given key width, with or without the permutation section. The error is
// ErrSizeOverflow when the frame cannot be addressed with an int.
func FrameBytesV1(count int, keyWidth int, withPermute bool) (int, error) {
	if count < 0 || count > itree.MaxCount || keyWidth <= 0 {
		return 0, ErrSizeOverflow
	}
	n := uint64(count)
	sz := uint64(HeaderBytesV1)
	sz += 3 * n * uint64(keyWidth)
	sz += uint64(itree.SliceCount(count)+1) * offsetBytes
	if withPermute {
		sz += n * offsetBytes
	}
	const maxInt = uint64(^uint(0) >> 1)
	if sz > maxInt {
		return 0, ErrSizeOverflow
	}
	return int(sz), nil
}
