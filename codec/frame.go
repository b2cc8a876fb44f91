package codec

import (
	"cmp"
	"fmt"

	"github.com/forestrie/go-intervalforest/itree"
)

// Marshal encodes a built index as a V1 frame.
func Marshal[K cmp.Ordered](x *itree.Index[K], kc KeyCodec[K]) ([]byte, error) {
	if err := kc.check(); err != nil {
		return nil, err
	}
	s := x.Snapshot()
	n := len(s.Begs)

	frame, err := newFrameV1(n, kc, s.Permute != nil)
	if err != nil {
		return nil, err
	}

	o := HeaderBytesV1
	kc.putKeys(frame[o:], s.Begs)
	o += n * kc.Width
	kc.putKeys(frame[o:], s.Ends)
	o += n * kc.Width
	kc.putKeys(frame[o:], s.MaxEnds)
	o += n * kc.Width
	for _, ofs := range s.IndexNodes {
		writeU32LE(frame[o:], uint32(ofs))
		o += offsetBytes
	}
	for _, id := range s.Permute {
		writeU32LE(frame[o:], uint32(id))
		o += offsetBytes
	}
	return frame, nil
}

// Unmarshal decodes a V1 frame produced by Marshal with the same key codec.
// The arrays are revalidated in full, so a successfully decoded index is
// queryable and answers identically to the one that was marshaled.
func Unmarshal[K cmp.Ordered](frame []byte, kc KeyCodec[K]) (*itree.Index[K], error) {
	if err := kc.check(); err != nil {
		return nil, err
	}
	n, withPermute, err := parseHeaderV1(frame, kc.Tag)
	if err != nil {
		return nil, err
	}
	want, err := FrameBytesV1(n, kc.Width, withPermute)
	if err != nil {
		return nil, err
	}
	if len(frame) != want {
		return nil, ErrBadFrameSize
	}

	var s itree.Snapshot[K]
	o := HeaderBytesV1
	s.Begs = kc.getKeys(frame[o:], n)
	o += n * kc.Width
	s.Ends = kc.getKeys(frame[o:], n)
	o += n * kc.Width
	s.MaxEnds = kc.getKeys(frame[o:], n)
	o += n * kc.Width
	s.IndexNodes = make([]int, itree.SliceCount(n)+1)
	for i := range s.IndexNodes {
		s.IndexNodes[i] = int(readU32LE(frame[o:]))
		o += offsetBytes
	}
	if withPermute {
		s.Permute = make([]int32, n)
		for i := range s.Permute {
			s.Permute[i] = int32(readU32LE(frame[o:]))
			o += offsetBytes
		}
	}

	x, err := itree.FromSnapshot(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSnapshot, err)
	}
	return x, nil
}

// newFrameV1 allocates a frame and fills in its header.
func newFrameV1[K cmp.Ordered](count int, kc KeyCodec[K], withPermute bool) ([]byte, error) {
	sz, err := FrameBytesV1(count, kc.Width, withPermute)
	if err != nil {
		return nil, err
	}
	frame := make([]byte, sz)
	copy(frame[0:4], MagicV1)
	frame[4] = VersionV1
	frame[5] = kc.Tag
	if withPermute {
		frame[6] = FlagPermute
	}
	writeU32LE(frame[8:12], uint32(count))
	writeU32LE(frame[12:16], uint32(itree.SliceCount(count)))
	return frame, nil
}

// parseHeaderV1 returns the item count and permutation flag after checking
// everything else the header pins down.
func parseHeaderV1(frame []byte, wantTag uint8) (int, bool, error) {
	if len(frame) < HeaderBytesV1 {
		return 0, false, ErrBadFrameSize
	}
	if string(frame[0:4]) != MagicV1 {
		return 0, false, ErrBadMagic
	}
	if frame[4] != VersionV1 {
		return 0, false, ErrBadVersion
	}
	if frame[5] != wantTag {
		return 0, false, ErrKeyTagWrong
	}
	if frame[6]&^FlagPermute != 0 || frame[7] != 0 {
		return 0, false, ErrBadFlags
	}
	count := readU32LE(frame[8:12])
	if count > uint32(itree.MaxCount) {
		return 0, false, ErrBadFrameSize
	}
	if readU32LE(frame[12:16]) != uint32(itree.SliceCount(int(count))) {
		return 0, false, ErrBadSliceSum
	}
	return int(count), frame[6]&FlagPermute != 0, nil
}
