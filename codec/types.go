package codec

import "errors"

const (
	MagicV1   = "IFX1"
	VersionV1 uint8 = 1

	// HeaderBytesV1 is the fixed header size preceding the arrays.
	HeaderBytesV1 = 16

	// FlagPermute marks a frame carrying the sorted-position to insertion-ID
	// permutation. Absent, IDs coincide with sorted positions.
	FlagPermute uint8 = 1 << 0

	// offsetBytes is the encoded width of slice offsets, permutation entries
	// and the count fields.
	offsetBytes = 4
)

// Key type tags. A tag is fixed for the lifetime of a serialized index and
// must match the KeyCodec used to read it back.
const (
	TagInt16 uint8 = iota + 1
	TagInt32
	TagInt64
	TagUint64
	TagFloat32
	TagFloat64
)

var (
	ErrBadKeyCodec  = errors.New("codec: key codec lacks a tag, width, Put or Get")
	ErrBadMagic     = errors.New("codec: frame magic invalid")
	ErrBadVersion   = errors.New("codec: frame version unsupported")
	ErrKeyTagWrong  = errors.New("codec: frame key tag does not match the key codec")
	ErrBadFlags     = errors.New("codec: frame flags unsupported")
	ErrBadFrameSize = errors.New("codec: frame length does not match its header")
	ErrBadSliceSum  = errors.New("codec: slice count does not match the item count")
	ErrSizeOverflow = errors.New("codec: frame size computation overflow")
	ErrBadSnapshot  = errors.New("codec: decoded arrays failed validation")
)
