package codec

import (
	"cmp"
	"fmt"

	dtcbor "github.com/datatrails/go-datatrails-common/cbor"
	"github.com/fxamacker/cbor/v2"

	"github.com/forestrie/go-intervalforest/itree"
)

// envelopeV1 is the CBOR form of a serialized index. Field keys are small
// ints so the deterministic encoding is compact and stable.
type envelopeV1[K cmp.Ordered] struct {
	Version    uint8    `cbor:"1,keyasint"`
	KeyTag     uint8    `cbor:"2,keyasint"`
	Begs       []K      `cbor:"3,keyasint"`
	Ends       []K      `cbor:"4,keyasint"`
	MaxEnds    []K      `cbor:"5,keyasint"`
	IndexNodes []uint32 `cbor:"6,keyasint"`
	Permute    []int32  `cbor:"7,keyasint,omitempty"`
}

// NewCBORCodec returns the deterministic CBOR codec used for the index
// envelope. The seal package builds its own codec with NewSealerCodec.
func NewCBORCodec() (dtcbor.CBORCodec, error) {
	return NewCBORCodecWithOptions(
		dtcbor.NewDeterministicEncOpts(),
		dtcbor.NewDeterministicDecOpts(),
	)
}

func NewCBORCodecWithOptions(encOpts cbor.EncOptions, decOpts cbor.DecOptions) (dtcbor.CBORCodec, error) {
	codec, err := dtcbor.NewCBORCodec(encOpts, decOpts)
	if err != nil {
		return dtcbor.CBORCodec{}, err
	}
	return codec, nil
}

// MarshalCBOR encodes a built index as a deterministic CBOR envelope.
func MarshalCBOR[K cmp.Ordered](x *itree.Index[K], kc KeyCodec[K]) ([]byte, error) {
	if err := kc.check(); err != nil {
		return nil, err
	}
	codec, err := NewCBORCodec()
	if err != nil {
		return nil, err
	}
	s := x.Snapshot()

	env := envelopeV1[K]{
		Version: VersionV1,
		KeyTag:  kc.Tag,
		Begs:    s.Begs,
		Ends:    s.Ends,
		MaxEnds: s.MaxEnds,
		Permute: s.Permute,
	}
	env.IndexNodes = make([]uint32, len(s.IndexNodes))
	for i, ofs := range s.IndexNodes {
		env.IndexNodes[i] = uint32(ofs)
	}
	return codec.MarshalCBOR(env)
}

// UnmarshalCBOR decodes an envelope produced by MarshalCBOR with the same
// key codec, revalidating the arrays in full.
func UnmarshalCBOR[K cmp.Ordered](data []byte, kc KeyCodec[K]) (*itree.Index[K], error) {
	if err := kc.check(); err != nil {
		return nil, err
	}
	codec, err := NewCBORCodec()
	if err != nil {
		return nil, err
	}

	var env envelopeV1[K]
	if err = codec.UnmarshalInto(data, &env); err != nil {
		return nil, err
	}
	if env.Version != VersionV1 {
		return nil, ErrBadVersion
	}
	if env.KeyTag != kc.Tag {
		return nil, ErrKeyTagWrong
	}

	var s itree.Snapshot[K]
	s.Begs = env.Begs
	s.Ends = env.Ends
	s.MaxEnds = env.MaxEnds
	s.Permute = env.Permute
	s.IndexNodes = make([]int, len(env.IndexNodes))
	for i, ofs := range env.IndexNodes {
		s.IndexNodes[i] = int(ofs)
	}
	// deterministic decoding yields nil for an absent array; normalize the
	// empty index so validation sees the sentinel-only offsets
	if s.Begs == nil {
		s.Begs, s.Ends, s.MaxEnds = []K{}, []K{}, []K{}
	}

	x, err := itree.FromSnapshot(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSnapshot, err)
	}
	return x, nil
}
