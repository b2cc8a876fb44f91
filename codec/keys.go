package codec

import (
	"cmp"
	"encoding/binary"
	"math"
)

// KeyCodec fixes the serialized form of one key type K: its tag, its byte
// width and the little-endian put/get pair. The built-in codecs below cover
// the numeric key types the index is used with; a caller with a bespoke
// ordered key type supplies its own.
type KeyCodec[K cmp.Ordered] struct {
	Tag   uint8
	Width int
	Put   func(b []byte, k K)
	Get   func(b []byte) K
}

var Int16Keys = KeyCodec[int16]{
	Tag:   TagInt16,
	Width: 2,
	Put:   func(b []byte, k int16) { binary.LittleEndian.PutUint16(b, uint16(k)) },
	Get:   func(b []byte) int16 { return int16(binary.LittleEndian.Uint16(b)) },
}

var Int32Keys = KeyCodec[int32]{
	Tag:   TagInt32,
	Width: 4,
	Put:   func(b []byte, k int32) { binary.LittleEndian.PutUint32(b, uint32(k)) },
	Get:   func(b []byte) int32 { return int32(binary.LittleEndian.Uint32(b)) },
}

var Int64Keys = KeyCodec[int64]{
	Tag:   TagInt64,
	Width: 8,
	Put:   func(b []byte, k int64) { binary.LittleEndian.PutUint64(b, uint64(k)) },
	Get:   func(b []byte) int64 { return int64(binary.LittleEndian.Uint64(b)) },
}

var Uint64Keys = KeyCodec[uint64]{
	Tag:   TagUint64,
	Width: 8,
	Put:   func(b []byte, k uint64) { binary.LittleEndian.PutUint64(b, k) },
	Get:   func(b []byte) uint64 { return binary.LittleEndian.Uint64(b) },
}

var Float32Keys = KeyCodec[float32]{
	Tag:   TagFloat32,
	Width: 4,
	Put:   func(b []byte, k float32) { binary.LittleEndian.PutUint32(b, math.Float32bits(k)) },
	Get:   func(b []byte) float32 { return math.Float32frombits(binary.LittleEndian.Uint32(b)) },
}

var Float64Keys = KeyCodec[float64]{
	Tag:   TagFloat64,
	Width: 8,
	Put:   func(b []byte, k float64) { binary.LittleEndian.PutUint64(b, math.Float64bits(k)) },
	Get:   func(b []byte) float64 { return math.Float64frombits(binary.LittleEndian.Uint64(b)) },
}

func (kc KeyCodec[K]) check() error {
	if kc.Tag == 0 || kc.Width <= 0 || kc.Put == nil || kc.Get == nil {
		return ErrBadKeyCodec
	}
	return nil
}

func (kc KeyCodec[K]) putKeys(b []byte, keys []K) {
	for i, k := range keys {
		kc.Put(b[i*kc.Width:], k)
	}
}

func (kc KeyCodec[K]) getKeys(b []byte, n int) []K {
	keys := make([]K, n)
	for i := range keys {
		keys[i] = kc.Get(b[i*kc.Width:])
	}
	return keys
}
