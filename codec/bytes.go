package codec

import "encoding/binary"

func readU32LE(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}

func writeU32LE(b []byte, v uint32) {
	binary.LittleEndian.PutUint32(b, v)
}
