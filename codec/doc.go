// Package codec serializes built interval indexes.
package codec

/*

# Frame format V1

A serialized index is a single contiguous frame: a fixed header followed by
the index arrays, all integers little-endian.

	+----------------------+  16B header
	| magic "IFX1"  (4B)   |
	| version       (1B)   |
	| key tag       (1B)   |
	| flags         (1B)   |
	| reserved      (1B)   |
	| count     u32 (4B)   |
	| sliceCount u32 (4B)  |
	+----------------------+  count * key width each
	| begs                 |
	| ends                 |
	| maxEnds              |
	+----------------------+  (sliceCount + 1) * 4B
	| indexNodes           |
	+----------------------+  count * 4B, present iff FlagPermute
	| permute              |
	+----------------------+

The key tag pins the width and interpretation of the stored keys; Unmarshal
refuses a frame whose tag differs from the supplied KeyCodec rather than
guessing. sliceCount is redundant with count (it is the count's binary digit
sum) and is checked on decode.

Unmarshal reconstitutes the index through its snapshot validator, so a frame
that decodes successfully yields an index with bitwise-identical arrays that
answers every query exactly as the index the frame was produced from.

# CBOR envelope

For callers interchanging with services that already speak deterministic
CBOR, MarshalCBOR/UnmarshalCBOR wrap the same logical content in a keyasint
CBOR map instead of the raw frame. The two encodings carry identical
information; the frame is the compact one.
*/
