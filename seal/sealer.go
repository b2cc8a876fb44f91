// Package seal produces and verifies COSE Sign1 commitments to published
// index payloads, so workers receiving a broadcast index can check its
// provenance before querying it.
package seal

import (
	"crypto/ecdsa"
	"crypto/rand"
	"crypto/sha256"

	dtcbor "github.com/datatrails/go-datatrails-common/cbor"
	dtcose "github.com/datatrails/go-datatrails-common/cose"
	"github.com/veraison/go-cose"
)

// State defines the details included in a signed commitment to a published
// index payload.
type State struct {
	// Count is the number of intervals in the index.
	Count uint64 `cbor:"1,keyasint"`
	// PayloadDigest is the sha256 of the serialized frame. It is detached
	// before publication; verifiers recompute it from the payload they
	// fetched, so a seal can only be verified against the real bytes.
	PayloadDigest []byte `cbor:"2,keyasint,omitempty"`
	// Timestamp is the unix time (milliseconds) read when the seal was
	// produced. Including it allows the same payload to be re-sealed.
	Timestamp int64 `cbor:"3,keyasint"`
	// KeyTag is the codec key type tag of the sealed frame.
	KeyTag uint8 `cbor:"4,keyasint"`
}

// Sealer signs the state of a published index payload.
type Sealer struct {
	issuer    string
	cborCodec dtcbor.CBORCodec
}

func NewSealer(issuer string, cborCodec dtcbor.CBORCodec) Sealer {
	return Sealer{
		issuer:    issuer,
		cborCodec: cborCodec,
	}
}

// PayloadDigest returns the digest of a serialized frame as committed to by
// State.PayloadDigest.
func PayloadDigest(frame []byte) []byte {
	sum := sha256.Sum256(frame)
	return sum[:]
}

// Sign1 signs the provided state. The returned message carries the state
// with its digest detached; VerifySeal recovers the digest from the fetched
// payload bytes.
func (rs Sealer) Sign1(
	coseSigner cose.Signer, keyIdentifier string, publicKey *ecdsa.PublicKey,
	subject string, state State, external []byte,
) ([]byte, error) {
	payload, err := rs.cborCodec.MarshalCBOR(state)
	if err != nil {
		return nil, err
	}

	coseHeaders := cose.Headers{
		Protected: cose.ProtectedHeader{
			dtcose.HeaderLabelCWTClaims: dtcose.NewCNFClaim(
				rs.issuer, subject, keyIdentifier, coseSigner.Algorithm(), *publicKey),
		},
	}

	msg := cose.Sign1Message{
		Headers: coseHeaders,
		Payload: payload,
	}
	err = msg.Sign(rand.Reader, external, coseSigner)
	if err != nil {
		return nil, err
	}

	// We purposefully detach the digest so that verifiers are forced to
	// recompute it from the payload they actually fetched.
	state.PayloadDigest = nil
	payload, err = rs.cborCodec.MarshalCBOR(state)
	if err != nil {
		return nil, err
	}
	msg.Payload = payload

	return msg.MarshalCBOR()
}

// NewSealerCodec returns the deterministic CBOR codec the sealer and its
// verifiers must share.
func NewSealerCodec() (dtcbor.CBORCodec, error) {
	codec, err := dtcbor.NewCBORCodec(
		dtcbor.NewDeterministicEncOpts(),
		dtcbor.NewDeterministicDecOpts(), // unsigned int decodes to uint64
	)
	if err != nil {
		return dtcbor.CBORCodec{}, err
	}
	return codec, nil
}

func newSealDecOptions() []dtcose.SignOption {
	return []dtcose.SignOption{dtcose.WithDecOptions(dtcbor.NewDeterministicDecOpts())}
}
