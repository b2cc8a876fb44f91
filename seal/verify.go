package seal

import (
	"bytes"
	"crypto"
	"errors"

	"github.com/datatrails/go-datatrails-common/cbor"
	dtcose "github.com/datatrails/go-datatrails-common/cose"
	"github.com/veraison/go-cose"
)

var (
	ErrSealVerifyFailed = errors.New("seal: the seal signature verification failed")
	ErrWrongPayload     = errors.New("seal: the sealed digest does not match the fetched payload")
)

type publicKeyProvider interface {
	PublicKey() (crypto.PublicKey, cose.Algorithm, error)
}

// DecodeSeal decodes the State values from the signed message. The returned
// state will not verify as-is; its digest was detached after signing. See
// VerifySeal for how to complete the verification.
func DecodeSeal(codec cbor.CBORCodec, msg []byte) (*dtcose.CoseSign1Message, State, error) {
	signed, err := dtcose.NewCoseSign1MessageFromCBOR(msg, newSealDecOptions()...)
	if err != nil {
		return nil, State{}, err
	}

	var unverified State
	err = codec.UnmarshalInto(signed.Payload, &unverified)
	if err != nil {
		return nil, State{}, err
	}
	return signed, unverified, nil
}

// VerifySeal completes verification of a decoded seal against the fetched
// payload bytes:
//  1. the digest of frame is restored into the unverified state,
//  2. the state is re-encoded with the shared deterministic codec,
//  3. the signature is checked over the restored payload.
//
// Only a seal produced over these exact frame bytes verifies.
func VerifySeal(
	codec cbor.CBORCodec, keyProvider publicKeyProvider,
	signed *dtcose.CoseSign1Message, unverified State, frame []byte, external []byte,
) error {
	unverified.PayloadDigest = PayloadDigest(frame)

	var err error
	signed.Payload, err = codec.MarshalCBOR(unverified)
	if err != nil {
		return err
	}
	if err = signed.VerifyWithProvider(keyProvider, external); err != nil {
		return errors.Join(ErrSealVerifyFailed, err)
	}
	return nil
}

// CheckDigest is a convenience for callers holding an already verified
// state and a candidate payload.
func CheckDigest(state State, frame []byte) error {
	if !bytes.Equal(state.PayloadDigest, PayloadDigest(frame)) {
		return ErrWrongPayload
	}
	return nil
}
