package seal

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/veraison/go-cose"
)

func TestGenerateECKey(t *testing.T, curve elliptic.Curve) ecdsa.PrivateKey {
	privateKey, err := ecdsa.GenerateKey(curve, rand.Reader)
	require.NoError(t, err)
	return *privateKey
}

func TestNewSealer(t *testing.T, issuer string) Sealer {
	cborCodec, err := NewSealerCodec()
	require.NoError(t, err)
	return NewSealer(issuer, cborCodec)
}

func TestCoseSigner(t *testing.T, key ecdsa.PrivateKey) cose.Signer {
	signer, err := cose.NewSigner(cose.AlgorithmES256, &key)
	require.NoError(t, err)
	return signer
}
