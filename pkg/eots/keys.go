package eots

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/cronokirby/saferith"

	"github.com/ckanthony/eots-sign-poc/internal/params"
	"github.com/ckanthony/eots-sign-poc/pkg/math/curve"
	"github.com/ckanthony/eots-sign-poc/pkg/math/sample"
)

// GenKey generates a key pair from a source of randomness, returning the
// 32-byte private key and the hex-encoded x-coordinate of its even-y public
// key. The private key is already normalized: signing with it yields exactly
// the returned public key.
func GenKey(rand io.Reader) ([]byte, string, error) {
	group := curve.Secp256k1{}
	d, err := sample.Scalar(rand, group)
	if err != nil {
		return nil, "", err
	}
	d, P := Normalize(d, d.ActOnBase())
	privateKey, err := d.MarshalBinary()
	if err != nil {
		return nil, "", err
	}
	return privateKey, hex.EncodeToString(P.XBytes()), nil
}

// Public returns the hex-encoded x-coordinate of the even-y public key for
// privateKey.
func Public(privateKey []byte) (string, error) {
	if len(privateKey) != params.BytesScalar {
		return "", fmt.Errorf("eots: private key must be %d bytes, got %d", params.BytesScalar, len(privateKey))
	}
	group := curve.Secp256k1{}
	d := group.NewScalar().SetNat(new(saferith.Nat).SetBytes(privateKey))
	_, P := Normalize(d, d.ActOnBase())
	return hex.EncodeToString(P.XBytes()), nil
}
