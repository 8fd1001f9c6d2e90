// Package eots implements an ephemeral one-time signature scheme over
// secp256k1.
//
// Signatures are Schnorr-style, with one defining twist: the x-coordinate of
// the per-signature nonce point is published as part of the signature.
// Signing two distinct messages with the same nonce therefore leaks two
// linear equations in the private key, and RecoverPrivateKey solves them.
// The scheme is a deterrent: it makes reuse of a one-time commitment
// self-incriminating for the signer.
package eots

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"

	"github.com/cronokirby/saferith"

	"github.com/ckanthony/eots-sign-poc/internal/params"
	"github.com/ckanthony/eots-sign-poc/pkg/math/arith"
	"github.com/ckanthony/eots-sign-poc/pkg/math/curve"
	"github.com/ckanthony/eots-sign-poc/pkg/math/sample"
)

// ErrEqualChallenges is returned by RecoverPrivateKey when the two signatures
// bind the same challenge. The linear system is singular in that case,
// typically because the same message was signed twice, which leaks nothing.
var ErrEqualChallenges = errors.New("eots: challenges are equal, cannot recover private key")

// Signature is the published triple. PublicNonce is the x-coordinate of the
// nonce point and is exposed on purpose: it is what turns nonce reuse into
// key exposure.
type Signature struct {
	PublicKey   string
	PublicNonce string
	S           string
}

// Normalize forces the even-y representative of a (scalar, point) pair,
// negating both in place when the point's y-coordinate is odd. It is applied
// identically to the signing key and to the nonce, so that the public
// artifact can carry the x-coordinate alone.
func Normalize(k curve.Scalar, p curve.Point) (curve.Scalar, curve.Point) {
	if p.HasEvenY() {
		return k, p
	}
	return k.Negate(), p.Negate()
}

// Sign produces a signature over message with privateKey.
//
// privateKey must be exactly 32 bytes. nonce, when supplied, must also be
// exactly 32 bytes and is used verbatim, making the output fully
// deterministic. When nonce is nil a fresh one is derived from a single read
// of the process CSPRNG, hedged with the private key and message digest.
func Sign(privateKey []byte, message string, nonce []byte) (*Signature, error) {
	if len(privateKey) != params.BytesScalar {
		return nil, fmt.Errorf("eots: private key must be %d bytes, got %d", params.BytesScalar, len(privateKey))
	}
	if nonce != nil && len(nonce) != params.BytesScalar {
		return nil, fmt.Errorf("eots: nonce must be %d bytes, got %d", params.BytesScalar, len(nonce))
	}

	group := curve.Secp256k1{}
	digest := MessageDigest(message)

	d := group.NewScalar().SetNat(new(saferith.Nat).SetBytes(privateKey))
	d, P := Normalize(d, d.ActOnBase())
	pubKeyX := P.XBytes()

	if nonce == nil {
		var err error
		nonce, err = hedgedNonce(sample.Reader(), privateKey, digest)
		if err != nil {
			return nil, err
		}
	}
	a := group.NewScalar().SetNat(new(saferith.Nat).SetBytes(nonce))
	a, R := Normalize(a, a.ActOnBase())
	nonceX := R.XBytes()

	e := Challenge(nonceX, pubKeyX, digest)

	// s = a + e·d (mod n), with the normalized key and nonce.
	s := e.Mul(d).Add(a)
	sBytes, err := s.MarshalBinary()
	if err != nil {
		return nil, err
	}

	return &Signature{
		PublicKey:   hex.EncodeToString(pubKeyX),
		PublicNonce: hex.EncodeToString(nonceX),
		S:           hex.EncodeToString(sBytes),
	}, nil
}

// Verify checks a signature triple against message.
//
// Malformed encodings are reported as errors. A well-formed signature that
// is cryptographically invalid, including an s outside [1, n-1], yields
// (false, nil), never an error.
func Verify(publicKey, publicNonce, message, s string) (bool, error) {
	if !hex64.MatchString(publicKey) {
		return false, fmt.Errorf("eots: invalid public key format: %q", publicKey)
	}
	if !hex64.MatchString(publicNonce) {
		return false, fmt.Errorf("eots: invalid public nonce format: %q", publicNonce)
	}
	if !hex64.MatchString(s) {
		return false, fmt.Errorf("eots: invalid signature format: %q", s)
	}

	group := curve.Secp256k1{}
	digest := MessageDigest(message)
	pubKeyX := mustDecodeHex(publicKey)
	nonceX := mustDecodeHex(publicNonce)

	e := Challenge(nonceX, pubKeyX, digest)

	sInt := new(big.Int).SetBytes(mustDecodeHex(s))
	if sInt.Sign() <= 0 || sInt.Cmp(arith.N) >= 0 {
		return false, nil
	}
	sScalar := group.NewScalar()
	if err := sScalar.UnmarshalBinary(sInt.FillBytes(make([]byte, params.BytesScalar))); err != nil {
		return false, nil
	}

	P, err := group.LiftX(pubKeyX)
	if err != nil {
		return false, fmt.Errorf("eots: invalid public key: %w", err)
	}
	R, err := group.LiftX(nonceX)
	if err != nil {
		return false, fmt.Errorf("eots: invalid public nonce: %w", err)
	}

	// s·G == R + e·P
	return sScalar.ActOnBase().Equal(R.Add(e.Act(P))), nil
}

// RecoverPrivateKey solves for the private key given two signatures that
// share a nonce and public key but bind different messages.
//
// Both message arguments are precomputed 32-byte digests. The result is the
// hex encoding of the normalized private key, the same value Sign used after
// forcing the even-y convention.
func RecoverPrivateKey(s1, s2, msg1Digest, msg2Digest, publicKey, publicNonce string) (string, error) {
	for _, field := range []string{s1, s2, msg1Digest, msg2Digest, publicKey, publicNonce} {
		if !hex64.MatchString(field) {
			return "", errors.New("eots: all recovery inputs must be 64 hex characters")
		}
	}

	pubKeyX := mustDecodeHex(publicKey)
	nonceX := mustDecodeHex(publicNonce)

	e1 := challengeInt(nonceX, pubKeyX, mustDecodeHex(msg1Digest))
	e2 := challengeInt(nonceX, pubKeyX, mustDecodeHex(msg2Digest))
	if e1.Cmp(e2) == 0 {
		return "", ErrEqualChallenges
	}

	// s1 = a + e1·d and s2 = a + e2·d (mod n), so
	// d = (s1 - s2)·(e1 - e2)⁻¹ (mod n).
	sDelta := arith.ModN(new(big.Int).Sub(
		new(big.Int).SetBytes(mustDecodeHex(s1)),
		new(big.Int).SetBytes(mustDecodeHex(s2)),
	))
	eDelta := arith.ModN(new(big.Int).Sub(e1, e2))
	eDeltaInv, err := arith.ModInverse(eDelta, arith.N)
	if err != nil {
		return "", fmt.Errorf("eots: %w", err)
	}

	d := arith.ModN(sDelta.Mul(sDelta, eDeltaInv))
	return hex.EncodeToString(d.FillBytes(make([]byte, params.BytesScalar))), nil
}

// mustDecodeHex decodes a string already validated against hex64.
func mustDecodeHex(s string) []byte {
	data, err := hex.DecodeString(s)
	if err != nil {
		panic(fmt.Sprintf("eots: decoding validated hex: %v", err))
	}
	return data
}
