package eots

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
	"regexp"

	"github.com/ckanthony/eots-sign-poc/internal/params"
	"github.com/ckanthony/eots-sign-poc/pkg/math/curve"
)

// challengeTag is the fixed 33-byte domain-separation constant of the
// challenge hash: the compressed encoding of the secp256k1 generator. It is
// written twice before the hash inputs, mirroring the layout of a BIP-340
// tagged hash. The byte sequence is part of the wire format; changing it
// changes every computed challenge and invalidates existing signatures.
var challengeTag, _ = hex.DecodeString("0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")

// hex64 matches the external encoding shared by every 32-byte value.
var hex64 = regexp.MustCompile(fmt.Sprintf(`^[0-9a-fA-F]{%d}$`, params.HexChars))

// challengeSum hashes (tag ‖ tag ‖ nonceX ‖ pubKeyX ‖ digest) with SHA-256.
// Sign, Verify and RecoverPrivateKey all derive their challenges from this
// one function; any divergence between them silently breaks validity.
func challengeSum(nonceX, pubKeyX, digest []byte) []byte {
	h := sha256.New()
	h.Write(challengeTag)
	h.Write(challengeTag)
	h.Write(nonceX)
	h.Write(pubKeyX)
	h.Write(digest)
	return h.Sum(nil)
}

// Challenge computes the Fiat-Shamir challenge scalar binding the nonce
// point, the public key and the message digest together.
func Challenge(nonceX, pubKeyX, digest []byte) curve.Scalar {
	return curve.FromHash(curve.Secp256k1{}, challengeSum(nonceX, pubKeyX, digest))
}

// challengeInt is Challenge as an unreduced big integer, for the recovery
// solve which works over math/big.
func challengeInt(nonceX, pubKeyX, digest []byte) *big.Int {
	return new(big.Int).SetBytes(challengeSum(nonceX, pubKeyX, digest))
}

// MessageDigest returns the 32-byte digest bound by the challenge hash.
//
// A message that is already 64 hex characters is treated as a precomputed
// digest and decoded as-is; any other message is hashed with SHA-256. The
// length-based rule is part of the scheme's external behavior and must not
// change, but note the pitfall: a raw message that merely looks like a
// 64-character hex string is misread as a digest. Callers who cannot rule
// such messages out should always pass precomputed digests.
func MessageDigest(message string) []byte {
	if hex64.MatchString(message) {
		digest, _ := hex.DecodeString(message)
		return digest
	}
	digest := sha256.Sum256([]byte(message))
	return digest[:]
}
