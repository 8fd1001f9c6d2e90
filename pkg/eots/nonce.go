package eots

import (
	"fmt"
	"io"

	"github.com/zeebo/blake3"

	"github.com/ckanthony/eots-sign-poc/internal/params"
)

// nonceTag domain-separates the hedged nonce derivation from any other
// BLAKE3 use.
const nonceTag = "EOTS/nonce"

// hedgedNonce derives a per-signature nonce from a single read of rand,
// mixed with the private key and message digest. A weak randomness source
// alone then no longer produces the colliding nonces this scheme punishes,
// while two honest signatures still get independent nonces.
func hedgedNonce(rand io.Reader, privateKey, digest []byte) ([]byte, error) {
	seed := make([]byte, params.BytesScalar)
	if _, err := io.ReadFull(rand, seed); err != nil {
		return nil, fmt.Errorf("eots: reading nonce randomness: %w", err)
	}

	h := blake3.New()
	_, _ = h.Write([]byte(nonceTag))
	_, _ = h.Write(seed)
	_, _ = h.Write(privateKey)
	_, _ = h.Write(digest)
	return h.Sum(nil)[:params.BytesScalar], nil
}
