package sample

import (
	"fmt"
	"io"

	"github.com/cronokirby/saferith"
	cryptorand "github.com/decred/dcrd/crypto/rand"

	"github.com/ckanthony/eots-sign-poc/pkg/math/curve"
)

const maxIterations = 255

var ErrMaxIterations = fmt.Errorf("sample: failed to generate after %d iterations", maxIterations)

// Reader returns the default cryptographically secure randomness source: a
// userspace PRNG periodically reseeded from the operating system, safe for
// concurrent use.
func Reader() io.Reader {
	return cryptorand.Reader()
}

// Scalar samples a uniform non-zero scalar of the group by rejection.
func Scalar(rand io.Reader, group curve.Curve) (curve.Scalar, error) {
	buf := make([]byte, group.ScalarBytes())
	for i := 0; i < maxIterations; i++ {
		if _, err := io.ReadFull(rand, buf); err != nil {
			return nil, fmt.Errorf("sample: %w", err)
		}
		out := new(saferith.Nat).SetBytes(buf)
		_, _, lt := out.CmpMod(group.Order())
		if lt != 1 {
			continue
		}
		scalar := group.NewScalar().SetNat(out)
		if scalar.IsZero() {
			continue
		}
		return scalar, nil
	}
	return nil, ErrMaxIterations
}
