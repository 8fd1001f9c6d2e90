// Package arith provides big-integer arithmetic over the secp256k1 scalar
// field.
//
// It is deliberately independent of the curve library so the modular-inverse
// routine can be tested in isolation against known vectors.
package arith

import (
	"errors"
	"math/big"
)

// N is the order of the secp256k1 group. Every scalar computed by the
// recovery solve is reduced into [0, N).
var N, _ = new(big.Int).SetString("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141", 16)

// ErrNotInvertible is returned by ModInverse when gcd(a, n) != 1. For a prime
// modulus and non-zero input this cannot happen, but the gcd is checked
// regardless.
var ErrNotInvertible = errors.New("arith: element is not invertible")

// ExtendedGCD returns g, x, y such that a·x + b·y = g = gcd(a, b).
//
// Both inputs must be non-negative; g is then non-negative, while x and y may
// be negative.
func ExtendedGCD(a, b *big.Int) (*big.Int, *big.Int, *big.Int) {
	r0, r1 := new(big.Int).Set(a), new(big.Int).Set(b)
	x0, x1 := big.NewInt(1), big.NewInt(0)
	y0, y1 := big.NewInt(0), big.NewInt(1)
	for r1.Sign() != 0 {
		q := new(big.Int).Quo(r0, r1)
		r0, r1 = r1, new(big.Int).Sub(r0, new(big.Int).Mul(q, r1))
		x0, x1 = x1, new(big.Int).Sub(x0, new(big.Int).Mul(q, x1))
		y0, y1 = y1, new(big.Int).Sub(y0, new(big.Int).Mul(q, y1))
	}
	return r0, x0, y0
}

// ModInverse returns a⁻¹ (mod n), computed with the extended Euclidean
// algorithm.
func ModInverse(a, n *big.Int) (*big.Int, error) {
	g, x, _ := ExtendedGCD(new(big.Int).Mod(a, n), n)
	if g.Cmp(big.NewInt(1)) != 0 {
		return nil, ErrNotInvertible
	}
	return x.Mod(x, n), nil
}

// ModN reduces z into [0, N) in place, and returns z.
func ModN(z *big.Int) *big.Int {
	return z.Mod(z, N)
}
