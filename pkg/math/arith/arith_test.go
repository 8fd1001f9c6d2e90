package arith

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtendedGCDVectors(t *testing.T) {
	tests := []struct {
		a, b, g, x, y int64
	}{
		{240, 46, 2, -9, 47},
		{35, 15, 5, 1, -2},
		{1, 7, 1, 1, 0},
		{0, 7, 7, 0, 1},
		{17, 0, 17, 1, 0},
	}
	for _, tc := range tests {
		g, x, y := ExtendedGCD(big.NewInt(tc.a), big.NewInt(tc.b))
		assert.Equal(t, tc.g, g.Int64(), "gcd(%d, %d)", tc.a, tc.b)
		assert.Equal(t, tc.x, x.Int64(), "x for (%d, %d)", tc.a, tc.b)
		assert.Equal(t, tc.y, y.Int64(), "y for (%d, %d)", tc.a, tc.b)
	}
}

func TestExtendedGCDIdentity(t *testing.T) {
	for i := 0; i < 20; i++ {
		a, err := rand.Int(rand.Reader, N)
		require.NoError(t, err)
		b, err := rand.Int(rand.Reader, N)
		require.NoError(t, err)

		g, x, y := ExtendedGCD(a, b)
		lhs := new(big.Int).Mul(a, x)
		lhs.Add(lhs, new(big.Int).Mul(b, y))
		assert.Zero(t, lhs.Cmp(g), "a·x + b·y should equal gcd(a, b)")
		assert.NotEqual(t, -1, g.Sign())
	}
}

func TestModInverseVectors(t *testing.T) {
	inv, err := ModInverse(big.NewInt(3), big.NewInt(7))
	require.NoError(t, err)
	assert.Equal(t, int64(5), inv.Int64())

	inv, err = ModInverse(big.NewInt(10), big.NewInt(17))
	require.NoError(t, err)
	assert.Equal(t, int64(12), inv.Int64())
}

func TestModInverseAgainstStdlib(t *testing.T) {
	for i := 0; i < 20; i++ {
		a, err := rand.Int(rand.Reader, N)
		require.NoError(t, err)
		if a.Sign() == 0 {
			continue
		}
		got, err := ModInverse(a, N)
		require.NoError(t, err)
		want := new(big.Int).ModInverse(a, N)
		assert.Zero(t, got.Cmp(want))

		product := ModN(new(big.Int).Mul(a, got))
		assert.Equal(t, int64(1), product.Int64())
	}
}

func TestModInverseNotInvertible(t *testing.T) {
	_, err := ModInverse(big.NewInt(6), big.NewInt(9))
	assert.ErrorIs(t, err, ErrNotInvertible)

	_, err = ModInverse(big.NewInt(0), N)
	assert.ErrorIs(t, err, ErrNotInvertible)
}

func TestModNRange(t *testing.T) {
	z := new(big.Int).Neg(big.NewInt(5))
	ModN(z)
	assert.Equal(t, 1, z.Sign())
	assert.Equal(t, -1, z.Cmp(N))

	z = new(big.Int).Add(N, big.NewInt(3))
	ModN(z)
	assert.Equal(t, int64(3), z.Int64())
}
