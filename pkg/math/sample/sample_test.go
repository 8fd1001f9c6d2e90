package sample

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ckanthony/eots-sign-poc/pkg/math/curve"
)

func TestScalar(t *testing.T) {
	group := curve.Secp256k1{}
	for i := 0; i < 10; i++ {
		s, err := Scalar(Reader(), group)
		require.NoError(t, err)
		assert.False(t, s.IsZero())

		data, err := s.MarshalBinary()
		require.NoError(t, err)
		assert.Len(t, data, group.ScalarBytes())
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("broken entropy")
}

func TestScalarReaderFailure(t *testing.T) {
	_, err := Scalar(failingReader{}, curve.Secp256k1{})
	assert.ErrorContains(t, err, "broken entropy")
}

func TestReader(t *testing.T) {
	buf := make([]byte, 32)
	n, err := Reader().Read(buf)
	require.NoError(t, err)
	assert.Equal(t, len(buf), n)
	assert.NotEqual(t, make([]byte, 32), buf)
}
