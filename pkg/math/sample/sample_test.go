package sample

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/cronokirby/saferith"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// zeroReader always reads zero bytes.
type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

func TestModN(t *testing.T) {
	n := saferith.ModulusFromBytes([]byte{0x01, 0x00})
	for i := 0; i < 64; i++ {
		out := ModN(rand.Reader, n).Big()
		assert.True(t, out.Cmp(big.NewInt(256)) < 0)
	}
}

func TestScalarRange(t *testing.T) {
	order, ok := new(big.Int).SetString("FFFFFFFF00000000FFFFFFFFFFFFFFFFBCE6FAADA7179E84F3B9CAC2FC632551", 16)
	require.True(t, ok)

	one := big.NewInt(1)
	for i := 0; i < 64; i++ {
		s := Scalar(rand.Reader, order)
		assert.True(t, s.Cmp(one) >= 0)
		assert.True(t, s.Cmp(order) < 0)
	}
}

func TestScalarZeroReader(t *testing.T) {
	// ModN over a zero stream yields 0, so the scalar is shifted to 1.
	order := big.NewInt(65537)
	s := Scalar(zeroReader{}, order)
	assert.Equal(t, int64(1), s.Int64())
}

func TestScalarDistinct(t *testing.T) {
	order, ok := new(big.Int).SetString("FFFFFFFF00000000FFFFFFFFFFFFFFFFBCE6FAADA7179E84F3B9CAC2FC632551", 16)
	require.True(t, ok)
	a := Scalar(rand.Reader, order)
	b := Scalar(rand.Reader, order)
	assert.NotZero(t, a.Cmp(b))
}
