package ecdsa

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/taurusgroup/sec1/pkg/hash"
	"github.com/taurusgroup/sec1/pkg/math/curve"
)

func mustHex(t *testing.T, s string) *big.Int {
	t.Helper()
	n, ok := new(big.Int).SetString(s, 16)
	require.True(t, ok)
	return n
}

func TestSignVerifyRoundTrip(t *testing.T) {
	group := curve.Secp256r1()
	sk := GenerateKey(rand.Reader, group)
	pk := sk.PublicKey()
	message := []byte("hello, weierstrass")

	for name, h := range map[string]MessageHash{
		"blake3": hash.Blake3,
		"sha3":   hash.SHA3,
	} {
		h := h
		t.Run(name, func(t *testing.T) {
			sig := sk.Sign(rand.Reader, h, message)
			assert.True(t, pk.Verify(h, message, sig))
		})
	}
}

// The deterministic scenario: the RFC 6979 P-256 test key, a fixed ephemeral
// scalar, and SHA3-256 as the injected hash.
func TestSignFixedNonce(t *testing.T) {
	group := curve.Secp256r1()
	d := mustHex(t, "C9AFA9D845BA75166B5C215767B1D6934E50C3DB36E89B127B8A622B120F6721")
	k := mustHex(t, "A6E3C57DD01ABE90086538398355DD4C3B17AA873382B0F24D6129493D8AAD60")
	message := []byte("test message")

	sk, err := NewPrivateKey(group, d)
	require.NoError(t, err)

	e := hashToInt(hash.SHA3(message), group.N())
	sig, ok := sk.signWithNonce(k, e)
	require.True(t, ok)

	assert.Zero(t, sig.R.Cmp(mustHex(t, "EFD48B2AACB6A8FD1140DD9CD45E81D69D2C877B56AAF991C34D0EA84EAF3716")))
	assert.Zero(t, sig.S.Cmp(mustHex(t, "72BDA7770E6B8B2D1617D63F99BADDE07EF051168BD66C758FEC30D45E9F4D24")))

	assert.True(t, sk.PublicKey().Verify(hash.SHA3, message, sig))

	otherKey, err := NewPrivateKey(group, new(big.Int).Add(d, big.NewInt(1)))
	require.NoError(t, err)
	assert.False(t, otherKey.PublicKey().Verify(hash.SHA3, message, sig))
}

func TestVerifyTamper(t *testing.T) {
	group := curve.Secp256r1()
	sk := GenerateKey(rand.Reader, group)
	pk := sk.PublicKey()
	message := []byte("payment of 10")

	sig := sk.Sign(rand.Reader, hash.Blake3, message)
	require.True(t, pk.Verify(hash.Blake3, message, sig))

	tamperedR := &Signature{R: new(big.Int).Xor(sig.R, big.NewInt(1)), S: sig.S}
	assert.False(t, pk.Verify(hash.Blake3, message, tamperedR))

	tamperedS := &Signature{R: sig.R, S: new(big.Int).Xor(sig.S, big.NewInt(1))}
	assert.False(t, pk.Verify(hash.Blake3, message, tamperedS))

	highBit := new(big.Int).Lsh(big.NewInt(1), 200)
	tamperedHigh := &Signature{R: new(big.Int).Xor(sig.R, highBit), S: sig.S}
	assert.False(t, pk.Verify(hash.Blake3, message, tamperedHigh))

	assert.False(t, pk.Verify(hash.Blake3, []byte("payment of 1000"), sig))
}

func TestVerifyBoundary(t *testing.T) {
	group := curve.Secp256r1()
	sk := GenerateKey(rand.Reader, group)
	pk := sk.PublicKey()
	message := []byte("boundary")
	sig := sk.Sign(rand.Reader, hash.Blake3, message)

	n := group.N()
	zero := big.NewInt(0)
	tests := []struct {
		name string
		sig  *Signature
	}{
		{"nil signature", nil},
		{"r = 0", &Signature{R: zero, S: sig.S}},
		{"s = 0", &Signature{R: sig.R, S: zero}},
		{"r = n", &Signature{R: n, S: sig.S}},
		{"s = n", &Signature{R: sig.R, S: n}},
		{"r negative", &Signature{R: big.NewInt(-1), S: sig.S}},
		{"missing s", &Signature{R: sig.R}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, pk.Verify(hash.Blake3, message, tt.sig))
		})
	}
}

func TestHashToInt(t *testing.T) {
	// n with a 16-bit order: digests longer than 16 bits lose their
	// low-order excess, shorter ones pass through unchanged. The shift is
	// decided by the total digest bit count.
	n := big.NewInt(0x8001)
	tests := []struct {
		name   string
		digest []byte
		want   int64
	}{
		{"digest shorter than n", []byte{0xFF}, 0xFF},
		{"digest exactly n bits", []byte{0xAB, 0xCD}, 0xABCD},
		{"digest one byte longer", []byte{0xAB, 0xCD, 0xEF}, 0xABCD},
		{"digest two bytes longer", []byte{0xAB, 0xCD, 0xEF, 0x12}, 0xABCD},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hashToInt(tt.digest, n)
			assert.Equal(t, tt.want, got.Int64())
		})
	}
}

func TestConcurrentSigning(t *testing.T) {
	group := curve.Secp256r1()
	sk := GenerateKey(rand.Reader, group)
	pk := sk.PublicKey()

	var g errgroup.Group
	for i := 0; i < 8; i++ {
		message := []byte{byte(i)}
		g.Go(func() error {
			for j := 0; j < 4; j++ {
				sig := sk.Sign(rand.Reader, hash.Blake3, message)
				if !pk.Verify(hash.Blake3, message, sig) {
					return assert.AnError
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestSignatureScalarsInRange(t *testing.T) {
	group := curve.Secp256r1()
	sk := GenerateKey(rand.Reader, group)
	n := group.N()

	for i := 0; i < 4; i++ {
		sig := sk.Sign(rand.Reader, hash.SHA3, []byte{byte(i)})
		assert.True(t, inScalarRange(sig.R, n))
		assert.True(t, inScalarRange(sig.S, n))
	}
}
