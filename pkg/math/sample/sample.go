// Package sample draws the random integers cryptographic signing needs.
//
// All functions take the randomness source as an explicit io.Reader, which
// must be cryptographically secure (crypto/rand.Reader in production). They
// panic after too many failed reads rather than returning an error: a broken
// randomness source is not a recoverable condition.
package sample

import (
	"fmt"
	"io"
	"math/big"

	"github.com/cronokirby/saferith"
)

const maxIterations = 255

var ErrMaxIterations = fmt.Errorf("sample: failed to generate after %d iterations", maxIterations)

func mustReadBits(rand io.Reader, buf []byte) {
	for i := 0; i < maxIterations; i++ {
		if _, err := io.ReadFull(rand, buf); err == nil {
			return
		}
	}
	panic(ErrMaxIterations)
}

// ModN samples an element of ℤₙ by rejection.
func ModN(rand io.Reader, n *saferith.Modulus) *saferith.Nat {
	out := new(saferith.Nat)
	buf := make([]byte, (n.BitLen()+7)/8)
	for {
		mustReadBits(rand, buf)
		out.SetBytes(buf)
		_, _, lt := out.CmpMod(n)
		if lt == 1 {
			break
		}
	}
	return out
}

// Scalar samples a uniform scalar in [1, order−1].
func Scalar(rand io.Reader, order *big.Int) *big.Int {
	bound := new(big.Int).Sub(order, big.NewInt(1))
	n := saferith.ModulusFromBytes(bound.Bytes())
	s := ModN(rand, n).Big()
	return s.Add(s, big.NewInt(1))
}
