// Package ecdsa implements ECDSA signing and verification over a short
// Weierstrass prime curve, using affine curve arithmetic.
//
// The message hash is an injected capability: any function from message
// bytes to a fixed-length digest works, see MessageHash. Randomness is an
// explicit io.Reader, which must be cryptographically secure. The ephemeral
// scalar is drawn fresh for every signature and never reused; a repeated or
// predictable ephemeral scalar lets anyone recover the private key.
package ecdsa

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/taurusgroup/sec1/pkg/math/curve"
	"github.com/taurusgroup/sec1/pkg/math/sample"
)

// MessageHash is the injected hash capability: message bytes in, fixed-length
// digest out.
type MessageHash func(message []byte) []byte

// PublicKey is a verification key: a non-identity point Q = d⋅G.
type PublicKey struct {
	group *curve.Curve
	q     *curve.Point
}

// PrivateKey is a signing key: a scalar d ∈ [1, n−1] with its public point.
type PrivateKey struct {
	d      *big.Int
	public *PublicKey
}

// GenerateKey draws a private scalar uniformly from [1, n−1] and derives the
// matching public key.
func GenerateKey(rand io.Reader, group *curve.Curve) *PrivateKey {
	d := sample.Scalar(rand, group.N())
	sk, err := NewPrivateKey(group, d)
	if err != nil {
		// Scalar guarantees d ∈ [1, n−1].
		panic(err)
	}
	return sk
}

// NewPrivateKey builds a private key from an existing scalar.
// The scalar must lie in [1, n−1].
func NewPrivateKey(group *curve.Curve, d *big.Int) (*PrivateKey, error) {
	if d.Sign() < 1 || d.Cmp(group.N()) >= 0 {
		return nil, errors.New("ecdsa: private scalar outside [1, n-1]")
	}
	q := group.Generator().ScalarMult(d)
	return &PrivateKey{
		d:      new(big.Int).Set(d),
		public: &PublicKey{group: group, q: q},
	}, nil
}

// NewPublicKey builds a public key from a point, which carries its curve.
// The identity point is not a valid public key.
func NewPublicKey(q *curve.Point) (*PublicKey, error) {
	if q.IsIdentity() {
		return nil, errors.New("ecdsa: public key is the identity point")
	}
	if x, y := q.X(), q.Y(); !q.Curve().IsOnCurve(x, y) {
		return nil, fmt.Errorf("ecdsa: public key (%v, %v) is not on the curve", x, y)
	}
	return &PublicKey{group: q.Curve(), q: q}, nil
}

// PublicKey returns the public half of the key pair.
func (sk *PrivateKey) PublicKey() *PublicKey { return sk.public }

// Scalar returns a copy of the private scalar d.
func (sk *PrivateKey) Scalar() *big.Int { return new(big.Int).Set(sk.d) }

// Group returns the curve the key lives on.
func (pk *PublicKey) Group() *curve.Curve { return pk.group }

// Point returns the public point Q.
func (pk *PublicKey) Point() *curve.Point { return pk.q }

// Equal reports whether the two public keys are the same point on the same
// curve.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	return pk.q.Equal(other.q)
}
