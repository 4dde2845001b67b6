package ecdsa

import (
	"fmt"
	"io"
	"math/big"

	"github.com/taurusgroup/sec1/pkg/math/arith"
	"github.com/taurusgroup/sec1/pkg/math/sample"
)

// Signature is an ECDSA signature: the integer pair (r, s), each in
// [1, n−1]. No DER or fixed-width wire format is defined here; see
// MarshalBinary for the CBOR interchange form.
type Signature struct {
	R, S *big.Int
}

// Sign signs the digest of message under sk's private scalar.
//
// A fresh ephemeral scalar k is drawn from rand for every attempt. The
// attempt is retried when r = 0 or s = 0; both events have negligible
// probability but must not produce a malformed signature.
func (sk *PrivateKey) Sign(rand io.Reader, h MessageHash, message []byte) *Signature {
	n := sk.public.group.N()
	e := hashToInt(h(message), n)
	for {
		k := sample.Scalar(rand, n)
		if sig, ok := sk.signWithNonce(k, e); ok {
			return sig
		}
	}
}

// signWithNonce runs one signing attempt with the given ephemeral scalar.
// It reports false when the attempt produced r = 0 or s = 0 and a fresh
// nonce is needed.
func (sk *PrivateKey) signWithNonce(k, e *big.Int) (*Signature, bool) {
	group := sk.public.group
	n := group.N()

	// (k, R): the ephemeral key pair. r is the x-coordinate of R mod n.
	R := group.Generator().ScalarMult(k)
	r := new(big.Int).Mod(R.X(), n)
	if r.Sign() == 0 {
		return nil, false
	}

	kInv, err := arith.ModInverse(k, n)
	if err != nil {
		// k ∈ [1, n−1] and n is prime.
		panic(fmt.Sprintf("ecdsa: ephemeral scalar not invertible: %v", err))
	}

	// s = k⁻¹⋅(e + r⋅d) mod n
	s := new(big.Int).Mul(r, sk.d)
	s.Add(s, e)
	s.Mul(s, kInv)
	s.Mod(s, n)
	if s.Sign() == 0 {
		return nil, false
	}
	return &Signature{R: r, S: s}, true
}

// Verify reports whether sig is a valid signature on message under pk.
// An invalid signature is a normal outcome, not an error.
func (pk *PublicKey) Verify(h MessageHash, message []byte, sig *Signature) bool {
	if sig == nil || sig.R == nil || sig.S == nil {
		return false
	}
	n := pk.group.N()
	if !inScalarRange(sig.R, n) || !inScalarRange(sig.S, n) {
		return false
	}

	e := hashToInt(h(message), n)

	sInv, err := arith.ModInverse(sig.S, n)
	if err != nil {
		return false
	}
	u1 := new(big.Int).Mul(e, sInv)
	u1.Mod(u1, n)
	u2 := new(big.Int).Mul(sig.R, sInv)
	u2.Mod(u2, n)

	// R = u1⋅G + u2⋅Q
	R := pk.group.Generator().ScalarMult(u1).Add(pk.q.ScalarMult(u2))
	if R.IsIdentity() {
		return false
	}

	v := new(big.Int).Mod(R.X(), n)
	return v.Cmp(sig.R) == 0
}

// inScalarRange reports whether 1 ⩽ x ⩽ n−1.
func inScalarRange(x, n *big.Int) bool {
	return x.Sign() > 0 && x.Cmp(n) < 0
}

// hashToInt converts a digest to the integer e used by signing and
// verification. When the curve order n has fewer bits than the digest, the
// excess low-order bits are shifted off so that exactly the top bitlen(n)
// bits remain. The comparison is against the total digest bit count, which
// both sides of the protocol must apply identically.
func hashToInt(digest []byte, n *big.Int) *big.Int {
	e := new(big.Int).SetBytes(digest)
	nBits := n.BitLen()
	digestBits := 8 * len(digest)
	if nBits >= digestBits {
		return e
	}
	return e.Rsh(e, uint(digestBits-nBits))
}
