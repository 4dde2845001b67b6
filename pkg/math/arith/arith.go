// Package arith provides the modular arithmetic underlying prime-field
// elliptic curves: inverses, the Legendre symbol, and square roots.
//
// All functions operate on arbitrary-precision integers and assume an odd
// prime modulus. None of them are constant-time.
package arith

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrNotASquare is returned by SqrtModP when n is not a quadratic
	// residue mod p.
	ErrNotASquare = errors.New("arith: not a square (mod p)")
	// ErrNoNonResidue is returned by SqrtModP when no quadratic non-residue
	// below p exists. For a prime p > 2 this cannot happen.
	ErrNoNonResidue = errors.New("arith: no quadratic non-residue found")
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// ModInverse returns x such that n⋅x ≡ 1 (mod p).
// It fails when gcd(n, p) ≠ 1.
func ModInverse(n, p *big.Int) (*big.Int, error) {
	x := new(big.Int).ModInverse(n, p)
	if x == nil {
		return nil, fmt.Errorf("arith: %v is not invertible (mod %v)", n, p)
	}
	return x, nil
}

// Legendre returns a^((p−1)/2) mod p.
//
// For an odd prime p the result is 1 when a is a quadratic residue,
// p−1 when it is a non-residue, and 0 when p divides a.
func Legendre(a, p *big.Int) *big.Int {
	e := new(big.Int).Sub(p, one)
	e.Rsh(e, 1)
	return new(big.Int).Exp(a, e, p)
}

// isNonResidue reports whether Legendre(a, p) = p − 1.
func isNonResidue(a, p *big.Int) bool {
	pMinus1 := new(big.Int).Sub(p, one)
	return Legendre(a, p).Cmp(pMinus1) == 0
}

// SqrtModP returns a square root of n modulo the odd prime p, computed with
// the Tonelli–Shanks algorithm.
//
// The precondition is that n is a quadratic residue mod p; otherwise
// ErrNotASquare is returned. The returned root r satisfies r² ≡ n (mod p);
// p − r is the other root.
func SqrtModP(n, p *big.Int) (*big.Int, error) {
	if Legendre(n, p).Cmp(one) != 0 {
		return nil, ErrNotASquare
	}

	// Factor p − 1 = q⋅2ˢ with q odd.
	q := new(big.Int).Sub(p, one)
	s := 0
	for q.Bit(0) == 0 {
		q.Rsh(q, 1)
		s++
	}

	// Find the least quadratic non-residue z by linear search.
	z := new(big.Int).Set(two)
	for !isNonResidue(z, p) {
		z.Add(z, one)
		if z.Cmp(p) >= 0 {
			return nil, ErrNoNonResidue
		}
	}

	m := s
	c := new(big.Int).Exp(z, q, p)
	t := new(big.Int).Exp(n, q, p)
	// r = n^((q+1)/2) mod p
	e := new(big.Int).Add(q, one)
	e.Rsh(e, 1)
	r := new(big.Int).Exp(n, e, p)

	for t.Sign() != 0 && t.Cmp(one) != 0 {
		// Least i < m with t^(2ⁱ) = 1.
		i := 0
		w := new(big.Int).Set(t)
		for w.Cmp(one) != 0 && i < m-1 {
			w.Mul(w, w).Mod(w, p)
			i++
		}

		// b = c^(2^(m−i−1))
		b := new(big.Int).Set(c)
		for j := m - i - 1; j > 0; j-- {
			b.Mul(b, b).Mod(b, p)
		}

		m = i
		c.Mul(b, b).Mod(c, p)
		t.Mul(t, c).Mod(t, p)
		r.Mul(r, b).Mod(r, p)
	}

	if t.Sign() == 0 {
		return big.NewInt(0), nil
	}
	return r, nil
}
