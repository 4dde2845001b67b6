// Package curve implements affine arithmetic over short Weierstrass curves
// y² = x³ + a⋅x + b in prime-field form, together with the SEC1 compressed
// and uncompressed point encodings.
//
// A Curve value holds the domain parameters and is immutable after
// construction; any number of goroutines may share one. Point operations
// return new values and never mutate their receivers. None of the arithmetic
// is constant-time.
package curve

import (
	"fmt"
	"math/big"

	"github.com/taurusgroup/sec1/pkg/math/octet"
)

// Curve holds the domain parameters of a short Weierstrass curve over F_p.
type Curve struct {
	name string
	p    *big.Int // field modulus
	a, b *big.Int // curve coefficients
	n    *big.Int // order of the subgroup generated by g
	h    *big.Int // cofactor
	g    *Point   // base point
}

// NewCurve parses a set of domain parameters given as octet strings in
// textual (hex) form. The base point g may be in compressed or uncompressed
// form; it is decoded against the just-parsed field and coefficients.
//
// The curve is checked for non-singularity: 4a³ + 27b² ≢ 0 (mod p).
func NewCurve(name, p, a, b, g, n, h string) (*Curve, error) {
	c := &Curve{name: name}

	var err error
	if c.p, err = octet.IntFromHex(p); err != nil {
		return nil, fmt.Errorf("curve %s: parameter p: %w", name, err)
	}
	if c.a, err = octet.IntFromHex(a); err != nil {
		return nil, fmt.Errorf("curve %s: parameter a: %w", name, err)
	}
	if c.b, err = octet.IntFromHex(b); err != nil {
		return nil, fmt.Errorf("curve %s: parameter b: %w", name, err)
	}
	if c.n, err = octet.IntFromHex(n); err != nil {
		return nil, fmt.Errorf("curve %s: parameter n: %w", name, err)
	}
	if c.h, err = octet.IntFromHex(h); err != nil {
		return nil, fmt.Errorf("curve %s: parameter h: %w", name, err)
	}

	if c.isSingular() {
		return nil, fmt.Errorf("curve %s: singular: 4a³ + 27b² ≡ 0 (mod p)", name)
	}

	if c.g, err = c.DecodePointHex(g); err != nil {
		return nil, fmt.Errorf("curve %s: base point: %w", name, err)
	}
	if c.g.IsIdentity() {
		return nil, fmt.Errorf("curve %s: base point is the identity", name)
	}
	return c, nil
}

// isSingular reports whether the discriminant term 4a³ + 27b² vanishes mod p.
func (c *Curve) isSingular() bool {
	a3 := new(big.Int).Exp(c.a, big.NewInt(3), c.p)
	a3.Mul(a3, big.NewInt(4))
	b2 := new(big.Int).Mul(c.b, c.b)
	b2.Mul(b2, big.NewInt(27))
	d := a3.Add(a3, b2)
	return d.Mod(d, c.p).Sign() == 0
}

// Name returns the canonical name of the curve.
func (c *Curve) Name() string { return c.name }

// P returns the field modulus.
func (c *Curve) P() *big.Int { return new(big.Int).Set(c.p) }

// A returns the linear coefficient of the curve equation.
func (c *Curve) A() *big.Int { return new(big.Int).Set(c.a) }

// B returns the constant coefficient of the curve equation.
func (c *Curve) B() *big.Int { return new(big.Int).Set(c.b) }

// N returns the order of the subgroup generated by the base point.
func (c *Curve) N() *big.Int { return new(big.Int).Set(c.n) }

// H returns the cofactor.
func (c *Curve) H() *big.Int { return new(big.Int).Set(c.h) }

// Generator returns the base point G.
func (c *Curve) Generator() *Point { return c.g.clone() }

// Equal reports whether two curves have identical domain parameters.
func (c *Curve) Equal(other *Curve) bool {
	if c == other {
		return true
	}
	if c == nil || other == nil {
		return false
	}
	return c.name == other.name &&
		c.p.Cmp(other.p) == 0 &&
		c.a.Cmp(other.a) == 0 &&
		c.b.Cmp(other.b) == 0 &&
		c.n.Cmp(other.n) == 0 &&
		c.h.Cmp(other.h) == 0 &&
		c.g.x.Cmp(other.g.x) == 0 &&
		c.g.y.Cmp(other.g.y) == 0
}

// polynomial returns x³ + a⋅x + b mod p.
func (c *Curve) polynomial(x *big.Int) *big.Int {
	x3 := new(big.Int).Mul(x, x)
	x3.Mul(x3, x)
	ax := new(big.Int).Mul(c.a, x)
	x3.Add(x3, ax)
	x3.Add(x3, c.b)
	return x3.Mod(x3, c.p)
}

// IsOnCurve reports whether (x, y) satisfies the curve equation mod p.
func (c *Curve) IsOnCurve(x, y *big.Int) bool {
	if x.Sign() < 0 || x.Cmp(c.p) >= 0 || y.Sign() < 0 || y.Cmp(c.p) >= 0 {
		return false
	}
	y2 := new(big.Int).Mul(y, y)
	y2.Mod(y2, c.p)
	return y2.Cmp(c.polynomial(x)) == 0
}

// coordinateBytes returns the byte length ⌈log₂p/8⌉ of one encoded
// coordinate.
func (c *Curve) coordinateBytes() int {
	return (c.p.BitLen() + 7) / 8
}
