package curve

import (
	"fmt"
	"math/big"

	"github.com/taurusgroup/sec1/pkg/math/arith"
)

// Point is an affine point on a Curve, or the point at infinity.
//
// The identity element carries an explicit tag rather than a sentinel
// coordinate pair, so it can never be confused with a genuine point whose
// coordinates happen to be (0, 0). Points are immutable; every operation
// returns a new value.
type Point struct {
	curve    *Curve
	x, y     *big.Int
	identity bool
}

// NewIdentityPoint returns the point at infinity on c.
func (c *Curve) NewIdentityPoint() *Point {
	return &Point{curve: c, identity: true}
}

// NewPoint returns the affine point (x, y) on c.
// It fails when the coordinates do not satisfy the curve equation.
func (c *Curve) NewPoint(x, y *big.Int) (*Point, error) {
	if !c.IsOnCurve(x, y) {
		return nil, fmt.Errorf("curve %s: point (%v, %v) is not on the curve", c.name, x, y)
	}
	return &Point{
		curve: c,
		x:     new(big.Int).Set(x),
		y:     new(big.Int).Set(y),
	}, nil
}

// newPointUnchecked skips the curve-equation check. Used by the group law,
// whose results are on the curve by construction, and by the decoder for
// reference-compatible handling of uncompressed input.
func (c *Curve) newPointUnchecked(x, y *big.Int) *Point {
	return &Point{curve: c, x: x, y: y}
}

func (v *Point) clone() *Point {
	if v.identity {
		return &Point{curve: v.curve, identity: true}
	}
	return &Point{
		curve: v.curve,
		x:     new(big.Int).Set(v.x),
		y:     new(big.Int).Set(v.y),
	}
}

// Curve returns the curve the point belongs to.
func (v *Point) Curve() *Curve { return v.curve }

// IsIdentity reports whether the point is the point at infinity.
func (v *Point) IsIdentity() bool { return v.identity }

// X returns the x-coordinate, or nil for the point at infinity.
func (v *Point) X() *big.Int {
	if v.identity {
		return nil
	}
	return new(big.Int).Set(v.x)
}

// Y returns the y-coordinate, or nil for the point at infinity.
func (v *Point) Y() *big.Int {
	if v.identity {
		return nil
	}
	return new(big.Int).Set(v.y)
}

// checkCurve panics when the two points do not share domain parameters.
// Mixing curves is a programmer error, not a recoverable condition.
func (v *Point) checkCurve(other *Point) {
	if !v.curve.Equal(other.curve) {
		panic(fmt.Sprintf("curve: mixed-curve arithmetic: %s and %s", v.curve.name, other.curve.name))
	}
}

// mustInverse inverts n mod p. The group law only inverts quantities that
// are non-zero mod p for valid points, so failure is an internal invariant
// violation.
func (v *Point) mustInverse(n *big.Int) *big.Int {
	inv, err := arith.ModInverse(n, v.curve.p)
	if err != nil {
		panic(fmt.Sprintf("curve %s: %v", v.curve.name, err))
	}
	return inv
}

// Add returns v + other under the chord-and-tangent group law.
func (v *Point) Add(other *Point) *Point {
	v.checkCurve(other)
	if v.identity {
		return other.clone()
	}
	if other.identity {
		return v.clone()
	}

	p := v.curve.p
	if v.x.Cmp(other.x) == 0 {
		// Same x-coordinate: either a doubling, or v = −other and the
		// chord is vertical. A point with y = 0 is its own negative.
		if v.y.Cmp(other.y) != 0 || v.y.Sign() == 0 {
			return v.curve.NewIdentityPoint()
		}
		// λ = (3x² + a) / 2y
		num := new(big.Int).Mul(v.x, v.x)
		num.Mul(num, big.NewInt(3))
		num.Add(num, v.curve.a)
		den := new(big.Int).Lsh(v.y, 1)
		lambda := num.Mul(num, v.mustInverse(den))
		lambda.Mod(lambda, p)

		// x₃ = λ² − 2x, y₃ = λ(x − x₃) − y
		x3 := new(big.Int).Mul(lambda, lambda)
		x3.Sub(x3, v.x)
		x3.Sub(x3, v.x)
		x3.Mod(x3, p)
		y3 := new(big.Int).Sub(v.x, x3)
		y3.Mul(y3, lambda)
		y3.Sub(y3, v.y)
		y3.Mod(y3, p)
		return v.curve.newPointUnchecked(x3, y3)
	}

	// λ = (y₂ − y₁) / (x₂ − x₁)
	num := new(big.Int).Sub(other.y, v.y)
	den := new(big.Int).Sub(other.x, v.x)
	lambda := num.Mul(num, v.mustInverse(den))
	lambda.Mod(lambda, p)

	// x₃ = λ² − x₁ − x₂, y₃ = λ(x₁ − x₃) − y₁
	x3 := new(big.Int).Mul(lambda, lambda)
	x3.Sub(x3, v.x)
	x3.Sub(x3, other.x)
	x3.Mod(x3, p)
	y3 := new(big.Int).Sub(v.x, x3)
	y3.Mul(y3, lambda)
	y3.Sub(y3, v.y)
	y3.Mod(y3, p)
	return v.curve.newPointUnchecked(x3, y3)
}

// Negate returns −v, the reflection of v across the x-axis.
func (v *Point) Negate() *Point {
	if v.identity {
		return v.clone()
	}
	y := new(big.Int).Neg(v.y)
	y.Mod(y, v.curve.p)
	return v.curve.newPointUnchecked(new(big.Int).Set(v.x), y)
}

// ScalarMult returns k⋅v by double-and-add from the most significant bit of
// k down. Negative k yields (−k)⋅(−v); zero yields the identity.
func (v *Point) ScalarMult(k *big.Int) *Point {
	if k.Sign() < 0 {
		return v.Negate().ScalarMult(new(big.Int).Neg(k))
	}
	if k.Sign() == 0 {
		return v.curve.NewIdentityPoint()
	}
	result := v.curve.NewIdentityPoint()
	for i := k.BitLen() - 1; i >= 0; i-- {
		result = result.Add(result)
		if k.Bit(i) == 1 {
			result = result.Add(v)
		}
	}
	return result
}

// Equal reports whether the two points have equal coordinates and belong to
// the same curve.
func (v *Point) Equal(other *Point) bool {
	if !v.curve.Equal(other.curve) {
		return false
	}
	if v.identity || other.identity {
		return v.identity == other.identity
	}
	return v.x.Cmp(other.x) == 0 && v.y.Cmp(other.y) == 0
}

// String implements fmt.Stringer.
func (v *Point) String() string {
	if v.identity {
		return fmt.Sprintf("∞ on %s", v.curve.name)
	}
	return fmt.Sprintf("(%v, %v) on %s", v.x, v.y, v.curve.name)
}
