package curve

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/taurusgroup/sec1/pkg/math/arith"
	"github.com/taurusgroup/sec1/pkg/math/octet"
)

const (
	prefixIdentity       = 0x00
	prefixCompressedEven = 0x02
	prefixCompressedOdd  = 0x03
	prefixUncompressed   = 0x04
)

var (
	// ErrInvalidIndicator is returned when the leading indicator byte of an
	// encoded point matches none of 0x00, 0x02, 0x03, 0x04.
	ErrInvalidIndicator = errors.New("curve: invalid indicator byte")
	// ErrInvalidLength is returned when the byte count of an encoded point
	// matches neither the compressed nor the uncompressed form.
	ErrInvalidLength = errors.New("curve: invalid encoded point length")
)

// MarshalBinary implements encoding.BinaryMarshaler using the SEC1
// compressed form: the identity encodes as a single zero octet, any other
// point as 0x02 or 0x03 (the parity of y) followed by the x-coordinate
// padded to ⌈log₂p/8⌉ octets.
func (v *Point) MarshalBinary() ([]byte, error) {
	if v.identity {
		return []byte{prefixIdentity}, nil
	}
	coordLen := v.curve.coordinateBytes()
	out := make([]byte, 1+coordLen)
	if v.y.Bit(0) == 0 {
		out[0] = prefixCompressedEven
	} else {
		out[0] = prefixCompressedOdd
	}
	v.x.FillBytes(out[1:])
	return out, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The receiver must
// already carry a curve, e.g. one obtained from (*Curve).NewIdentityPoint.
func (v *Point) UnmarshalBinary(data []byte) error {
	if v.curve == nil {
		return errors.New("curve: point must be initialized with a curve before unmarshalling")
	}
	decoded, err := v.curve.DecodePoint(data)
	if err != nil {
		return err
	}
	*v = *decoded
	return nil
}

// DecodePoint decodes a point from its SEC1 octet representation:
// the single octet 0x00 for the identity, 0x02/0x03 ‖ x for the compressed
// form, or 0x04 ‖ x ‖ y for the uncompressed form.
//
// For the compressed form the y-coordinate is recovered as a modular square
// root of x³ + a⋅x + b, choosing the root whose parity matches the
// indicator. The uncompressed coordinates are range-checked into the field
// but not checked against the curve equation.
func (c *Curve) DecodePoint(data []byte) (*Point, error) {
	if len(data) == 1 && data[0] == prefixIdentity {
		return c.NewIdentityPoint(), nil
	}
	coordLen := c.coordinateBytes()

	switch len(data) {
	case 1 + coordLen:
		return c.decodeCompressed(data)
	case 1 + 2*coordLen:
		return c.decodeUncompressed(data, coordLen)
	}
	return nil, fmt.Errorf("%w: %d bytes", ErrInvalidLength, len(data))
}

// DecodePointHex decodes a point from an octet string in textual (hex) form.
func (c *Curve) DecodePointHex(s string) (*Point, error) {
	data, err := octet.BytesFromHex(s)
	if err != nil {
		return nil, err
	}
	return c.DecodePoint(data)
}

func (c *Curve) decodeCompressed(data []byte) (*Point, error) {
	if data[0] != prefixCompressedEven && data[0] != prefixCompressedOdd {
		return nil, fmt.Errorf("%w: 0x%02x", ErrInvalidIndicator, data[0])
	}
	yParity := uint(data[0] - prefixCompressedEven)

	x, err := octet.FieldElement(data[1:], c.p)
	if err != nil {
		return nil, err
	}

	alpha := c.polynomial(x)
	beta, err := arith.SqrtModP(alpha, c.p)
	if err != nil {
		return nil, fmt.Errorf("curve %s: x-coordinate not on the curve: %w", c.name, err)
	}

	y := beta
	if beta.Bit(0) != yParity {
		y = new(big.Int).Sub(c.p, beta)
	}
	return c.newPointUnchecked(x, y), nil
}

func (c *Curve) decodeUncompressed(data []byte, coordLen int) (*Point, error) {
	if data[0] != prefixUncompressed {
		return nil, fmt.Errorf("%w: 0x%02x", ErrInvalidIndicator, data[0])
	}
	x, err := octet.FieldElement(data[1:1+coordLen], c.p)
	if err != nil {
		return nil, err
	}
	y, err := octet.FieldElement(data[1+coordLen:], c.p)
	if err != nil {
		return nil, err
	}
	return c.newPointUnchecked(x, y), nil
}
