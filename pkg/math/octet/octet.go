// Package octet implements the SEC1 octet-string conversions between hex
// strings, byte sequences, arbitrary-precision integers, and prime-field
// elements.
//
// An octet string in textual form is a sequence of hex digits, optionally
// separated by whitespace, always denoting a whole number of octets: a
// cleaned string of odd length is left-padded with a zero nibble.
package octet

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrNotInField is returned when a decoded integer is not in [0, p).
var ErrNotInField = errors.New("octet: not in field")

// BytesFromHex converts an octet string in textual form to the octets it
// denotes. Whitespace is ignored.
func BytesFromHex(s string) ([]byte, error) {
	cleaned := strings.Join(strings.Fields(s), "")
	if len(cleaned)%2 != 0 {
		cleaned = "0" + cleaned
	}
	data, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("octet: invalid octet string: %w", err)
	}
	return data, nil
}

// IntFromHex converts an octet string in textual form to a non-negative
// integer.
func IntFromHex(s string) (*big.Int, error) {
	data, err := BytesFromHex(s)
	if err != nil {
		return nil, err
	}
	return IntFromBytes(data), nil
}

// IntFromBytes interprets a byte sequence as a big-endian integer.
func IntFromBytes(data []byte) *big.Int {
	return new(big.Int).SetBytes(data)
}

// FieldElement interprets a byte sequence as a big-endian integer and
// validates that it is an element of F_p.
func FieldElement(data []byte, p *big.Int) (*big.Int, error) {
	elem := IntFromBytes(data)
	if elem.Cmp(p) >= 0 {
		return nil, fmt.Errorf("octet: field F_%v does not contain %v: %w", p, elem, ErrNotInField)
	}
	return elem, nil
}

// FieldElementBytes returns the minimal big-endian encoding of e, always a
// whole number of octets. Zero encodes as a single zero octet.
func FieldElementBytes(e *big.Int) []byte {
	if e.Sign() == 0 {
		return []byte{0}
	}
	return e.Bytes()
}
